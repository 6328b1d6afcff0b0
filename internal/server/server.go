package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kelliceng/BMC-Dining-App/internal/config"
	"github.com/kelliceng/BMC-Dining-App/internal/handler"
	"github.com/kelliceng/BMC-Dining-App/internal/repository"
	"github.com/kelliceng/BMC-Dining-App/internal/service"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	store, err := repository.NewMongoStore(context.Background(), &cfg.Mongo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	host, err := repository.NewS3MediaHost(&cfg.Media, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media host client: %w", err)
	}

	svc := service.NewSubmissionService(host, store, log)
	h := handler.NewHandler(svc, store, cfg.App.MaxUploadSize, log)

	router := NewRouter(h, cfg.App.EnableCORS)

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        router,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		cfg: cfg,
		log: log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

// NewRouter registers the HTTP surface. Split out from New so tests can wire
// a router against fakes without touching MongoDB or the media host.
func NewRouter(h *handler.Handler, enableCORS bool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	if enableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
		router.Use(cors.New(corsConfig))
	}

	router.GET("/", h.Live)
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api/dining")
	{
		api.POST("/add", h.AddSubmission)
		api.GET("/submissions", h.ListSubmissions)
		api.GET("/", h.ListSubmissions)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
