package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kelliceng/BMC-Dining-App/internal/domain"
	"github.com/kelliceng/BMC-Dining-App/internal/repository"
	"github.com/kelliceng/BMC-Dining-App/internal/service"
)

type Handler struct {
	service       service.SubmissionService
	store         repository.SubmissionStore
	maxUploadSize int64
	log           *zap.Logger
}

func NewHandler(svc service.SubmissionService, store repository.SubmissionStore, maxUploadSize int64, log *zap.Logger) *Handler {
	return &Handler{
		service:       svc,
		store:         store,
		maxUploadSize: maxUploadSize,
		log:           log,
	}
}

// AddSubmission validates the multipart form, buffers the file in memory and
// hands everything to the service. Validation failures short-circuit before
// any side effect.
func (h *Handler) AddSubmission(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	caption := c.PostForm("caption")
	mediaType := c.PostForm("mediaType")

	file, err := c.FormFile("mediaFile")
	if name == "" || email == "" || caption == "" || mediaType == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required, including the media file."})
		return
	}

	kind := domain.MediaType(mediaType)
	if !kind.Valid() {
		h.log.Warn("Invalid media type", zap.String("mediaType", mediaType))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type. Allowed types: 'image' or 'video'."})
		return
	}

	if h.maxUploadSize > 0 && file.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.log.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	buf, err := io.ReadAll(src)
	if err != nil {
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	sub, err := h.service.Create(c.Request.Context(), service.NewSubmission{
		Name:        name,
		Email:       email,
		Caption:     caption,
		MediaType:   kind,
		File:        buf,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		h.log.Error("Failed to create submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	submissions, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to fetch submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch submissions"})
		return
	}

	if submissions == nil {
		submissions = []domain.Submission{}
	}
	c.JSON(http.StatusOK, submissions)
}

func (h *Handler) Live(c *gin.Context) {
	c.String(http.StatusOK, "BMC Dining App Backend Running!")
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
