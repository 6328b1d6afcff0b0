package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/kelliceng/BMC-Dining-App/internal/config"
	"github.com/kelliceng/BMC-Dining-App/internal/domain"
)

// SubmissionStore persists submission records. Insert assigns the record's ID
// and returns the stored copy; FindAll returns every record in insertion
// order. Records are never updated or deleted.
type SubmissionStore interface {
	Insert(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
	FindAll(ctx context.Context) ([]domain.Submission, error)
	Ping(ctx context.Context) error
}

type mongoSubmissionStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *zap.Logger
}

// NewMongoStore connects and pings the database before returning; a nil error
// means the store is reachable. Callers treat a failure here as fatal.
func NewMongoStore(ctx context.Context, cfg *config.MongoConfig, log *zap.Logger) (SubmissionStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Info("Connected to MongoDB",
		zap.String("database", cfg.Database),
		zap.String("collection", cfg.Collection))

	return &mongoSubmissionStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		log:        log,
	}, nil
}

func (s *mongoSubmissionStore) Insert(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	stored := *sub
	stored.ID = primitive.NewObjectID().Hex()
	if stored.DateAdded.IsZero() {
		stored.DateAdded = time.Now().UTC()
	}

	if _, err := s.collection.InsertOne(ctx, stored); err != nil {
		s.log.Error("Failed to insert submission",
			zap.String("name", stored.Name),
			zap.Error(err))
		return nil, err
	}

	return &stored, nil
}

func (s *mongoSubmissionStore) FindAll(ctx context.Context) ([]domain.Submission, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []domain.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

func (s *mongoSubmissionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
