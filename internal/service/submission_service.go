package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/kelliceng/BMC-Dining-App/internal/domain"
	"github.com/kelliceng/BMC-Dining-App/internal/repository"
)

// ErrMediaHost marks a failure while uploading the asset; nothing was
// persisted. ErrStore marks a failure writing the record; the asset already
// exists at the host with no record pointing at it.
var (
	ErrMediaHost = errors.New("media host upload failed")
	ErrStore     = errors.New("submission store write failed")
)

// NewSubmission carries the validated fields of one incoming submission.
type NewSubmission struct {
	Name        string
	Email       string
	Caption     string
	MediaType   domain.MediaType
	File        []byte
	ContentType string
}

type SubmissionService interface {
	Create(ctx context.Context, in NewSubmission) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
}

type submissionService struct {
	host  repository.MediaHost
	store repository.SubmissionStore
	log   *zap.Logger
}

func NewSubmissionService(host repository.MediaHost, store repository.SubmissionStore, log *zap.Logger) SubmissionService {
	return &submissionService{
		host:  host,
		store: store,
		log:   log,
	}
}

// Create uploads the file and then writes the record. The order is strict:
// the record only ever references a confirmed upload. The two steps are not
// transactional; a store failure leaves the uploaded asset unreferenced.
func (s *submissionService) Create(ctx context.Context, in NewSubmission) (*domain.Submission, error) {
	publicID := publicID(in.Name, time.Now())

	contentType := in.ContentType
	if contentType == "" {
		contentType = defaultContentType(in.MediaType)
	}

	url, err := s.host.Upload(ctx, in.File, in.MediaType, publicID, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaHost, err)
	}

	sub := &domain.Submission{
		Name:      in.Name,
		Email:     in.Email,
		MediaURL:  url,
		MediaType: in.MediaType,
		Caption:   in.Caption,
		DateAdded: time.Now().UTC(),
	}

	stored, err := s.store.Insert(ctx, sub)
	if err != nil {
		// The asset stays behind at the host with nothing referencing it.
		s.log.Error("Record write failed after upload, asset orphaned",
			zap.String("public_id", publicID),
			zap.String("url", url),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.log.Info("Submission created",
		zap.String("id", stored.ID),
		zap.String("media_type", string(stored.MediaType)),
		zap.String("url", stored.MediaURL))

	return stored, nil
}

func (s *submissionService) List(ctx context.Context) ([]domain.Submission, error) {
	return s.store.FindAll(ctx)
}

// publicID combines the submitter's name with the current time in
// milliseconds. Collisions are unlikely, not impossible.
func publicID(name string, now time.Time) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		cleaned = "submission"
	}
	return fmt.Sprintf("%s_%d", cleaned, now.UnixMilli())
}

func defaultContentType(kind domain.MediaType) string {
	if kind == domain.MediaTypeVideo {
		return "video/mp4"
	}
	return "image/jpeg"
}
