package repository

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/kelliceng/BMC-Dining-App/internal/config"
	"github.com/kelliceng/BMC-Dining-App/internal/domain"
)

// MediaHost stores a binary media asset and hands back a durable public URL.
// The asset must be fully stored before the URL is returned; a returned URL
// is a confirmation of a successful upload.
type MediaHost interface {
	Upload(ctx context.Context, data []byte, kind domain.MediaType, publicID, contentType string) (string, error)
}

type s3MediaHost struct {
	client  *s3.Client
	cfg     *config.MediaConfig
	baseURL string
	log     *zap.Logger
}

func NewS3MediaHost(cfg *config.MediaConfig, log *zap.Logger) (MediaHost, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
				Source:            aws.EndpointSourceCustom,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	host := &s3MediaHost{
		client:  client,
		cfg:     cfg,
		baseURL: publicBaseURL(cfg),
		log:     log,
	}

	if err := host.ensureBucketExists(context.Background()); err != nil {
		log.Warn("Failed to ensure bucket exists", zap.Error(err))
	}

	return host, nil
}

func publicBaseURL(cfg *config.MediaConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (h *s3MediaHost) ensureBucketExists(ctx context.Context) error {
	_, err := h.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(h.cfg.Bucket),
	})
	if err == nil {
		return nil
	}

	h.log.Info("Creating bucket", zap.String("bucket", h.cfg.Bucket))

	_, err = h.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(h.cfg.Bucket),
		CreateBucketConfiguration: &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(h.cfg.Region),
		},
	})
	if err != nil {
		return err
	}

	h.log.Info("Bucket created successfully", zap.String("bucket", h.cfg.Bucket))
	return nil
}

// Upload writes the asset under "<kind>/<publicID>" and returns its public
// URL. No retry is attempted; the caller decides what a failure means.
func (h *s3MediaHost) Upload(ctx context.Context, data []byte, kind domain.MediaType, publicID, contentType string) (string, error) {
	key := string(kind) + "/" + publicID

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		h.log.Error("Failed to upload media",
			zap.String("key", key),
			zap.Error(err))
		return "", err
	}

	url := h.baseURL + "/" + key

	h.log.Info("Media uploaded",
		zap.String("key", key),
		zap.Int("size", len(data)),
		zap.String("url", url))

	return url, nil
}
