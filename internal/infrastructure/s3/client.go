package s3infra

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vrentals-api/internal/config"
	"github.com/vrentals-api/internal/infrastructure/awscfg"
)

// Store wraps the S3 operations the listing images need.
type Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewClient creates an S3 client. When cfg.AWSEndpointURL is set (LocalStack),
// it overrides the endpoint and enables path-style addressing.
func NewClient(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awscfg.Load(ctx, cfg, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}
	clientOpts := []func(*s3.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
			o.UsePathStyle = true
		})
	}
	return s3.NewFromConfig(awsCfg, clientOpts...), nil
}

// NewStore creates a Store. Object URLs are built from publicBaseURL; when
// it is empty the regional virtual-hosted S3 URL is used.
func NewStore(client *s3.Client, cfg *config.Config) *Store {
	base := cfg.S3PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3BucketName, cfg.AWSRegion)
	}
	return &Store{client: client, bucket: cfg.S3BucketName, publicBaseURL: base}
}

// Upload sends size bytes of r to S3 under key and returns the object's
// public URL. r must be seekable so the request can be signed and retried.
func (s *Store) Upload(ctx context.Context, key string, r io.ReadSeeker, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return s.PublicURL(key), nil
}

// PublicURL returns the URL a browser can load key from.
func (s *Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
