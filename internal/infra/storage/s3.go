package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mediflowhq/mediflow/internal/config"
	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
)

type S3Publisher struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Publisher(cfg *config.Config) domain.DocumentPublisher {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// S3-compatible providers (MinIO and friends) need path-style
		// addressing against a custom endpoint.
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Publisher{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

// Publish uploads the buffer under a fresh random key inside folder.
// There is no idempotency key: publishing the same bytes twice creates
// two distinct objects.
func (p *S3Publisher) Publish(ctx context.Context, data []byte, folder, ext, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return p.publicBaseURL + "/" + key, nil
}
