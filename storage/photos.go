package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hazard-report/bot-go/config"
)

// R2PhotoStore keeps photo bytes in an S3-compatible bucket (Cloudflare R2)
// and hands back public URLs for them.
type R2PhotoStore struct {
	client *s3.Client
	config *config.R2Config
}

func NewR2PhotoStore(cfg *config.R2Config) *R2PhotoStore {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2PhotoStore{client: client, config: cfg}
}

func (ps *R2PhotoStore) Store(ctx context.Context, data []byte, key string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(ps.config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(http.DetectContentType(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}

	if _, err := ps.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload photo %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", ps.config.PublicURL, key), nil
}
