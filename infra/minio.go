package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kngsnwn/gigapress/config"
)

type MinioClient struct {
	Client *minio.Client
	Bucket string
}

func InitMinioClient(cfg *config.EnvConfig) (*MinioClient, error) {
	if cfg.Minio.Endpoint == "" {
		return nil, errors.New("MinIO endpoint is not configured")
	}
	if cfg.Minio.RootUser == "" || cfg.Minio.RootPassword == "" {
		return nil, errors.New("MinIO credentials are not configured")
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.RootUser, cfg.Minio.RootPassword, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return &MinioClient{
		Client: client,
		Bucket: cfg.Minio.Bucket,
	}, nil
}

func (m *MinioClient) ensureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.Bucket, err)
	}
	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", m.Bucket, err)
		}
	}
	return nil
}

// StoreArtifacts uploads each artifact under <projectID>/<filename>.
func (m *MinioClient) StoreArtifacts(ctx context.Context, projectID string, files map[string]string) error {
	if err := m.ensureBucket(ctx); err != nil {
		return err
	}
	for name, content := range files {
		object := fmt.Sprintf("%s/%s", projectID, name)
		reader := strings.NewReader(content)
		_, err := m.Client.PutObject(ctx, m.Bucket, object, reader, int64(reader.Len()), minio.PutObjectOptions{
			ContentType: "text/plain",
		})
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", object, err)
		}
	}
	return nil
}
