package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"notesboard/notesboard/config"
	"notesboard/notesboard/sources/psql/models"
)

type MinIOClient struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// Snapshot is the document written for every export.
type Snapshot struct {
	ExportedAt time.Time     `json:"exportedAt"`
	Count      int           `json:"count"`
	Notes      []models.Note `json:"notes"`
}

func NewMinIOClient(ctx context.Context, cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinIOBucket, err)
		}
	}
	return &MinIOClient{client: client, bucket: cfg.MinIOBucket, now: time.Now}, nil
}

// SnapshotKey names the object for a snapshot taken at t.
func SnapshotKey(t time.Time) string {
	return path.Join("snapshots", t.UTC().Format("20060102T150405.000000000Z")+".json")
}

// UploadSnapshot stores notes as one JSON document and returns its key.
func (m *MinIOClient) UploadSnapshot(ctx context.Context, notes []models.Note) (string, error) {
	now := m.now()
	data, err := json.Marshal(Snapshot{ExportedAt: now.UTC(), Count: len(notes), Notes: notes})
	if err != nil {
		return "", err
	}
	key := SnapshotKey(now)
	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	return key, nil
}
