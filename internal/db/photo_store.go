package db

import (
	"context"
	"fmt"
	"log"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// gcsPhotoStore implements the PhotoStore interface on a Cloud Storage
// bucket. Objects are written under profile-photos/ with random names so an
// overwrite can never leak another user's photo URL.
type gcsPhotoStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCSPhotoStore creates a new PhotoStore backed by the given bucket.
func NewGCSPhotoStore(bucket *gcs.BucketHandle, bucketName string) PhotoStore {
	if bucket == nil {
		log.Fatal("Storage bucket is not initialized for PhotoStore.")
	}
	return &gcsPhotoStore{bucket: bucket, bucketName: bucketName}
}

// Save uploads the photo bytes and returns the public view URL.
func (s *gcsPhotoStore) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	objectName := "profile-photos/" + uuid.New().String()

	writer := s.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write photo object '%s': %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize photo object '%s': %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
