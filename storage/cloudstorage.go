package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// GCSBlobStore wraps one Google Cloud Storage bucket
type GCSBlobStore struct {
	client     *storage.Client
	bucketName string
}

// NewGCSClient creates a Cloud Storage client shared by every bucket store
func NewGCSClient(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}
	return client, nil
}

// NewGCSBlobStore creates a blob store for bucketName on an open client
func NewGCSBlobStore(client *storage.Client, bucketName string) *GCSBlobStore {
	return &GCSBlobStore{client: client, bucketName: bucketName}
}

func (c *GCSBlobStore) prefix() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
}

func (c *GCSBlobStore) objectName(url string) (string, error) {
	if !strings.HasPrefix(url, c.prefix()) {
		return "", fmt.Errorf("invalid object URL format")
	}
	return strings.TrimPrefix(url, c.prefix()), nil
}

// Bucket returns the bucket name
func (c *GCSBlobStore) Bucket() string {
	return c.bucketName
}

// Upload writes data to objectName and returns its public URL
func (c *GCSBlobStore) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if wc.ContentType == "" {
		wc.ContentType = "application/octet-stream"
	}

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return c.prefix() + objectName, nil
}

// Download reads the object behind url
func (c *GCSBlobStore) Download(ctx context.Context, url string) ([]byte, error) {
	objectName, err := c.objectName(url)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

// Delete removes the object behind url
func (c *GCSBlobStore) Delete(ctx context.Context, url string) error {
	objectName, err := c.objectName(url)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// SignedURL generates a V4 signed URL for temporary read access
func (c *GCSBlobStore) SignedURL(_ context.Context, url string, expiration time.Duration) (string, error) {
	objectName, err := c.objectName(url)
	if err != nil {
		return "", err
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	signed, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return signed, nil
}
