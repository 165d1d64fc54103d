package storage

import (
	"context"
	"fmt"

	"github.com/hireflow/backend/config"
)

// NewCandidateStore opens the candidate store selected by STORE_BACKEND
func NewCandidateStore(ctx context.Context, cfg *config.Config) (CandidateStore, error) {
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		return NewFirestoreStore(ctx, cfg)
	case config.StorePostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case config.StoreMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// Blobs groups the resume and avatar buckets
type Blobs struct {
	Resumes BlobStore
	Avatars BlobStore
	close   func() error
}

// Close releases the underlying client
func (b *Blobs) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// NewBlobs opens the blob stores selected by BLOB_BACKEND
func NewBlobs(ctx context.Context, cfg *config.Config) (*Blobs, error) {
	switch cfg.BlobBackend {
	case config.BlobGCS:
		client, err := NewGCSClient(ctx)
		if err != nil {
			return nil, err
		}
		return &Blobs{
			Resumes: NewGCSBlobStore(client, cfg.ResumeBucket),
			Avatars: NewGCSBlobStore(client, cfg.AvatarBucket),
			close:   client.Close,
		}, nil
	case config.BlobMemory, "":
		return &Blobs{
			Resumes: NewMemoryBlobStore(cfg.ResumeBucket),
			Avatars: NewMemoryBlobStore(cfg.AvatarBucket),
		}, nil
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
}
