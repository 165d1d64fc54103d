// Package storage persists candidate records, uploaded files and chat transcripts.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/backend/models"
)

// ErrNotFound is returned when a record or object does not exist
var ErrNotFound = errors.New("not found")

// CandidateFilter narrows a candidate listing
type CandidateFilter struct {
	Status models.CandidateStatus // empty matches every status
}

// CandidateUpdate is a partial update. Nil fields are left unchanged.
type CandidateUpdate struct {
	Status    *models.CandidateStatus
	Score     *int
	Analysis  *models.Analysis
	AvatarURL *string
}

// IsEmpty reports whether the update changes nothing
func (u CandidateUpdate) IsEmpty() bool {
	return u.Status == nil && u.Score == nil && u.Analysis == nil && u.AvatarURL == nil
}

// CandidateStore is the candidate record table
type CandidateStore interface {
	// Create assigns ID and timestamps, then inserts the record
	Create(ctx context.Context, c *models.Candidate) error
	Get(ctx context.Context, id string) (*models.Candidate, error)
	// List returns candidates newest first
	List(ctx context.Context, filter CandidateFilter) ([]*models.Candidate, error)
	Update(ctx context.Context, id string, update CandidateUpdate) (*models.Candidate, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// BlobStore holds uploaded files in one bucket. Objects are addressed by
// the public URL returned from Upload.
type BlobStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, url string) ([]byte, error)
	Delete(ctx context.Context, url string) error
	SignedURL(ctx context.Context, url string, expiration time.Duration) (string, error)
	Bucket() string
}

// TranscriptStore keeps per-candidate chat history
type TranscriptStore interface {
	Append(ctx context.Context, candidateID string, turns ...models.ChatTurn) error
	History(ctx context.Context, candidateID string) ([]models.ChatTurn, error)
}

// NewObjectName builds a unique object name under prefix that keeps the
// original file extension
func NewObjectName(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", strings.Trim(prefix, "/"), time.Now().Unix(), uuid.NewString(), ext)
}

func prepareNew(c *models.Candidate) {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = models.StatusPending
	}
	c.CreatedAt = now
	c.UpdatedAt = now
}

func applyUpdate(c *models.Candidate, u CandidateUpdate) {
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Score != nil {
		score := *u.Score
		c.Score = &score
	}
	if u.Analysis != nil {
		c.Analysis = *u.Analysis
	}
	if u.AvatarURL != nil {
		c.AvatarURL = *u.AvatarURL
	}
	c.UpdatedAt = time.Now().UTC()
}
