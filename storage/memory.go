package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hireflow/backend/models"
)

// MemoryStore is an in-process CandidateStore for development and tests
type MemoryStore struct {
	mu         sync.RWMutex
	candidates map[string]*models.Candidate
	writes     int
}

// NewMemoryStore creates an empty in-memory candidate store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{candidates: make(map[string]*models.Candidate)}
}

func (m *MemoryStore) Create(_ context.Context, c *models.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prepareNew(c)
	m.candidates[c.ID] = cloneCandidate(c)
	m.writes++
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCandidate(c), nil
}

func (m *MemoryStore) List(_ context.Context, filter CandidateFilter) ([]*models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, cloneCandidate(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, update CandidateUpdate) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.IsEmpty() {
		return cloneCandidate(c), nil
	}
	applyUpdate(c, update)
	m.writes++
	return cloneCandidate(c), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.candidates[id]; !ok {
		return ErrNotFound
	}
	delete(m.candidates, id)
	m.writes++
	return nil
}

// Writes returns the number of mutating calls that reached the store
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *MemoryStore) Close() error { return nil }

// cloneCandidate copies the record so callers never share the stored value
func cloneCandidate(c *models.Candidate) *models.Candidate {
	cp := *c
	if c.Score != nil {
		score := *c.Score
		cp.Score = &score
	}
	return &cp
}

// MemoryBlobStore is an in-process BlobStore for development and tests
type MemoryBlobStore struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string][]byte
	// FailUploads makes every Upload return an error
	FailUploads bool
}

// NewMemoryBlobStore creates an empty in-memory bucket
func NewMemoryBlobStore(bucket string) *MemoryBlobStore {
	return &MemoryBlobStore{bucket: bucket, objects: make(map[string][]byte)}
}

func (b *MemoryBlobStore) prefix() string {
	return fmt.Sprintf("memory://%s/", b.bucket)
}

func (b *MemoryBlobStore) objectName(url string) (string, error) {
	if !strings.HasPrefix(url, b.prefix()) {
		return "", fmt.Errorf("invalid object URL format")
	}
	return strings.TrimPrefix(url, b.prefix()), nil
}

func (b *MemoryBlobStore) Upload(_ context.Context, objectName string, data []byte, _ string) (string, error) {
	if b.FailUploads {
		return "", fmt.Errorf("failed to upload file: bucket %s unavailable", b.bucket)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[objectName] = append([]byte(nil), data...)
	return b.prefix() + objectName, nil
}

func (b *MemoryBlobStore) Download(_ context.Context, url string) ([]byte, error) {
	name, err := b.objectName(url)
	if err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.objects[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBlobStore) Delete(_ context.Context, url string) error {
	name, err := b.objectName(url)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[name]; !ok {
		return ErrNotFound
	}
	delete(b.objects, name)
	return nil
}

func (b *MemoryBlobStore) SignedURL(_ context.Context, url string, expiration time.Duration) (string, error) {
	name, err := b.objectName(url)
	if err != nil {
		return "", err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.objects[name]; !ok {
		return "", ErrNotFound
	}
	return fmt.Sprintf("%s?expires=%d", url, time.Now().Add(expiration).Unix()), nil
}

func (b *MemoryBlobStore) Bucket() string { return b.bucket }

// Len returns the number of stored objects
func (b *MemoryBlobStore) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

// MemoryTranscripts is an in-process TranscriptStore
type MemoryTranscripts struct {
	mu    sync.Mutex
	turns map[string][]models.ChatTurn
}

// NewMemoryTranscripts creates an empty transcript store
func NewMemoryTranscripts() *MemoryTranscripts {
	return &MemoryTranscripts{turns: make(map[string][]models.ChatTurn)}
}

func (t *MemoryTranscripts) Append(_ context.Context, candidateID string, turns ...models.ChatTurn) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns[candidateID] = append(t.turns[candidateID], turns...)
	if n := len(t.turns[candidateID]); n > maxTranscriptTurns {
		t.turns[candidateID] = t.turns[candidateID][n-maxTranscriptTurns:]
	}
	return nil
}

func (t *MemoryTranscripts) History(_ context.Context, candidateID string) ([]models.ChatTurn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.ChatTurn{}, t.turns[candidateID]...), nil
}
