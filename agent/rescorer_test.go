package agent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
)

type fakeScorer struct {
	mu       sync.Mutex
	fail     map[string]bool
	inFlight int32
	peak     int32
}

func (f *fakeScorer) ScoreCandidate(_ context.Context, c *models.Candidate, _ string) (*models.ScoreResponse, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	if n > f.peak {
		f.peak = n
	}
	fail := f.fail[c.Name]
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)
	if fail {
		return nil, errors.New("all providers failed")
	}
	return &models.ScoreResponse{Score: 77, Analysis: models.Analysis{Reasoning: "rescored"}}, nil
}

func seed(t *testing.T, store *storage.MemoryStore, name, jd string) *models.Candidate {
	t.Helper()
	c := &models.Candidate{Name: name, JobDescription: jd}
	require.NoError(t, store.Create(context.Background(), c))
	return c
}

func TestRescoreAll(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	ok := seed(t, store, "ok", "Go engineer")
	bad := seed(t, store, "bad", "Go engineer")
	noJD := seed(t, store, "nojd", "")

	scorer := &fakeScorer{fail: map[string]bool{"bad": true}}
	resp, err := NewRescorer(store, scorer, 2).RescoreAll(ctx, storage.CandidateFilter{}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Rescored)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, resp.Skipped)
	assert.Len(t, resp.Results, 3)

	got, err := store.Get(ctx, ok.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Score)
	assert.Equal(t, 77, *got.Score)
	assert.Equal(t, "rescored", got.Analysis.Reasoning)

	got, err = store.Get(ctx, bad.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Score)

	got, err = store.Get(ctx, noJD.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Score)
}

func TestRescoreAll_BoundsConcurrency(t *testing.T) {
	store := storage.NewMemoryStore()
	for i := 0; i < 8; i++ {
		seed(t, store, "c", "jd")
	}

	scorer := &fakeScorer{}
	resp, err := NewRescorer(store, scorer, 2).RescoreAll(context.Background(), storage.CandidateFilter{}, "")
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Rescored)
	assert.LessOrEqual(t, scorer.peak, int32(2))
}

func TestRescoreAll_FilterByStatus(t *testing.T) {
	store := storage.NewMemoryStore()
	seed(t, store, "pending", "jd")
	rejected := &models.Candidate{Name: "rejected", JobDescription: "jd", Status: models.StatusRejected}
	require.NoError(t, store.Create(context.Background(), rejected))

	resp, err := NewRescorer(store, &fakeScorer{}, 0).RescoreAll(context.Background(), storage.CandidateFilter{Status: models.StatusRejected}, "")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, rejected.ID, resp.Results[0].CandidateID)
}
