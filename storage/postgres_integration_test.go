//go:build integration

package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/models"
)

// Run with: DATABASE_URL=postgres://... go test -tags integration ./storage/
func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	store, err := NewPostgresStore(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	c := &models.Candidate{
		Name:           "Jane Doe",
		Role:           "Backend Engineer",
		JobDescription: "Go engineer",
		ExtractedData: models.ExtractedData{
			Name:   "Jane Doe",
			Skills: models.FlexibleStringSlice{"Go", "Postgres"},
		},
	}
	require.NoError(t, store.Create(ctx, c))
	t.Cleanup(func() { _ = store.Delete(context.Background(), c.ID) })

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.Score)
	assert.Equal(t, models.FlexibleStringSlice{"Go", "Postgres"}, got.ExtractedData.Skills)

	score := 88
	status := models.StatusShortlisted
	analysis := models.Analysis{Reasoning: "strong Go", Strengths: models.FlexibleStringSlice{"Go"}}
	updated, err := store.Update(ctx, c.ID, CandidateUpdate{Score: &score, Status: &status, Analysis: &analysis})
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 88, *updated.Score)
	assert.Equal(t, models.StatusShortlisted, updated.Status)
	assert.Equal(t, "strong Go", updated.Analysis.Reasoning)
	assert.True(t, updated.UpdatedAt.After(got.UpdatedAt) || updated.UpdatedAt.Equal(got.UpdatedAt))

	unchanged, err := store.Update(ctx, c.ID, CandidateUpdate{})
	require.NoError(t, err)
	assert.True(t, unchanged.UpdatedAt.Equal(updated.UpdatedAt))

	shortlisted, err := store.List(ctx, CandidateFilter{Status: models.StatusShortlisted})
	require.NoError(t, err)
	found := false
	for _, cand := range shortlisted {
		found = found || cand.ID == c.ID
	}
	assert.True(t, found)

	require.NoError(t, store.Delete(ctx, c.ID))
	_, err = store.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, c.ID), ErrNotFound)

	_, err = store.Update(ctx, c.ID, CandidateUpdate{Score: &score})
	assert.ErrorIs(t, err, ErrNotFound)
}
