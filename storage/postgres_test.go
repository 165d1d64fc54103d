package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/models"
)

func TestBuildUpdate_NumbersPlaceholdersInOrder(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	status := models.StatusShortlisted
	avatar := "https://storage.googleapis.com/avatars/a.png"

	query, args, err := buildUpdate("cand-1", CandidateUpdate{Status: &status, AvatarURL: &avatar}, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query,
		"UPDATE candidates SET updated_at = $1, status = $2, avatar_url = $3 WHERE id = $4 RETURNING "), query)
	assert.Equal(t, []interface{}{now, "Shortlisted", avatar, "cand-1"}, args)
}

func TestBuildUpdate_AllFields(t *testing.T) {
	status := models.StatusAccepted
	score := 91
	analysis := models.Analysis{Reasoning: "strong Go"}
	avatar := "a.png"

	query, args, err := buildUpdate("cand-2", CandidateUpdate{
		Status:    &status,
		Score:     &score,
		Analysis:  &analysis,
		AvatarURL: &avatar,
	}, time.Now())
	require.NoError(t, err)

	assert.Contains(t, query, "status = $2, score = $3, analysis = $4, avatar_url = $5 WHERE id = $6")
	require.Len(t, args, 6)
	assert.Equal(t, 91, args[2])
	assert.JSONEq(t, `"strong Go"`, mustJSONField(t, args[3].([]byte), "reasoning"))
	assert.Equal(t, "cand-2", args[5])
}

func mustJSONField(t *testing.T, raw []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return string(m[field])
}

// fakeRow scans fixed column values in candidateColumns order
type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *[]byte:
			if v != nil {
				*d = v.([]byte)
			}
		case *time.Time:
			*d = v.(time.Time)
		case interface{ Scan(interface{}) error }:
			if err := d.Scan(v); err != nil {
				return err
			}
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func candidateRow(score interface{}, extracted, analysis []byte) fakeRow {
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return fakeRow{values: []interface{}{
		"cand-1", "Jane Doe", "jane@example.com", "Backend Engineer", "Go engineer",
		score, "Review", extracted, analysis,
		"https://storage.googleapis.com/resumes/r.pdf", "r.pdf", "",
		created, created.Add(time.Hour),
	}}
}

func TestScanCandidate_DecodesJSONB(t *testing.T) {
	row := candidateRow(int64(74),
		[]byte(`{"name":"Jane Doe","skills":"Go","career_level":"Senior"}`),
		[]byte(`{"reasoning":"solid","strengths":["Go","SQL"]}`),
	)

	c, err := scanCandidate(row)
	require.NoError(t, err)
	assert.Equal(t, "cand-1", c.ID)
	assert.Equal(t, models.StatusReview, c.Status)
	require.NotNil(t, c.Score)
	assert.Equal(t, 74, *c.Score)
	assert.Equal(t, models.FlexibleStringSlice{"Go"}, c.ExtractedData.Skills)
	assert.Equal(t, "Senior", c.ExtractedData.CareerLevel)
	assert.Equal(t, "solid", c.Analysis.Reasoning)
	assert.Equal(t, models.FlexibleStringSlice{"Go", "SQL"}, c.Analysis.Strengths)
	assert.Equal(t, time.Hour, c.UpdatedAt.Sub(c.CreatedAt))
}

func TestScanCandidate_NullScoreAndEmptyJSON(t *testing.T) {
	c, err := scanCandidate(candidateRow(nil, nil, nil))
	require.NoError(t, err)
	assert.Nil(t, c.Score)
	assert.False(t, c.IsScored())
}

func TestScanCandidate_Errors(t *testing.T) {
	_, err := scanCandidate(candidateRow(nil, []byte(`{not json`), nil))
	assert.ErrorContains(t, err, "failed to parse extracted data")

	_, err = scanCandidate(fakeRow{err: errors.New("conn reset")})
	assert.EqualError(t, err, "conn reset")
}
