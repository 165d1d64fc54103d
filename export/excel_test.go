package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hireflow/backend/models"
)

func TestWriteCandidates(t *testing.T) {
	score := 88
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	candidates := []*models.Candidate{
		{
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			Role:          "Backend Engineer",
			Status:        models.StatusShortlisted,
			Score:         &score,
			ExtractedData: models.ExtractedData{Skills: models.FlexibleStringSlice{"Go", "Postgres"}, CareerLevel: "Senior"},
			ResumeURL:     "memory://resumes/resumes/jane.pdf",
			ResumeName:    "jane.pdf",
			CreatedAt:     created,
		},
		{Name: "John Roe", Status: models.StatusPending, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCandidates(&buf, candidates, created))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{CandidatesSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(CandidatesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, candidateHeaders, rows[0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Shortlisted", rows[1][3])
	assert.Equal(t, "88", rows[1][4])
	assert.Equal(t, "Go, Postgres", rows[1][6])
	assert.Equal(t, "", rows[2][4])

	hasLink, target, err := f.GetCellHyperLink(CandidatesSheet, "J2")
	require.NoError(t, err)
	assert.True(t, hasLink)
	assert.Equal(t, "memory://resumes/resumes/jane.pdf", target)

	total, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
	pending, err := f.GetCellValue(SummarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "1", pending)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "candidates-2026-03-01.xlsx", Filename(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)))
}
