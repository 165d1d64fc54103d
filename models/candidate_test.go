package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  CandidateStatus
		ok    bool
	}{
		{"Accepted", StatusAccepted, true},
		{"accepted", StatusAccepted, true},
		{" SHORTLISTED ", StatusShortlisted, true},
		{"review", StatusReview, true},
		{"hired", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestNormalizeRound(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Technical", RoundTechnical, true},
		{"system design", RoundSystems, true},
		{"System", RoundSystems, true},
		{"Cultural", RoundCulture, true},
		{"behavioral", RoundCulture, true},
		{"HR", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeRound(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestNormalizeCareerLevel(t *testing.T) {
	assert.Equal(t, CareerLevelEntry, NormalizeCareerLevel("Junior"))
	assert.Equal(t, CareerLevelSenior, NormalizeCareerLevel("senior"))
	assert.Equal(t, CareerLevelLead, NormalizeCareerLevel("Staff"))
	assert.Equal(t, CareerLevelUnknown, NormalizeCareerLevel(""))
}

func TestExtractedData_Normalize(t *testing.T) {
	var data ExtractedData
	data.Projects = []Project{{Name: "x"}}
	data.Normalize()

	assert.NotNil(t, data.Skills)
	assert.NotNil(t, data.Education)
	assert.NotNil(t, data.Experience)
	assert.NotNil(t, data.Projects[0].Technologies)
	assert.Equal(t, CareerLevelUnknown, data.CareerLevel)
}

func TestAnalysis_Normalize(t *testing.T) {
	a := Analysis{SubScores: SubScores{TechnicalSkills: 130, Experience: -5, Education: 70}}
	a.Normalize()

	assert.Equal(t, FlexibleInt(100), a.SubScores.TechnicalSkills)
	assert.Equal(t, FlexibleInt(0), a.SubScores.Experience)
	assert.Equal(t, FlexibleInt(70), a.SubScores.Education)
	assert.NotNil(t, a.Strengths)
	assert.NotNil(t, a.RedFlags)
	assert.NotNil(t, a.InterviewQuestions)
}

func TestCandidate_IsScored(t *testing.T) {
	c := Candidate{}
	assert.False(t, c.IsScored())

	score := 0
	c.Score = &score
	assert.True(t, c.IsScored())
}

func TestSummarize(t *testing.T) {
	score := func(v int) *int { return &v }
	stats := Summarize([]*Candidate{
		{Status: StatusAccepted, Score: score(90)},
		{Status: StatusPending, Score: score(71)},
		{Status: StatusPending},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Scored)
	assert.Equal(t, 80.5, stats.AverageScore)
	assert.Equal(t, 2, stats.ByStatus[StatusPending])
	assert.Equal(t, 1, stats.ByStatus[StatusAccepted])
	assert.Equal(t, 0, stats.ByStatus[StatusRejected])

	empty := Summarize(nil)
	assert.Zero(t, empty.AverageScore)
	assert.Len(t, empty.ByStatus, len(AllStatuses))
}
