package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireflow/backend/screening"
)

// ScoreCandidateTool scores a candidate against a job description
type ScoreCandidateTool struct {
	svc *screening.Service
}

// NewScoreCandidateTool creates a new candidate scoring tool
func NewScoreCandidateTool(svc *screening.Service) *ScoreCandidateTool {
	return &ScoreCandidateTool{svc: svc}
}

func (t *ScoreCandidateTool) Name() string {
	return "score_candidate"
}

func (t *ScoreCandidateTool) Description() string {
	return `Score how well a candidate matches a job description using AI.
Input is the job description and the parsed candidate data.
Returns a 0-100 score, a hiring recommendation and an analysis with 15 interview questions.`
}

func (t *ScoreCandidateTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"jd", "candidate_data"}, map[string]interface{}{
		"jd":              property("string", "The job description"),
		"candidate_data":  property("object", "Parsed candidate data, as returned by parse_resume"),
		"persona":         property("string", "Evaluator persona: expert, hacker, architect, mentor or executive"),
		"company_culture": property("string", "Optional description of the company culture"),
	})
}

// ScoreCandidateInput represents the input for candidate scoring
type ScoreCandidateInput struct {
	JD             string          `json:"jd"`
	CandidateData  json.RawMessage `json:"candidate_data"`
	Persona        string          `json:"persona,omitempty"`
	CompanyCulture string          `json:"company_culture,omitempty"`
}

func (t *ScoreCandidateTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScoreCandidateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Fail(fmt.Sprintf("invalid input: %v", err))
	}

	resp, err := t.svc.Score(ctx, screening.ScoreInput{
		JD:             in.JD,
		CandidateData:  in.CandidateData,
		Persona:        in.Persona,
		CompanyCulture: in.CompanyCulture,
	})
	if err != nil {
		return failure("scoring", err)
	}
	return Succeed(resp)
}
