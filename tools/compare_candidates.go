package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
)

// CompareCandidatesTool picks the strongest of several candidates
type CompareCandidatesTool struct {
	svc *screening.Service
}

// NewCompareCandidatesTool creates a new batch comparison tool
func NewCompareCandidatesTool(svc *screening.Service) *CompareCandidatesTool {
	return &CompareCandidatesTool{svc: svc}
}

func (t *CompareCandidatesTool) Name() string {
	return "compare_candidates"
}

func (t *CompareCandidatesTool) Description() string {
	return `Compare two or more candidates for the same role and name the top pick.
Returns the top pick, the winning rationale, a confidence and the trade-offs.`
}

func (t *CompareCandidatesTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"candidates"}, map[string]interface{}{
		"candidates": map[string]interface{}{
			"type":        "array",
			"description": "At least two candidate objects",
			"items":       map[string]interface{}{"type": "object"},
			"minItems":    2,
		},
		"jd": property("string", "Optional job description to compare against"),
	})
}

func (t *CompareCandidatesTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in models.BatchScoreRequest
	if err := json.Unmarshal(input, &in); err != nil {
		return Fail(fmt.Sprintf("invalid input: %v", err))
	}

	resp, err := t.svc.CompareBatch(ctx, in)
	if err != nil {
		return failure("comparison", err)
	}
	return Succeed(resp)
}
