package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
)

// GenerateJDTool drafts a job description
type GenerateJDTool struct {
	svc *screening.Service
}

// NewGenerateJDTool creates a new job description tool
func NewGenerateJDTool(svc *screening.Service) *GenerateJDTool {
	return &GenerateJDTool{svc: svc}
}

func (t *GenerateJDTool) Name() string {
	return "generate_job_description"
}

func (t *GenerateJDTool) Description() string {
	return `Draft a structured job description for a role.
Returns a summary, responsibilities, required technical and soft skills, preferred skills and an about-company paragraph.`
}

func (t *GenerateJDTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"role_title"}, map[string]interface{}{
		"role_title":       property("string", "The job title"),
		"key_requirements": property("string", "Must-have requirements"),
		"company_context":  property("string", "What the company does"),
		"tone":             property("string", "Writing tone, for example professional or casual"),
	})
}

func (t *GenerateJDTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in models.JDRequest
	if err := json.Unmarshal(input, &in); err != nil {
		return Fail(fmt.Sprintf("invalid input: %v", err))
	}

	resp, err := t.svc.GenerateJD(ctx, in)
	if err != nil {
		return failure("job description generation", err)
	}
	return Succeed(resp)
}
