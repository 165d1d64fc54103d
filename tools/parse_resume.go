package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireflow/backend/screening"
)

// ParseResumeTool extracts structured candidate data from resume text
type ParseResumeTool struct {
	svc *screening.Service
}

// NewParseResumeTool creates a new resume parsing tool
func NewParseResumeTool(svc *screening.Service) *ParseResumeTool {
	return &ParseResumeTool{svc: svc}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return `Parse resume text into structured candidate data using AI.
Returns name, contact details, skills, projects, experience, education and career level.
When no AI provider is reachable the result is a demo profile flagged with "demo": true.`
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"resume_text"}, map[string]interface{}{
		"resume_text": property("string", "The plain text content of the resume"),
		"filename":    property("string", "Original file name, used for logging and the response"),
	})
}

// ParseResumeInput represents the input for resume parsing
type ParseResumeInput struct {
	ResumeText string `json:"resume_text"`
	Filename   string `json:"filename,omitempty"`
}

func (t *ParseResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ParseResumeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Fail(fmt.Sprintf("invalid input: %v", err))
	}

	resp, err := t.svc.ParseResume(ctx, screening.ParseInput{
		Filename: orDefault(in.Filename, "resume.txt"),
		Text:     in.ResumeText,
	})
	if err != nil {
		return failure("resume parsing", err)
	}
	return Succeed(resp)
}
