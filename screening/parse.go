package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
)

// DemoErrorMarker is set on parse responses that carry demo data
const DemoErrorMarker = "AI parsing unavailable: all providers failed, showing demo data"

// ParseInput is one resume to parse. Text is the locally extracted text;
// Data and MimeType are used when Text is empty.
type ParseInput struct {
	Filename string
	Text     string
	Data     []byte
	MimeType string
}

const parsePrompt = `Analyze this resume and extract structured information.
Return a JSON object with the following fields (use empty strings or arrays for missing data):

{
  "name": "Full name",
  "email": "Email address",
  "phone": "Phone number",
  "summary": "Two sentence professional summary",
  "skills": ["skill1", "skill2"],
  "projects": [
    {"name": "Project name", "description": "What it does", "technologies": ["Go", "Postgres"]}
  ],
  "experience": [
    {"title": "Software Engineer", "company": "Company", "duration": "2020 - 2023", "description": "Key achievements"}
  ],
  "education": ["BSc Computer Science, University, 2019"],
  "career_level": "Entry|Mid|Senior|Lead|Executive",
  "links": ["https://github.com/..."]
}

Return ONLY the JSON object, no markdown formatting, no explanation.`

// ParseResume extracts structured data from a resume. When every provider
// fails the response carries demo data with Demo set and an error marker,
// and the returned error is nil.
func (s *Service) ParseResume(ctx context.Context, in ParseInput) (*models.ParseResponse, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, required("file")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		if len(in.Data) > 0 && s.docParser != nil {
			return s.parseDocument(ctx, in)
		}
		return nil, &ValidationError{Field: "file", Message: "no extractable text"}
	}

	prompt := fmt.Sprintf("%s\n\nRESUME TEXT:\n%s", parsePrompt, truncate(text, maxPromptPayload))

	var data models.ExtractedData
	res, err := s.generate(ctx, "parse", prompt, []string{"name", "skills", "experience"}, &data)
	if err != nil {
		if errors.Is(err, llm.ErrAllProvidersFailed) {
			s.log.WithField("filename", in.Filename).Warn("parsing degraded to demo payload")
			return demoParse(in.Filename), nil
		}
		return nil, err
	}

	data.Normalize()
	s.log.WithFields(logrus.Fields{
		"filename": in.Filename,
		"provider": res.Provider,
		"skills":   len(data.Skills),
	}).Info("parsed resume")

	return &models.ParseResponse{
		Filename:   in.Filename,
		ParsedData: data,
		Provider:   res.Provider,
	}, nil
}

// parseDocument sends the raw file to the multimodal parser. Any failure
// degrades to the demo payload like the text path.
func (s *Service) parseDocument(ctx context.Context, in ParseInput) (*models.ParseResponse, error) {
	text, err := s.docParser.GenerateFromDocument(ctx, in.Data, orDefault(in.MimeType, "application/pdf"), parsePrompt)
	if err == nil {
		var data models.ExtractedData
		if err = json.Unmarshal([]byte(llm.CleanJSON(text)), &data); err == nil {
			data.Normalize()
			return &models.ParseResponse{
				Filename:   in.Filename,
				ParsedData: data,
				Provider:   "gemini-document",
			}, nil
		}
	}

	s.log.WithError(err).WithField("filename", in.Filename).Warn("document parsing degraded to demo payload")
	return demoParse(in.Filename), nil
}

func demoParse(filename string) *models.ParseResponse {
	data := models.ExtractedData{
		Name:    "Alex Morgan",
		Email:   "alex.morgan@example.com",
		Phone:   "+1 555 0100",
		Summary: "Full-stack engineer with six years of experience building web platforms.",
		Skills:  models.FlexibleStringSlice{"Go", "TypeScript", "React", "PostgreSQL", "Docker"},
		Projects: []models.Project{{
			Name:         "Realtime Analytics Dashboard",
			Description:  "Streaming metrics dashboard for operations teams.",
			Technologies: models.FlexibleStringSlice{"Go", "React", "WebSockets"},
		}},
		Experience: []models.Experience{{
			Title:       "Senior Software Engineer",
			Company:     "Example Corp",
			Duration:    "2021 - Present",
			Description: "Led the migration of the billing platform to microservices.",
		}},
		Education:   models.FlexibleStringSlice{"BSc Computer Science"},
		CareerLevel: models.CareerLevelSenior,
	}
	data.Normalize()

	return &models.ParseResponse{
		Filename:   filename,
		ParsedData: data,
		Demo:       true,
		Error:      DemoErrorMarker,
	}
}
