package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/models"
)

// Personas frame the scoring prompt
const (
	PersonaExpert    = "expert"
	PersonaHacker    = "hacker"
	PersonaArchitect = "architect"
	PersonaMentor    = "mentor"
	PersonaExecutive = "executive"
)

var personas = map[string]string{
	PersonaExpert:    "You are a senior technical recruiter with deep experience hiring engineers. Weigh skills, experience and impact evenly.",
	PersonaHacker:    "You are a pragmatic staff engineer who values shipped projects, open-source work and hands-on depth over credentials.",
	PersonaArchitect: "You are a principal architect focused on system design ability, scalability thinking and technical breadth.",
	PersonaMentor:    "You are an engineering mentor focused on growth potential, learning velocity and coachability.",
	PersonaExecutive: "You are a VP of Engineering focused on leadership, business impact and strategic fit.",
}

// NormalizePersona returns a known persona, defaulting to expert
func NormalizePersona(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := personas[p]; ok {
		return p
	}
	return PersonaExpert
}

// Recommendation values
const (
	RecommendStrongHire = "Strong Hire"
	RecommendHire       = "Hire"
	RecommendMaybe      = "Maybe"
	RecommendNoHire     = "No Hire"
)

// NormalizeRecommendation maps the provider's label onto the fixed set,
// deriving it from score when the label is absent or unknown
func NormalizeRecommendation(raw string, score int) string {
	if label, ok := recommendationLabel(raw); ok {
		return label
	}

	switch {
	case score >= 85:
		return RecommendStrongHire
	case score >= 70:
		return RecommendHire
	case score >= 50:
		return RecommendMaybe
	default:
		return RecommendNoHire
	}
}

// recommendationLabel maps the label variants models produce onto the
// canonical labels
func recommendationLabel(raw string) (string, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(raw, "_", " ")), " ")) {
	case "strong hire", "strong yes", "strongly recommend":
		return RecommendStrongHire, true
	case "hire", "yes", "recommend":
		return RecommendHire, true
	case "maybe", "lean hire", "consider", "borderline":
		return RecommendMaybe, true
	case "no hire", "no", "reject", "do not hire":
		return RecommendNoHire, true
	}
	return "", false
}

// ScoreInput is a scoring request
type ScoreInput struct {
	JD             string
	CandidateData  json.RawMessage
	Persona        string
	CompanyCulture string
}

type scoreReply struct {
	Score          models.FlexibleInt `json:"score"`
	Recommendation string             `json:"recommendation"`
	Confidence     models.FlexibleInt `json:"confidence"`
	Analysis       models.Analysis    `json:"analysis"`
}

const scoreTemplate = `%s

Evaluate how well this candidate matches the job description.

JOB DESCRIPTION:
%s

CANDIDATE DATA:
%s
%s
Return a JSON object with:
{
  "score": 0-100,
  "recommendation": "Strong Hire|Hire|Maybe|No Hire",
  "confidence": 0-100,
  "analysis": {
    "sub_scores": {"technical_skills": 0-100, "experience": 0-100, "education": 0-100, "culture_fit": 0-100, "communication": 0-100},
    "reasoning": "3-4 sentences explaining the score",
    "summary": "One sentence verdict",
    "strengths": ["..."],
    "weaknesses": ["..."],
    "missing_skills": ["..."],
    "red_flags": ["..."],
    "culture_fit": "Short assessment",
    "growth_potential": "Short assessment",
    "interview_questions": [
      {"round": "Technical", "question": "...", "expected_answer": "..."}
    ]
  }
}

Generate exactly 15 interview_questions: 5 with round "Technical", 5 with round "Culture", 5 with round "Systems".
Tailor each question to this candidate's resume and the job description.
Return ONLY the JSON object.`

// Score rates a candidate against a job description
func (s *Service) Score(ctx context.Context, in ScoreInput) (*models.ScoreResponse, error) {
	if strings.TrimSpace(in.JD) == "" {
		return nil, required("jd")
	}
	if isEmptyJSON(in.CandidateData) {
		return nil, required("candidate_data")
	}

	persona := NormalizePersona(in.Persona)
	culture := ""
	if c := strings.TrimSpace(in.CompanyCulture); c != "" {
		culture = fmt.Sprintf("\nCOMPANY CULTURE:\n%s\nWeigh culture_fit against this culture.\n", truncate(c, 2000))
	}

	prompt := fmt.Sprintf(scoreTemplate,
		personas[persona],
		truncate(in.JD, maxPromptPayload),
		payloadText(in.CandidateData),
		culture,
	)

	var reply scoreReply
	res, err := s.generate(ctx, "scoring", prompt, []string{"score", "recommendation", "analysis"}, &reply)
	if err != nil {
		return nil, err
	}

	score := reply.Score.Clamp(0, 100)
	analysis := reply.Analysis
	analysis.Normalize()
	analysis.InterviewQuestions = NormalizeInterviewQuestions(analysis.InterviewQuestions)
	analysis.Persona = persona
	analysis.Provider = res.Provider

	s.log.WithFields(logrus.Fields{
		"provider": res.Provider,
		"persona":  persona,
		"score":    score,
	}).Info("scored candidate")

	return &models.ScoreResponse{
		Score:          score,
		Recommendation: NormalizeRecommendation(reply.Recommendation, score),
		Confidence:     reply.Confidence.Clamp(0, 100),
		Analysis:       analysis,
	}, nil
}

// ScoreCandidate re-scores a stored candidate with its job description and extracted data
func (s *Service) ScoreCandidate(ctx context.Context, c *models.Candidate, persona string) (*models.ScoreResponse, error) {
	data, err := json.Marshal(c.ExtractedData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extracted data: %w", err)
	}
	if persona == "" {
		persona = c.Analysis.Persona
	}
	return s.Score(ctx, ScoreInput{
		JD:            c.JobDescription,
		CandidateData: data,
		Persona:       persona,
	})
}
