package models

import (
	"encoding/json"
	"time"
)

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"jd is required"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"candidate_data is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string   `json:"status" example:"healthy"`
	Version   string   `json:"version" example:"1.0.0"`
	Timestamp string   `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Providers []string `json:"providers"`

	// Whether candidate chat transcripts are persisted
	TranscriptsStored bool `json:"transcripts_stored"`
}

// ChatTurn is one prior message in a conversation. Clients send either
// content or text.
type ChatTurn struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content,omitempty" example:"What is your strongest project?"`
	Text    string `json:"text,omitempty"`
}

// Body returns whichever text field the client populated
func (t ChatTurn) Body() string {
	if t.Content != "" {
		return t.Content
	}
	return t.Text
}

// ParseResponse is returned by the parsing endpoint
// @Description Structured data extracted from a resume
type ParseResponse struct {
	Filename   string        `json:"filename" example:"jane_doe.pdf"`
	ParsedData ExtractedData `json:"parsed_data"`
	Provider   string        `json:"provider,omitempty" example:"gemini"`
	Demo       bool          `json:"demo,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// ScoreRequest asks for a match score against a job description
// @Description Scoring request
type ScoreRequest struct {
	JD             string          `json:"jd" example:"Senior Go engineer, 5+ years..."`
	CandidateData  json.RawMessage `json:"candidate_data" swaggertype:"object"`
	Persona        string          `json:"persona,omitempty" example:"expert"`
	CompanyCulture string          `json:"company_culture,omitempty" example:"Remote-first, async"`
}

// ScoreResponse is the scoring result
// @Description Match score with analysis
type ScoreResponse struct {
	Score          int      `json:"score" example:"82"`
	Recommendation string   `json:"recommendation" example:"Hire"`
	Confidence     int      `json:"confidence" example:"75"`
	Analysis       Analysis `json:"analysis"`
}

// BatchScoreRequest compares several candidates for one role
// @Description Batch comparison request
type BatchScoreRequest struct {
	Candidates []json.RawMessage `json:"candidates" swaggertype:"array,object"`
	JD         string            `json:"jd,omitempty"`
}

// BatchScoreResponse names the strongest candidate
// @Description Batch comparison result
type BatchScoreResponse struct {
	TopPick          string              `json:"top_pick" example:"Jane Doe"`
	WinningRationale string              `json:"winning_rationale"`
	Confidence       FlexibleInt         `json:"confidence" swaggertype:"integer" example:"70"`
	TradeOffs        FlexibleStringSlice `json:"trade_offs"`
}

// RecommendationRequest asks for a hiring recommendation
type RecommendationRequest struct {
	Candidate      json.RawMessage `json:"candidate" swaggertype:"object"`
	JobDescription string          `json:"jobDescription"`
}

// RecommendationResponse is a hiring recommendation. Error is set when
// every provider failed and the payload is a placeholder.
type RecommendationResponse struct {
	Recommendation    string              `json:"recommendation" example:"Hire"`
	Confidence        FlexibleInt         `json:"confidence" swaggertype:"integer" example:"70"`
	Reasoning         string              `json:"reasoning"`
	CandidateFeedback string              `json:"candidate_feedback"`
	NextSteps         FlexibleStringSlice `json:"next_steps"`
	RedFlags          FlexibleStringSlice `json:"red_flags"`
	Highlights        FlexibleStringSlice `json:"highlights"`
	Error             string              `json:"error,omitempty"`
}

// ChatRequest is a recruiter question about a candidate
type ChatRequest struct {
	Message   string          `json:"message"`
	History   []ChatTurn      `json:"history,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty" swaggertype:"object"`
}

// ChatResponse is the assistant reply
type ChatResponse struct {
	Role    string `json:"role" example:"assistant"`
	Content string `json:"content"`
}

// CandidateChatRequest is a message to the candidate persona
type CandidateChatRequest struct {
	Message       string          `json:"message"`
	History       []ChatTurn      `json:"history,omitempty"`
	CandidateData json.RawMessage `json:"candidate_data,omitempty" swaggertype:"object"`
	Candidate     json.RawMessage `json:"candidate,omitempty" swaggertype:"object"`
	CandidateID   string          `json:"candidate_id,omitempty"`
}

// CandidateChatResponse is the persona reply
type CandidateChatResponse struct {
	Text string `json:"text"`
}

// TranscriptResponse is a stored candidate-persona conversation
type TranscriptResponse struct {
	CandidateID string     `json:"candidate_id"`
	History     []ChatTurn `json:"history"`
}

// JDRequest asks for a generated job description
type JDRequest struct {
	RoleTitle       string `json:"role_title" example:"Backend Engineer"`
	KeyRequirements string `json:"key_requirements,omitempty" example:"Go, Postgres, Kubernetes"`
	CompanyContext  string `json:"company_context,omitempty"`
	Tone            string `json:"tone,omitempty" example:"professional"`
}

// JDResponse is a generated job description
type JDResponse struct {
	Summary          string              `json:"summary"`
	Responsibilities FlexibleStringSlice `json:"responsibilities"`
	RequiredSkills   RequiredSkills      `json:"required_skills"`
	Preferred        FlexibleStringSlice `json:"preferred"`
	AboutCompany     string              `json:"about_company"`
}

// RequiredSkills splits required skills into technical and soft
type RequiredSkills struct {
	Technical FlexibleStringSlice `json:"technical"`
	Soft      FlexibleStringSlice `json:"soft"`
}

// OutreachRequest asks for a recruiting message
type OutreachRequest struct {
	CandidateName string          `json:"candidate_name"`
	Role          string          `json:"role"`
	CompanyName   string          `json:"company_name,omitempty"`
	Channel       string          `json:"channel,omitempty" example:"email"`
	Tone          string          `json:"tone,omitempty"`
	CandidateData json.RawMessage `json:"candidate_data,omitempty" swaggertype:"object"`
}

// OutreachResponse is a drafted recruiting message
type OutreachResponse struct {
	Channel  string `json:"channel"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	FollowUp string `json:"follow_up"`
}

// SalaryRequest asks for a compensation estimate
type SalaryRequest struct {
	Role            string          `json:"role"`
	Location        string          `json:"location,omitempty"`
	ExperienceYears float64         `json:"experience_years,omitempty"`
	Skills          []string        `json:"skills,omitempty"`
	CandidateData   json.RawMessage `json:"candidate_data,omitempty" swaggertype:"object"`
}

// SalaryResponse is a compensation estimate
type SalaryResponse struct {
	Currency      string              `json:"currency"`
	Min           FlexibleInt         `json:"min"`
	Median        FlexibleInt         `json:"median"`
	Max           FlexibleInt         `json:"max"`
	Confidence    FlexibleInt         `json:"confidence"`
	Factors       FlexibleStringSlice `json:"factors"`
	MarketInsight string              `json:"market_insight"`
}

// OnboardingRequest asks for an onboarding plan
type OnboardingRequest struct {
	CandidateData json.RawMessage `json:"candidate_data" swaggertype:"object"`
	Role          string          `json:"role"`
	TeamContext   string          `json:"team_context,omitempty"`
}

// OnboardingResponse is a 30/60/90 day plan
type OnboardingResponse struct {
	First30Days   FlexibleStringSlice `json:"first_30_days"`
	First60Days   FlexibleStringSlice `json:"first_60_days"`
	First90Days   FlexibleStringSlice `json:"first_90_days"`
	TrainingFocus FlexibleStringSlice `json:"training_focus"`
	Mentorship    string              `json:"mentorship"`
	Risks         FlexibleStringSlice `json:"risks"`
}

// PortfolioRequest asks for a portfolio review
type PortfolioRequest struct {
	PortfolioURL string          `json:"portfolio_url,omitempty"`
	GithubURL    string          `json:"github_url,omitempty"`
	Projects     json.RawMessage `json:"projects,omitempty" swaggertype:"array,object"`
	Role         string          `json:"role,omitempty"`
}

// PortfolioResponse is a portfolio review
type PortfolioResponse struct {
	OverallScore      FlexibleInt         `json:"overall_score"`
	TechnicalDepth    string              `json:"technical_depth"`
	CodeQuality       string              `json:"code_quality"`
	ProjectHighlights FlexibleStringSlice `json:"project_highlights"`
	Concerns          FlexibleStringSlice `json:"concerns"`
	Verdict           string              `json:"verdict"`
}

// RoleArchitectRequest asks for a role design from business goals
type RoleArchitectRequest struct {
	BusinessGoals string `json:"business_goals"`
	TeamSize      int    `json:"team_size,omitempty"`
	Stage         string `json:"stage,omitempty" example:"seed"`
	Budget        string `json:"budget,omitempty"`
}

// RoleArchitectResponse is a proposed role
type RoleArchitectResponse struct {
	RoleTitle           string              `json:"role_title"`
	Seniority           string              `json:"seniority"`
	Rationale           string              `json:"rationale"`
	KeyResponsibilities FlexibleStringSlice `json:"key_responsibilities"`
	MustHaveSkills      FlexibleStringSlice `json:"must_have_skills"`
	NiceToHaveSkills    FlexibleStringSlice `json:"nice_to_have_skills"`
	SuccessMetrics      FlexibleStringSlice `json:"success_metrics"`
}

// VideoRequest asks for an interview recording review from its transcript
type VideoRequest struct {
	Transcript    string `json:"transcript"`
	Role          string `json:"role,omitempty"`
	CandidateName string `json:"candidate_name,omitempty"`
}

// VideoResponse is an interview recording review
type VideoResponse struct {
	CommunicationScore FlexibleInt         `json:"communication_score"`
	ConfidenceScore    FlexibleInt         `json:"confidence_score"`
	Clarity            string              `json:"clarity"`
	KeyMoments         FlexibleStringSlice `json:"key_moments"`
	Concerns           FlexibleStringSlice `json:"concerns"`
	Summary            string              `json:"summary"`
}

// InterviewAddonRequest asks for one extra interview question
type InterviewAddonRequest struct {
	JD            string          `json:"jd"`
	CandidateData json.RawMessage `json:"candidate_data" swaggertype:"object"`
	Round         string          `json:"round" example:"Technical"`
	UserQuery     string          `json:"user_query,omitempty"`
}

// InterviewAddonResponse is one generated interview question
type InterviewAddonResponse struct {
	Round          string `json:"round"`
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// EmbeddingRequest asks for a text embedding
type EmbeddingRequest struct {
	Text string `json:"text"`
}

// EmbeddingResponse is a pooled text embedding
type EmbeddingResponse struct {
	Embedding    []float32    `json:"embedding"`
	Model        string       `json:"model"`
	ChunkingInfo ChunkingInfo `json:"chunking_info"`
}

// ChunkingInfo describes how the input text was split before embedding
type ChunkingInfo struct {
	TotalChunks     int    `json:"total_chunks"`
	ChunkSize       int    `json:"chunk_size"`
	Overlap         int    `json:"overlap"`
	Strategy        string `json:"strategy"`
	TotalCharacters int    `json:"total_characters"`
}

// V1AnalyzeRequest is the public API scoring request
type V1AnalyzeRequest struct {
	JD             string          `json:"jd"`
	Candidate      json.RawMessage `json:"candidate,omitempty" swaggertype:"object"`
	CandidateData  json.RawMessage `json:"candidate_data,omitempty" swaggertype:"object"`
	Persona        string          `json:"persona,omitempty"`
	CompanyCulture string          `json:"company_culture,omitempty"`
}

// CreateCandidateRequest creates a candidate without the upload pipeline
type CreateCandidateRequest struct {
	Name           string        `json:"name" binding:"required" example:"Jane Doe"`
	Email          string        `json:"email" example:"jane@example.com"`
	Role           string        `json:"role" example:"Backend Engineer"`
	JobDescription string        `json:"job_description"`
	ExtractedData  ExtractedData `json:"extracted_data"`
}

// UpdateStatusRequest moves a candidate to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Shortlisted"`
}

// CandidateListResponse lists candidates
type CandidateListResponse struct {
	Candidates []*Candidate `json:"candidates"`
	Total      int          `json:"total"`
}

// CandidateStats summarizes the candidate pool for the analytics view
type CandidateStats struct {
	Total        int                     `json:"total"`
	Scored       int                     `json:"scored"`
	AverageScore float64                 `json:"average_score"`
	ByStatus     map[CandidateStatus]int `json:"by_status"`
}

// SignedURLResponse is a temporary download link
type SignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Candidate deleted"`
}

// RescoreResult is the outcome for one candidate in a bulk rescore
type RescoreResult struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Score       *int   `json:"score,omitempty"`
	Skipped     bool   `json:"skipped,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BulkRescoreResponse summarizes a bulk rescore run
type BulkRescoreResponse struct {
	Rescored int             `json:"rescored"`
	Failed   int             `json:"failed"`
	Skipped  int             `json:"skipped"`
	Results  []RescoreResult `json:"results"`
}
