package models

import (
	"math"
	"strings"
	"time"
)

// CandidateStatus is the recruiter-driven workflow state
type CandidateStatus string

// Status constants. Any status may move to any other.
const (
	StatusPending     CandidateStatus = "Pending"
	StatusReview      CandidateStatus = "Review"
	StatusShortlisted CandidateStatus = "Shortlisted"
	StatusAccepted    CandidateStatus = "Accepted"
	StatusRejected    CandidateStatus = "Rejected"
)

// AllStatuses lists statuses in dashboard order
var AllStatuses = []CandidateStatus{
	StatusPending,
	StatusReview,
	StatusShortlisted,
	StatusAccepted,
	StatusRejected,
}

// ParseStatus matches a status case-insensitively
func ParseStatus(raw string) (CandidateStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range AllStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Candidate is one resume submission and its derived analysis
// @Description Candidate record
type Candidate struct {
	ID             string          `json:"id" firestore:"-"`
	Name           string          `json:"name" firestore:"name"`
	Email          string          `json:"email" firestore:"email"`
	Role           string          `json:"role" firestore:"role"`
	JobDescription string          `json:"job_description" firestore:"job_description"`
	Score          *int            `json:"score" firestore:"score"` // nil until the first scoring call
	Status         CandidateStatus `json:"status" firestore:"status"`
	ExtractedData  ExtractedData   `json:"extracted_data" firestore:"extracted_data"`
	Analysis       Analysis        `json:"analysis" firestore:"analysis"`
	ResumeURL      string          `json:"resume_url,omitempty" firestore:"resume_url"`
	ResumeName     string          `json:"resume_name,omitempty" firestore:"resume_name"`
	AvatarURL      string          `json:"avatar_url,omitempty" firestore:"avatar_url"`
	CreatedAt      time.Time       `json:"created_at" firestore:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" firestore:"updated_at"`
}

// IsScored reports whether at least one scoring call has been persisted
func (c *Candidate) IsScored() bool {
	return c.Score != nil
}

// ExtractedData is the output of the resume parsing call
type ExtractedData struct {
	Name        string              `json:"name" firestore:"name"`
	Email       string              `json:"email" firestore:"email"`
	Phone       string              `json:"phone" firestore:"phone"`
	Summary     string              `json:"summary" firestore:"summary"`
	Skills      FlexibleStringSlice `json:"skills" firestore:"skills"`
	Projects    []Project           `json:"projects" firestore:"projects"`
	Experience  []Experience        `json:"experience" firestore:"experience"`
	Education   FlexibleStringSlice `json:"education" firestore:"education"`
	CareerLevel string              `json:"career_level" firestore:"career_level"`
	Links       FlexibleStringSlice `json:"links,omitempty" firestore:"links"`
}

// Project is a project listed on a resume
type Project struct {
	Name         string              `json:"name" firestore:"name"`
	Description  string              `json:"description" firestore:"description"`
	Technologies FlexibleStringSlice `json:"technologies" firestore:"technologies"`
}

// Experience is one role in the candidate's work history
type Experience struct {
	Title       string `json:"title" firestore:"title"`
	Company     string `json:"company" firestore:"company"`
	Duration    string `json:"duration" firestore:"duration"`
	Description string `json:"description" firestore:"description"`
}

// Normalize replaces nil sections with empty values
func (e *ExtractedData) Normalize() {
	e.Skills = e.Skills.OrEmpty()
	e.Education = e.Education.OrEmpty()
	e.Links = e.Links.OrEmpty()
	if e.Projects == nil {
		e.Projects = []Project{}
	}
	for i := range e.Projects {
		e.Projects[i].Technologies = e.Projects[i].Technologies.OrEmpty()
	}
	if e.Experience == nil {
		e.Experience = []Experience{}
	}
	e.CareerLevel = NormalizeCareerLevel(e.CareerLevel)
}

// Career level constants
const (
	CareerLevelEntry     = "Entry"
	CareerLevelMid       = "Mid"
	CareerLevelSenior    = "Senior"
	CareerLevelLead      = "Lead"
	CareerLevelExecutive = "Executive"
	CareerLevelUnknown   = "Unknown"
)

// NormalizeCareerLevel maps free-form seniority labels to the fixed set
func NormalizeCareerLevel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "entry", "junior", "intern", "graduate", "entry-level", "entry level":
		return CareerLevelEntry
	case "mid", "mid-level", "mid level", "intermediate":
		return CareerLevelMid
	case "senior", "sr", "senior-level":
		return CareerLevelSenior
	case "lead", "staff", "principal", "architect":
		return CareerLevelLead
	case "executive", "director", "vp", "c-level", "head":
		return CareerLevelExecutive
	default:
		return CareerLevelUnknown
	}
}

// Analysis is the output of the scoring call. Every section is optional;
// new sections are added as features grow.
type Analysis struct {
	SubScores          SubScores           `json:"sub_scores" firestore:"sub_scores"`
	Reasoning          string              `json:"reasoning" firestore:"reasoning"`
	Summary            string              `json:"summary" firestore:"summary"`
	Strengths          FlexibleStringSlice `json:"strengths" firestore:"strengths"`
	Weaknesses         FlexibleStringSlice `json:"weaknesses" firestore:"weaknesses"`
	MissingSkills      FlexibleStringSlice `json:"missing_skills" firestore:"missing_skills"`
	RedFlags           FlexibleStringSlice `json:"red_flags" firestore:"red_flags"`
	InterviewQuestions []InterviewQuestion `json:"interview_questions" firestore:"interview_questions"`
	CultureFit         string              `json:"culture_fit" firestore:"culture_fit"`
	GrowthPotential    string              `json:"growth_potential" firestore:"growth_potential"`
	Persona            string              `json:"persona,omitempty" firestore:"persona"`
	Provider           string              `json:"provider,omitempty" firestore:"provider"`
}

// SubScores breaks the match score down by dimension (each 0-100)
type SubScores struct {
	TechnicalSkills FlexibleInt `json:"technical_skills" firestore:"technical_skills"`
	Experience      FlexibleInt `json:"experience" firestore:"experience"`
	Education       FlexibleInt `json:"education" firestore:"education"`
	CultureFit      FlexibleInt `json:"culture_fit" firestore:"culture_fit"`
	Communication   FlexibleInt `json:"communication" firestore:"communication"`
}

// InterviewQuestion is one generated question tagged with its round
type InterviewQuestion struct {
	Round          string `json:"round" firestore:"round"`
	Question       string `json:"question" firestore:"question"`
	ExpectedAnswer string `json:"expected_answer,omitempty" firestore:"expected_answer"`
}

// Interview rounds
const (
	RoundTechnical = "Technical"
	RoundCulture   = "Culture"
	RoundSystems   = "Systems"
)

// InterviewRounds lists the rounds in presentation order
var InterviewRounds = []string{RoundTechnical, RoundCulture, RoundSystems}

// QuestionsPerRound is the fixed number of questions per round
const QuestionsPerRound = 5

// NormalizeRound maps round labels and their aliases to a known round.
// The second result is false for unknown labels.
func NormalizeRound(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "technical", "tech", "coding":
		return RoundTechnical, true
	case "culture", "cultural", "behavioral", "behavioural", "culture fit":
		return RoundCulture, true
	case "systems", "system", "system design", "systems design", "architecture":
		return RoundSystems, true
	default:
		return "", false
	}
}

// Normalize clamps sub-scores and replaces nil sections with empty values
func (a *Analysis) Normalize() {
	a.SubScores.TechnicalSkills = FlexibleInt(a.SubScores.TechnicalSkills.Clamp(0, 100))
	a.SubScores.Experience = FlexibleInt(a.SubScores.Experience.Clamp(0, 100))
	a.SubScores.Education = FlexibleInt(a.SubScores.Education.Clamp(0, 100))
	a.SubScores.CultureFit = FlexibleInt(a.SubScores.CultureFit.Clamp(0, 100))
	a.SubScores.Communication = FlexibleInt(a.SubScores.Communication.Clamp(0, 100))
	a.Strengths = a.Strengths.OrEmpty()
	a.Weaknesses = a.Weaknesses.OrEmpty()
	a.MissingSkills = a.MissingSkills.OrEmpty()
	a.RedFlags = a.RedFlags.OrEmpty()
	if a.InterviewQuestions == nil {
		a.InterviewQuestions = []InterviewQuestion{}
	}
}

// Summarize counts candidates per status and averages the scores of
// scored candidates
func Summarize(candidates []*Candidate) CandidateStats {
	stats := CandidateStats{ByStatus: make(map[CandidateStatus]int, len(AllStatuses))}
	for _, s := range AllStatuses {
		stats.ByStatus[s] = 0
	}

	total := 0
	for _, c := range candidates {
		stats.Total++
		stats.ByStatus[c.Status]++
		if c.IsScored() {
			stats.Scored++
			total += *c.Score
		}
	}
	if stats.Scored > 0 {
		stats.AverageScore = math.Round(float64(total)/float64(stats.Scored)*10) / 10
	}
	return stats
}
