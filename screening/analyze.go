package screening

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireflow/backend/models"
)

// maxPageText caps fetched portfolio text in the prompt
const maxPageText = 8000

const onboardingTemplate = `Create a 30/60/90 day onboarding plan for this new hire.

ROLE: %s
TEAM CONTEXT: %s

NEW HIRE:
%s

Return a JSON object:
{
  "first_30_days": ["..."],
  "first_60_days": ["..."],
  "first_90_days": ["..."],
  "training_focus": ["Gaps to close based on the resume"],
  "mentorship": "Suggested mentorship setup",
  "risks": ["Onboarding risks to watch"]
}
Return ONLY the JSON object.`

// AnalyzeOnboarding builds an onboarding plan for a hire
func (s *Service) AnalyzeOnboarding(ctx context.Context, req models.OnboardingRequest) (*models.OnboardingResponse, error) {
	if isEmptyJSON(req.CandidateData) {
		return nil, required("candidate_data")
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, required("role")
	}

	prompt := fmt.Sprintf(onboardingTemplate,
		req.Role,
		orDefault(truncate(req.TeamContext, 4000), "Not provided"),
		payloadText(req.CandidateData),
	)

	var reply models.OnboardingResponse
	if _, err := s.generate(ctx, "onboarding", prompt, []string{"first_30_days", "first_60_days", "first_90_days"}, &reply); err != nil {
		return nil, err
	}

	reply.First30Days = reply.First30Days.OrEmpty()
	reply.First60Days = reply.First60Days.OrEmpty()
	reply.First90Days = reply.First90Days.OrEmpty()
	reply.TrainingFocus = reply.TrainingFocus.OrEmpty()
	reply.Risks = reply.Risks.OrEmpty()
	return &reply, nil
}

const portfolioTemplate = `Review this candidate's portfolio%s.

%s
Return a JSON object:
{
  "overall_score": 0-100,
  "technical_depth": "Assessment",
  "code_quality": "Assessment based on what is visible",
  "project_highlights": ["..."],
  "concerns": ["..."],
  "verdict": "One sentence"
}
Return ONLY the JSON object.`

// AnalyzePortfolio reviews a portfolio from its URL or project list
func (s *Service) AnalyzePortfolio(ctx context.Context, req models.PortfolioRequest) (*models.PortfolioResponse, error) {
	hasURL := strings.TrimSpace(req.PortfolioURL) != "" || strings.TrimSpace(req.GithubURL) != ""
	if !hasURL && isEmptyJSON(req.Projects) {
		return nil, required("portfolio_url or projects")
	}

	role := ""
	if strings.TrimSpace(req.Role) != "" {
		role = " for a " + req.Role + " role"
	}

	var sb strings.Builder
	if req.PortfolioURL != "" {
		fmt.Fprintf(&sb, "PORTFOLIO URL: %s\n", req.PortfolioURL)
		if page := s.portfolioPage(ctx, req.PortfolioURL); page != "" {
			fmt.Fprintf(&sb, "PORTFOLIO PAGE CONTENT:\n%s\n", page)
		}
	}
	if req.GithubURL != "" {
		fmt.Fprintf(&sb, "GITHUB: %s\n", req.GithubURL)
	}
	if !isEmptyJSON(req.Projects) {
		fmt.Fprintf(&sb, "PROJECTS:\n%s\n", payloadText(req.Projects))
	}

	var reply models.PortfolioResponse
	if _, err := s.generate(ctx, "portfolio analysis", fmt.Sprintf(portfolioTemplate, role, sb.String()),
		[]string{"overall_score", "verdict"}, &reply); err != nil {
		return nil, err
	}

	reply.OverallScore = models.FlexibleInt(reply.OverallScore.Clamp(0, 100))
	reply.ProjectHighlights = reply.ProjectHighlights.OrEmpty()
	reply.Concerns = reply.Concerns.OrEmpty()
	return &reply, nil
}

// portfolioPage returns the page text, or "" when no fetcher is configured
// or the page cannot be read. A failed fetch never fails the review.
func (s *Service) portfolioPage(ctx context.Context, pageURL string) string {
	if s.pages == nil {
		return ""
	}
	text, err := s.pages.FetchText(ctx, pageURL)
	if err != nil {
		s.log.WithError(err).WithField("url", pageURL).Warn("failed to fetch portfolio page")
		return ""
	}
	return truncate(text, maxPageText)
}

const roleArchitectTemplate = `You are an organizational designer. Propose the single most valuable hire for these goals.

BUSINESS GOALS:
%s

TEAM SIZE: %s
COMPANY STAGE: %s
BUDGET: %s

Return a JSON object:
{
  "role_title": "...",
  "seniority": "Entry|Mid|Senior|Lead|Executive",
  "rationale": "Why this role moves the goals forward",
  "key_responsibilities": ["..."],
  "must_have_skills": ["..."],
  "nice_to_have_skills": ["..."],
  "success_metrics": ["How to measure success after 6 months"]
}
Return ONLY the JSON object.`

// RoleArchitect proposes a role from business goals
func (s *Service) RoleArchitect(ctx context.Context, req models.RoleArchitectRequest) (*models.RoleArchitectResponse, error) {
	if strings.TrimSpace(req.BusinessGoals) == "" {
		return nil, required("business_goals")
	}

	teamSize := "Not provided"
	if req.TeamSize > 0 {
		teamSize = fmt.Sprintf("%d", req.TeamSize)
	}

	prompt := fmt.Sprintf(roleArchitectTemplate,
		truncate(req.BusinessGoals, 8000),
		teamSize,
		orDefault(req.Stage, "Not provided"),
		orDefault(req.Budget, "Not provided"),
	)

	var reply models.RoleArchitectResponse
	if _, err := s.generate(ctx, "role architect", prompt, []string{"role_title", "rationale"}, &reply); err != nil {
		return nil, err
	}

	reply.Seniority = models.NormalizeCareerLevel(reply.Seniority)
	reply.KeyResponsibilities = reply.KeyResponsibilities.OrEmpty()
	reply.MustHaveSkills = reply.MustHaveSkills.OrEmpty()
	reply.NiceToHaveSkills = reply.NiceToHaveSkills.OrEmpty()
	reply.SuccessMetrics = reply.SuccessMetrics.OrEmpty()
	return &reply, nil
}

const videoTemplate = `Review this interview recording transcript%s.

CANDIDATE: %s

TRANSCRIPT:
%s

Return a JSON object:
{
  "communication_score": 0-100,
  "confidence_score": 0-100,
  "clarity": "Assessment of how clearly the candidate explains ideas",
  "key_moments": ["Notable answers"],
  "concerns": ["..."],
  "summary": "Two sentence summary"
}
Return ONLY the JSON object.`

// AnalyzeVideo reviews an interview recording from its transcript
func (s *Service) AnalyzeVideo(ctx context.Context, req models.VideoRequest) (*models.VideoResponse, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, required("transcript")
	}

	role := ""
	if strings.TrimSpace(req.Role) != "" {
		role = " for a " + req.Role + " role"
	}

	prompt := fmt.Sprintf(videoTemplate,
		role,
		orDefault(req.CandidateName, "Not provided"),
		truncate(req.Transcript, maxPromptPayload),
	)

	var reply models.VideoResponse
	if _, err := s.generate(ctx, "video analysis", prompt, []string{"communication_score", "summary"}, &reply); err != nil {
		return nil, err
	}

	reply.CommunicationScore = models.FlexibleInt(reply.CommunicationScore.Clamp(0, 100))
	reply.ConfidenceScore = models.FlexibleInt(reply.ConfidenceScore.Clamp(0, 100))
	reply.KeyMoments = reply.KeyMoments.OrEmpty()
	reply.Concerns = reply.Concerns.OrEmpty()
	return &reply, nil
}
