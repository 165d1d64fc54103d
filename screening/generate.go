package screening

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireflow/backend/models"
)

const jdTemplate = `Write a job description for the role below in a %s tone.

ROLE TITLE: %s
KEY REQUIREMENTS: %s
COMPANY CONTEXT: %s

Return a JSON object:
{
  "summary": "Two or three sentence role summary",
  "responsibilities": ["..."],
  "required_skills": {"technical": ["..."], "soft": ["..."]},
  "preferred": ["Nice-to-have qualifications"],
  "about_company": "Short paragraph"
}
Return ONLY the JSON object.`

// GenerateJD drafts a job description
func (s *Service) GenerateJD(ctx context.Context, req models.JDRequest) (*models.JDResponse, error) {
	if strings.TrimSpace(req.RoleTitle) == "" {
		return nil, required("role_title")
	}

	prompt := fmt.Sprintf(jdTemplate,
		orDefault(req.Tone, "professional"),
		req.RoleTitle,
		orDefault(truncate(req.KeyRequirements, 4000), "Use common requirements for this role"),
		orDefault(truncate(req.CompanyContext, 4000), "Not provided"),
	)

	var reply models.JDResponse
	if _, err := s.generate(ctx, "job description", prompt, []string{"summary", "responsibilities"}, &reply); err != nil {
		return nil, err
	}

	reply.Responsibilities = reply.Responsibilities.OrEmpty()
	reply.RequiredSkills.Technical = reply.RequiredSkills.Technical.OrEmpty()
	reply.RequiredSkills.Soft = reply.RequiredSkills.Soft.OrEmpty()
	reply.Preferred = reply.Preferred.OrEmpty()
	return &reply, nil
}

const outreachTemplate = `Write a personalized %s recruiting message in a %s tone.

CANDIDATE: %s
ROLE: %s
COMPANY: %s
%s
Return a JSON object:
{
  "channel": "%s",
  "subject": "Subject line (empty for linkedin)",
  "message": "The message body",
  "follow_up": "A short follow-up to send if there is no reply after a week"
}
Return ONLY the JSON object.`

// Outreach drafts a recruiting message to a candidate
func (s *Service) Outreach(ctx context.Context, req models.OutreachRequest, appURL string) (*models.OutreachResponse, error) {
	if strings.TrimSpace(req.CandidateName) == "" {
		return nil, required("candidate_name")
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, required("role")
	}

	channel := strings.ToLower(orDefault(req.Channel, "email"))
	details := ""
	if !isEmptyJSON(req.CandidateData) {
		details += fmt.Sprintf("CANDIDATE BACKGROUND:\n%s\n", payloadText(req.CandidateData))
	}
	if appURL != "" {
		details += fmt.Sprintf("Invite the candidate to learn more at %s\n", appURL)
	}

	prompt := fmt.Sprintf(outreachTemplate,
		channel,
		orDefault(req.Tone, "warm and professional"),
		req.CandidateName,
		req.Role,
		orDefault(req.CompanyName, "our company"),
		details,
		channel,
	)

	var reply models.OutreachResponse
	if _, err := s.generate(ctx, "outreach", prompt, []string{"message"}, &reply); err != nil {
		return nil, err
	}
	reply.Channel = orDefault(reply.Channel, channel)
	return &reply, nil
}

const salaryTemplate = `Estimate the market compensation for this role.

ROLE: %s
LOCATION: %s
YEARS OF EXPERIENCE: %s
SKILLS: %s
%s
Return a JSON object with annual amounts as integers:
{
  "currency": "USD",
  "min": 0,
  "median": 0,
  "max": 0,
  "confidence": 0-100,
  "factors": ["What drives the range"],
  "market_insight": "One or two sentences on current demand"
}
Return ONLY the JSON object.`

// PredictSalary estimates a compensation range
func (s *Service) PredictSalary(ctx context.Context, req models.SalaryRequest) (*models.SalaryResponse, error) {
	if strings.TrimSpace(req.Role) == "" {
		return nil, required("role")
	}

	years := "Not provided"
	if req.ExperienceYears > 0 {
		years = fmt.Sprintf("%.1f", req.ExperienceYears)
	}
	background := ""
	if !isEmptyJSON(req.CandidateData) {
		background = fmt.Sprintf("CANDIDATE BACKGROUND:\n%s\n", payloadText(req.CandidateData))
	}

	prompt := fmt.Sprintf(salaryTemplate,
		req.Role,
		orDefault(req.Location, "Remote"),
		years,
		orDefault(strings.Join(req.Skills, ", "), "Not provided"),
		background,
	)

	var reply models.SalaryResponse
	if _, err := s.generate(ctx, "salary prediction", prompt, []string{"min", "median", "max"}, &reply); err != nil {
		return nil, err
	}

	reply.Currency = orDefault(reply.Currency, "USD")
	reply.Confidence = models.FlexibleInt(reply.Confidence.Clamp(0, 100))
	if reply.Min < 0 {
		reply.Min = 0
	}
	if reply.Max < reply.Min {
		reply.Min, reply.Max = reply.Max, reply.Min
	}
	if reply.Median < reply.Min || reply.Median > reply.Max {
		reply.Median = (reply.Min + reply.Max) / 2
	}
	reply.Factors = reply.Factors.OrEmpty()
	return &reply, nil
}
