package screening

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireflow/backend/models"
)

// questionBank fills rounds the provider left short
var questionBank = map[string][models.QuestionsPerRound]models.InterviewQuestion{
	models.RoundTechnical: {
		{Question: "Walk me through the most technically challenging project on your resume. What was your specific contribution?", ExpectedAnswer: "Clear ownership, concrete technical decisions and measurable outcome."},
		{Question: "How do you approach debugging a production issue you cannot reproduce locally?", ExpectedAnswer: "Hypothesis-driven use of logs, metrics and traces before changing code."},
		{Question: "Describe how you ensure code you ship is correct and maintainable.", ExpectedAnswer: "Testing strategy, code review habits and attention to readability."},
		{Question: "Tell me about a time you had to learn a new technology quickly to deliver.", ExpectedAnswer: "Structured learning approach and evidence of delivering with it."},
		{Question: "Which tool or language in your stack do you know best, and what are its main pitfalls?", ExpectedAnswer: "Depth beyond surface usage, with honest trade-offs."},
	},
	models.RoundCulture: {
		{Question: "Describe a disagreement with a teammate and how you resolved it.", ExpectedAnswer: "Respectful conflict resolution focused on outcomes."},
		{Question: "Tell me about feedback that changed how you work.", ExpectedAnswer: "Openness to feedback and concrete behavior change."},
		{Question: "How do you prioritize when everything seems urgent?", ExpectedAnswer: "Explicit prioritization framework and stakeholder communication."},
		{Question: "What kind of team environment helps you do your best work?", ExpectedAnswer: "Self-awareness and alignment with the team's way of working."},
		{Question: "Tell me about a mistake you made and what you did afterwards.", ExpectedAnswer: "Ownership, transparency and follow-up to prevent recurrence."},
	},
	models.RoundSystems: {
		{Question: "Design a service that handles a sudden 10x traffic spike. What changes first?", ExpectedAnswer: "Bottleneck identification, caching, horizontal scaling and backpressure."},
		{Question: "How would you design data storage for a feature with heavy reads and rare writes?", ExpectedAnswer: "Read replicas or caching with a clear consistency story."},
		{Question: "Walk me through how you would make a third-party API integration resilient.", ExpectedAnswer: "Timeouts, retries with backoff, circuit breaking and fallbacks."},
		{Question: "How do you decide between a monolith and separate services?", ExpectedAnswer: "Team size, deployment independence and operational cost trade-offs."},
		{Question: "What would you monitor to know a new system is healthy in production?", ExpectedAnswer: "Latency, error rate, saturation and business-level signals."},
	},
}

// NormalizeInterviewQuestions returns exactly QuestionsPerRound questions
// for each round in InterviewRounds order. Round labels are matched with
// their aliases, unknown rounds and blank questions are dropped, extras are
// cut and shortfalls are filled from the static bank.
func NormalizeInterviewQuestions(questions []models.InterviewQuestion) []models.InterviewQuestion {
	byRound := make(map[string][]models.InterviewQuestion, len(models.InterviewRounds))
	for _, q := range questions {
		round, ok := models.NormalizeRound(q.Round)
		if !ok || strings.TrimSpace(q.Question) == "" {
			continue
		}
		if len(byRound[round]) >= models.QuestionsPerRound {
			continue
		}
		q.Round = round
		q.Question = strings.TrimSpace(q.Question)
		byRound[round] = append(byRound[round], q)
	}

	out := make([]models.InterviewQuestion, 0, len(models.InterviewRounds)*models.QuestionsPerRound)
	for _, round := range models.InterviewRounds {
		got := byRound[round]
		out = append(out, got...)

		bank := questionBank[round]
		for i := 0; len(got)+i < models.QuestionsPerRound; i++ {
			q := bank[i]
			q.Round = round
			out = append(out, q)
		}
	}
	return out
}

const addonTemplate = `You are preparing a %s interview round.

JOB DESCRIPTION:
%s

CANDIDATE DATA:
%s
%s
Generate ONE additional %s interview question tailored to this candidate.
Return a JSON object:
{"round": "%s", "question": "...", "expected_answer": "What a strong answer covers"}
Return ONLY the JSON object.`

// InterviewAddon generates one extra question for a round
func (s *Service) InterviewAddon(ctx context.Context, req models.InterviewAddonRequest) (*models.InterviewAddonResponse, error) {
	if strings.TrimSpace(req.Round) == "" {
		return nil, required("round")
	}
	round, ok := models.NormalizeRound(req.Round)
	if !ok {
		return nil, &ValidationError{Field: "round", Message: "must be Technical, Culture or Systems"}
	}
	if isEmptyJSON(req.CandidateData) {
		return nil, required("candidate_data")
	}

	focus := ""
	if q := strings.TrimSpace(req.UserQuery); q != "" {
		focus = fmt.Sprintf("\nRECRUITER FOCUS:\n%s\n", truncate(q, 1000))
	}

	prompt := fmt.Sprintf(addonTemplate,
		round,
		orDefault(truncate(req.JD, maxPromptPayload), "Not provided"),
		payloadText(req.CandidateData),
		focus,
		round,
		round,
	)

	var reply models.InterviewAddonResponse
	if _, err := s.generate(ctx, "interview addon", prompt, []string{"question"}, &reply); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reply.Question) == "" {
		return nil, fmt.Errorf("interview addon failed: provider returned no question")
	}
	reply.Round = round
	return &reply, nil
}
