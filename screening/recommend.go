package screening

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
)

// RecommendationUnavailable is the label of the degraded recommendation
const RecommendationUnavailable = "Pending Review"

const recommendTemplate = `You are a hiring manager making a final recommendation.

CANDIDATE:
%s

JOB DESCRIPTION:
%s

Return a JSON object:
{
  "recommendation": "Strong Hire|Hire|Maybe|No Hire",
  "confidence": 0-100,
  "reasoning": "3-4 sentences",
  "candidate_feedback": "Constructive feedback that could be shared with the candidate",
  "next_steps": ["..."],
  "red_flags": ["..."],
  "highlights": ["..."]
}
Return ONLY the JSON object.`

// Recommend produces a hiring recommendation. When every provider fails it
// returns a degraded payload with Error set and a nil error.
func (s *Service) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	if isEmptyJSON(req.Candidate) {
		return nil, required("candidate")
	}

	prompt := fmt.Sprintf(recommendTemplate,
		payloadText(req.Candidate),
		orDefault(truncate(req.JobDescription, maxPromptPayload), "Not provided"),
	)

	var reply models.RecommendationResponse
	if _, err := s.generate(ctx, "recommendation", prompt, []string{"recommendation", "reasoning"}, &reply); err != nil {
		if errors.Is(err, llm.ErrAllProvidersFailed) {
			return degradedRecommendation(), nil
		}
		return nil, err
	}

	confidence := reply.Confidence.Clamp(0, 100)
	reply.Confidence = models.FlexibleInt(confidence)
	// confidence is certainty in the verdict, not a match score
	if label, ok := recommendationLabel(reply.Recommendation); ok {
		reply.Recommendation = label
	} else {
		reply.Recommendation = RecommendMaybe
	}
	reply.Reasoning = strings.TrimSpace(reply.Reasoning)
	reply.NextSteps = reply.NextSteps.OrEmpty()
	reply.RedFlags = reply.RedFlags.OrEmpty()
	reply.Highlights = reply.Highlights.OrEmpty()
	reply.Error = ""
	return &reply, nil
}

func degradedRecommendation() *models.RecommendationResponse {
	return &models.RecommendationResponse{
		Recommendation:    RecommendationUnavailable,
		Confidence:        0,
		Reasoning:         "An AI recommendation could not be generated right now. Review the candidate manually or try again later.",
		CandidateFeedback: "",
		NextSteps:         models.FlexibleStringSlice{"Review the candidate profile manually", "Retry the recommendation later"},
		RedFlags:          models.FlexibleStringSlice{},
		Highlights:        models.FlexibleStringSlice{},
		Error:             "AI recommendation unavailable: all providers failed",
	}
}
