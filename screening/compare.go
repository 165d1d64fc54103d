package screening

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireflow/backend/models"
)

const compareTemplate = `You are a hiring committee comparing %d candidates for the same role.
%s
CANDIDATES:
%s

Pick the single strongest candidate.
Return a JSON object:
{
  "top_pick": "Name of the strongest candidate",
  "winning_rationale": "2-3 sentences on why they win",
  "confidence": 0-100,
  "trade_offs": ["What the team gives up by not picking each other candidate"]
}
Return ONLY the JSON object.`

// CompareBatch picks the strongest of two or more candidates. Fewer than
// two candidates is rejected before any provider is called.
func (s *Service) CompareBatch(ctx context.Context, req models.BatchScoreRequest) (*models.BatchScoreResponse, error) {
	var candidates []string
	for _, c := range req.Candidates {
		if !isEmptyJSON(c) {
			candidates = append(candidates, payloadText(c))
		}
	}
	if len(candidates) < 2 {
		return nil, &ValidationError{Field: "candidates", Message: "at least 2 candidates are required"}
	}

	jd := ""
	if strings.TrimSpace(req.JD) != "" {
		jd = fmt.Sprintf("\nJOB DESCRIPTION:\n%s\n", truncate(req.JD, maxPromptPayload))
	}

	var sb strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&sb, "Candidate %d: %s\n", i+1, truncate(c, maxPromptPayload/len(candidates)))
	}

	var reply models.BatchScoreResponse
	if _, err := s.generate(ctx, "batch comparison", fmt.Sprintf(compareTemplate, len(candidates), jd, sb.String()),
		[]string{"top_pick", "winning_rationale"}, &reply); err != nil {
		return nil, err
	}

	reply.Confidence = models.FlexibleInt(reply.Confidence.Clamp(0, 100))
	reply.TradeOffs = reply.TradeOffs.OrEmpty()
	return &reply, nil
}
