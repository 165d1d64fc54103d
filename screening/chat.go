package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
)

const recruiterChatTemplate = `You are a recruiting assistant helping a recruiter evaluate a candidate.
Answer concisely and ground every claim in the candidate data when it is provided.
%s
RECRUITER: %s`

// Chat answers a recruiter question, optionally about a specific candidate
func (s *Service) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, required("message")
	}

	about := ""
	if !isEmptyJSON(req.Candidate) {
		about = fmt.Sprintf("\nCANDIDATE DATA:\n%s\n", payloadText(req.Candidate))
	}

	reply, _, err := s.chain.GenerateText(ctx, llm.Request{
		Prompt:  fmt.Sprintf(recruiterChatTemplate, about, req.Message),
		History: toTurns(req.History),
	})
	if err != nil {
		return nil, fmt.Errorf("chat failed: %w", err)
	}

	return &models.ChatResponse{Role: "assistant", Content: reply}, nil
}

const personaChatTemplate = `You are role-playing the job candidate described below in an interview with a recruiter.
Answer in the first person, stay consistent with the resume, and never invent employers or degrees that are not listed.
If asked about something not on the resume, say so honestly.

CANDIDATE DATA:
%s

RECRUITER: %s`

// CandidateChatInput is a message to the candidate persona
type CandidateChatInput struct {
	Message       string
	History       []models.ChatTurn
	CandidateData json.RawMessage
	CandidateID   string
}

// CandidateChat answers as the candidate. With a candidate ID and a
// transcript store, the stored transcript is used when History is nil and
// the exchange is appended after a successful reply.
func (s *Service) CandidateChat(ctx context.Context, in CandidateChatInput) (*models.CandidateChatResponse, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, required("message")
	}
	if isEmptyJSON(in.CandidateData) {
		return nil, required("candidate_data")
	}

	persist := in.CandidateID != "" && s.transcripts != nil
	history := in.History
	if persist && history == nil {
		stored, err := s.transcripts.History(ctx, in.CandidateID)
		if err != nil {
			s.log.WithError(err).WithField("candidate_id", in.CandidateID).Warn("failed to load transcript")
		}
		history = stored
	}

	reply, _, err := s.chain.GenerateText(ctx, llm.Request{
		Prompt:  fmt.Sprintf(personaChatTemplate, payloadText(in.CandidateData), in.Message),
		History: toTurns(history),
	})
	if err != nil {
		return nil, fmt.Errorf("candidate chat failed: %w", err)
	}

	if persist {
		err := s.transcripts.Append(ctx, in.CandidateID,
			models.ChatTurn{Role: llm.RoleUser, Content: in.Message},
			models.ChatTurn{Role: llm.RoleModel, Content: reply},
		)
		if err != nil {
			s.log.WithError(err).WithField("candidate_id", in.CandidateID).Warn("failed to save transcript")
		}
	}

	return &models.CandidateChatResponse{Text: reply}, nil
}

// Transcript returns the stored persona conversation for a candidate
func (s *Service) Transcript(ctx context.Context, candidateID string) ([]models.ChatTurn, error) {
	if s.transcripts == nil {
		return []models.ChatTurn{}, nil
	}
	history, err := s.transcripts.History(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.ChatTurn{}
	}
	return history, nil
}
