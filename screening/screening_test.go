package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
)

// scriptedProvider answers based on the prompt
type scriptedProvider struct {
	name    string
	respond func(prompt string) (string, error)
	calls   int
	history [][]llm.Turn
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Generate(_ context.Context, prompt string, history []llm.Turn) (string, error) {
	p.calls++
	p.history = append(p.history, history)
	return p.respond(prompt)
}

func failing(name string) *scriptedProvider {
	return &scriptedProvider{name: name, respond: func(string) (string, error) {
		return "", errors.New("upstream unavailable")
	}}
}

func replying(name, reply string) *scriptedProvider {
	return &scriptedProvider{name: name, respond: func(string) (string, error) {
		return reply, nil
	}}
}

const scoreJSON = `{
  "score": 112,
  "recommendation": "strong_hire",
  "confidence": "80",
  "analysis": {
    "sub_scores": {"technical_skills": 90, "experience": "75"},
    "reasoning": "Solid Go background",
    "strengths": "Go",
    "interview_questions": [
      {"round": "Technical", "question": "T1"},
      {"round": "technical", "question": "T2"},
      {"round": "Tech", "question": "T3"},
      {"round": "Culture", "question": "C1"},
      {"round": "Cultural", "question": "C2"},
      {"round": "Culture", "question": "C3"},
      {"round": "Culture", "question": "C4"},
      {"round": "Culture", "question": "C5"},
      {"round": "Culture", "question": "C6"},
      {"round": "Culture", "question": "C7"},
      {"round": "HR", "question": "H1"},
      {"round": "Systems", "question": "  "}
    ]
  }
}`

var candidateData = json.RawMessage(`{"name":"Jane Doe","skills":["Go","Postgres"]}`)

func TestScore_NormalizesResponse(t *testing.T) {
	provider := replying("gemini", "```json\n"+scoreJSON+"\n```")
	svc := NewService(llm.NewChain(provider))

	resp, err := svc.Score(context.Background(), ScoreInput{
		JD:            "Senior Go engineer",
		CandidateData: candidateData,
		Persona:       "wizard",
	})
	require.NoError(t, err)

	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, 80, resp.Confidence)
	assert.Equal(t, RecommendStrongHire, resp.Recommendation)
	assert.Equal(t, PersonaExpert, resp.Analysis.Persona)
	assert.Equal(t, "gemini", resp.Analysis.Provider)
	assert.Equal(t, models.FlexibleInt(75), resp.Analysis.SubScores.Experience)
	assert.Equal(t, models.FlexibleStringSlice{"Go"}, resp.Analysis.Strengths)
	assert.NotNil(t, resp.Analysis.RedFlags)

	questions := resp.Analysis.InterviewQuestions
	require.Len(t, questions, 15)
	counts := map[string]int{}
	for _, q := range questions {
		counts[q.Round]++
		assert.NotEmpty(t, strings.TrimSpace(q.Question))
	}
	assert.Equal(t, map[string]int{
		models.RoundTechnical: 5,
		models.RoundCulture:   5,
		models.RoundSystems:   5,
	}, counts)

	// provider questions come first within their round, in round order
	assert.Equal(t, "T1", questions[0].Question)
	assert.Equal(t, "T3", questions[2].Question)
	assert.Equal(t, models.RoundCulture, questions[5].Round)
	assert.Equal(t, "C1", questions[5].Question)
	assert.Equal(t, "C5", questions[9].Question)
	assert.Equal(t, models.RoundSystems, questions[10].Round)
}

func TestScore_Validation(t *testing.T) {
	provider := replying("gemini", scoreJSON)
	svc := NewService(llm.NewChain(provider))

	_, err := svc.Score(context.Background(), ScoreInput{CandidateData: candidateData})
	assert.True(t, IsValidation(err))

	_, err = svc.Score(context.Background(), ScoreInput{JD: "x", CandidateData: json.RawMessage("null")})
	assert.True(t, IsValidation(err))

	assert.Equal(t, 0, provider.calls)
}

func TestScore_FallsBackToSecondProvider(t *testing.T) {
	first := failing("gemini")
	second := replying("groq", scoreJSON)
	svc := NewService(llm.NewChain(first, second))

	resp, err := svc.Score(context.Background(), ScoreInput{JD: "x", CandidateData: candidateData})
	require.NoError(t, err)
	assert.Equal(t, "groq", resp.Analysis.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestScore_AllProvidersFail(t *testing.T) {
	svc := NewService(llm.NewChain(failing("gemini"), replying("groq", "not json")))

	_, err := svc.Score(context.Background(), ScoreInput{JD: "x", CandidateData: candidateData})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrAllProvidersFailed)
	assert.False(t, IsValidation(err))
}

func TestNormalizeInterviewQuestions_Empty(t *testing.T) {
	questions := NormalizeInterviewQuestions(nil)
	require.Len(t, questions, 15)
	for i, q := range questions {
		assert.Equal(t, models.InterviewRounds[i/models.QuestionsPerRound], q.Round)
	}
}

func TestScore_OversizedScoreClampsToHundred(t *testing.T) {
	svc := NewService(llm.NewChain(replying("groq", `{"score":1e20,"analysis":{"reasoning":"off the charts"}}`)))

	resp, err := svc.Score(context.Background(), ScoreInput{JD: "Go engineer", CandidateData: candidateData})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, RecommendStrongHire, resp.Recommendation)
}

func TestNormalizeRecommendation(t *testing.T) {
	tests := []struct {
		raw   string
		score int
		want  string
	}{
		{"Strong Hire", 10, RecommendStrongHire},
		{"no_hire", 95, RecommendNoHire},
		{"MAYBE", 0, RecommendMaybe},
		{"", 90, RecommendStrongHire},
		{"", 85, RecommendStrongHire},
		{"", 70, RecommendHire},
		{"unsure", 55, RecommendMaybe},
		{"", 49, RecommendNoHire},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRecommendation(tt.raw, tt.score), "%q/%d", tt.raw, tt.score)
	}
}

func TestNormalizePersona(t *testing.T) {
	assert.Equal(t, PersonaHacker, NormalizePersona(" Hacker "))
	assert.Equal(t, PersonaExecutive, NormalizePersona("executive"))
	assert.Equal(t, PersonaExpert, NormalizePersona(""))
	assert.Equal(t, PersonaExpert, NormalizePersona("pirate"))
}

func TestCompareBatch_RequiresTwoCandidates(t *testing.T) {
	provider := replying("gemini", `{"top_pick":"A"}`)
	svc := NewService(llm.NewChain(provider))

	for _, candidates := range [][]json.RawMessage{nil, {candidateData}, {candidateData, json.RawMessage("null")}} {
		_, err := svc.CompareBatch(context.Background(), models.BatchScoreRequest{Candidates: candidates})
		assert.True(t, IsValidation(err))
	}
	assert.Equal(t, 0, provider.calls)

	resp, err := svc.CompareBatch(context.Background(), models.BatchScoreRequest{
		Candidates: []json.RawMessage{candidateData, json.RawMessage(`{"name":"John"}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.TopPick)
	assert.NotNil(t, resp.TradeOffs)
	assert.Equal(t, 1, provider.calls)
}

func TestParseResume(t *testing.T) {
	provider := replying("groq", `{"name":"Jane Doe","skills":["Go","Postgres"],"career_level":"junior"}`)
	svc := NewService(llm.NewChain(provider))

	resp, err := svc.ParseResume(context.Background(), ParseInput{Filename: "jane.txt", Text: "Jane Doe\nGo"})
	require.NoError(t, err)
	assert.False(t, resp.Demo)
	assert.Equal(t, "Jane Doe", resp.ParsedData.Name)
	assert.Equal(t, models.FlexibleStringSlice{"Go", "Postgres"}, resp.ParsedData.Skills)
	assert.Equal(t, models.CareerLevelEntry, resp.ParsedData.CareerLevel)
	assert.NotNil(t, resp.ParsedData.Experience)
	assert.Equal(t, "groq", resp.Provider)
}

func TestParseResume_DemoFallback(t *testing.T) {
	for _, chain := range []*llm.Chain{llm.NewChain(), llm.NewChain(failing("gemini"), failing("groq"))} {
		svc := NewService(chain)
		resp, err := svc.ParseResume(context.Background(), ParseInput{Filename: "jane.pdf", Text: "text"})
		require.NoError(t, err)
		assert.True(t, resp.Demo)
		assert.Equal(t, DemoErrorMarker, resp.Error)
		assert.Equal(t, "jane.pdf", resp.Filename)
		assert.NotEmpty(t, resp.ParsedData.Name)
	}
}

type fakeDocParser struct {
	reply string
	err   error
	mime  string
}

func (f *fakeDocParser) GenerateFromDocument(_ context.Context, _ []byte, mimeType, _ string) (string, error) {
	f.mime = mimeType
	return f.reply, f.err
}

func TestParseResume_DocumentPath(t *testing.T) {
	chainProvider := replying("groq", `{}`)
	doc := &fakeDocParser{reply: "```json\n{\"name\":\"Scan Person\"}\n```"}
	svc := NewService(llm.NewChain(chainProvider), WithDocumentParser(doc))

	resp, err := svc.ParseResume(context.Background(), ParseInput{
		Filename: "scan.pdf",
		Data:     []byte("%PDF"),
		MimeType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Scan Person", resp.ParsedData.Name)
	assert.Equal(t, "application/pdf", doc.mime)
	assert.Equal(t, 0, chainProvider.calls)

	_, err = NewService(llm.NewChain(chainProvider)).ParseResume(context.Background(), ParseInput{Filename: "scan.pdf", Data: []byte("%PDF")})
	assert.True(t, IsValidation(err))
}

func TestRecommend(t *testing.T) {
	svc := NewService(llm.NewChain(replying("gemini", `{"recommendation":"yes","confidence":72,"reasoning":" ok "}`)))
	resp, err := svc.Recommend(context.Background(), models.RecommendationRequest{Candidate: candidateData})
	require.NoError(t, err)
	assert.Equal(t, RecommendHire, resp.Recommendation)
	assert.Equal(t, 72, int(resp.Confidence))
	assert.Equal(t, "ok", resp.Reasoning)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.NextSteps)

	_, err = svc.Recommend(context.Background(), models.RecommendationRequest{})
	assert.True(t, IsValidation(err))
}

func TestRecommend_UnknownLabelIsMaybe(t *testing.T) {
	for _, label := range []string{"", "definitely"} {
		reply := fmt.Sprintf(`{"recommendation":%q,"confidence":95,"reasoning":"unclear"}`, label)
		svc := NewService(llm.NewChain(replying("gemini", reply)))

		resp, err := svc.Recommend(context.Background(), models.RecommendationRequest{Candidate: candidateData})
		require.NoError(t, err)
		assert.Equal(t, RecommendMaybe, resp.Recommendation, "label %q", label)
		assert.Equal(t, 95, int(resp.Confidence))
	}
}

func TestRecommend_DegradedOnFailure(t *testing.T) {
	svc := NewService(llm.NewChain(failing("gemini")))
	resp, err := svc.Recommend(context.Background(), models.RecommendationRequest{Candidate: candidateData})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, RecommendationUnavailable, resp.Recommendation)
	assert.NotNil(t, resp.Highlights)
}

func TestCandidateChat_Transcripts(t *testing.T) {
	ctx := context.Background()
	provider := replying("gemini", "I built the billing service.")
	transcripts := storage.NewMemoryTranscripts()
	svc := NewService(llm.NewChain(provider), WithTranscripts(transcripts))

	resp, err := svc.CandidateChat(ctx, CandidateChatInput{
		Message:       "What did you build?",
		CandidateData: candidateData,
		CandidateID:   "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "I built the billing service.", resp.Text)

	history, err := svc.Transcript(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, llm.RoleModel, history[1].Role)

	// second turn without explicit history replays the stored transcript
	_, err = svc.CandidateChat(ctx, CandidateChatInput{Message: "Why?", CandidateData: candidateData, CandidateID: "c1"})
	require.NoError(t, err)
	require.Len(t, provider.history, 2)
	assert.Len(t, provider.history[1], 2)

	history, err = svc.Transcript(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, history, 4)

	_, err = svc.CandidateChat(ctx, CandidateChatInput{Message: "hi"})
	assert.True(t, IsValidation(err))
}

func TestChat(t *testing.T) {
	provider := replying("groq", " Jane is strong in Go. ")
	svc := NewService(llm.NewChain(provider))

	resp, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "Is Jane strong?",
		History: []models.ChatTurn{{Role: "assistant", Text: "Ask me"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", resp.Role)
	assert.Equal(t, "Jane is strong in Go.", resp.Content)
	assert.Equal(t, []llm.Turn{{Role: llm.RoleModel, Text: "Ask me"}}, provider.history[0])

	transcript, err := svc.Transcript(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, transcript)
}

func TestInterviewAddon(t *testing.T) {
	svc := NewService(llm.NewChain(replying("gemini", `{"round":"tech","question":"Q?","expected_answer":"A"}`)))

	resp, err := svc.InterviewAddon(context.Background(), models.InterviewAddonRequest{
		Round:         "system design",
		CandidateData: candidateData,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoundSystems, resp.Round)
	assert.Equal(t, "Q?", resp.Question)

	_, err = svc.InterviewAddon(context.Background(), models.InterviewAddonRequest{Round: "HR", CandidateData: candidateData})
	assert.True(t, IsValidation(err))

	_, err = NewService(llm.NewChain()).InterviewAddon(context.Background(), models.InterviewAddonRequest{
		Round:         "Technical",
		CandidateData: candidateData,
	})
	assert.ErrorIs(t, err, llm.ErrNoProviders)
}

func TestPredictSalary_FixesRange(t *testing.T) {
	svc := NewService(llm.NewChain(replying("gemini", `{"min":"150000","median":10,"max":100000,"confidence":140}`)))

	resp, err := svc.PredictSalary(context.Background(), models.SalaryRequest{Role: "SRE"})
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, models.FlexibleInt(100000), resp.Min)
	assert.Equal(t, models.FlexibleInt(150000), resp.Max)
	assert.Equal(t, models.FlexibleInt(125000), resp.Median)
	assert.Equal(t, models.FlexibleInt(100), resp.Confidence)
}

func TestRequiredFields(t *testing.T) {
	provider := replying("gemini", `{}`)
	svc := NewService(llm.NewChain(provider))
	ctx := context.Background()

	checks := []func() error{
		func() error { _, err := svc.GenerateJD(ctx, models.JDRequest{}); return err },
		func() error { _, err := svc.Outreach(ctx, models.OutreachRequest{Role: "x"}, ""); return err },
		func() error { _, err := svc.Outreach(ctx, models.OutreachRequest{CandidateName: "x"}, ""); return err },
		func() error { _, err := svc.PredictSalary(ctx, models.SalaryRequest{}); return err },
		func() error {
			_, err := svc.AnalyzeOnboarding(ctx, models.OnboardingRequest{Role: "x"})
			return err
		},
		func() error { _, err := svc.AnalyzePortfolio(ctx, models.PortfolioRequest{}); return err },
		func() error { _, err := svc.RoleArchitect(ctx, models.RoleArchitectRequest{}); return err },
		func() error { _, err := svc.AnalyzeVideo(ctx, models.VideoRequest{}); return err },
		func() error { _, err := svc.Chat(ctx, models.ChatRequest{}); return err },
		func() error { _, err := svc.Embed(ctx, " "); return err },
	}
	for i, check := range checks {
		assert.True(t, IsValidation(check()), "check %d", i)
	}
	assert.Equal(t, 0, provider.calls)
}

func TestGenerateTasksDefaultSections(t *testing.T) {
	svc := NewService(llm.NewChain(replying("gemini", `{"summary":"s"}`)))
	ctx := context.Background()

	jd, err := svc.GenerateJD(ctx, models.JDRequest{RoleTitle: "Backend Engineer"})
	require.NoError(t, err)
	assert.NotNil(t, jd.Responsibilities)
	assert.NotNil(t, jd.RequiredSkills.Technical)

	onboarding, err := svc.AnalyzeOnboarding(ctx, models.OnboardingRequest{Role: "x", CandidateData: candidateData})
	require.NoError(t, err)
	assert.NotNil(t, onboarding.First90Days)

	role, err := svc.RoleArchitect(ctx, models.RoleArchitectRequest{BusinessGoals: "grow"})
	require.NoError(t, err)
	assert.Equal(t, models.CareerLevelUnknown, role.Seniority)

	video, err := svc.AnalyzeVideo(ctx, models.VideoRequest{Transcript: "hello"})
	require.NoError(t, err)
	assert.NotNil(t, video.KeyMoments)

	portfolio, err := svc.AnalyzePortfolio(ctx, models.PortfolioRequest{GithubURL: "https://github.com/x"})
	require.NoError(t, err)
	assert.NotNil(t, portfolio.Concerns)

	outreach, err := svc.Outreach(ctx, models.OutreachRequest{CandidateName: "Jane", Role: "SRE", Channel: "LinkedIn"}, "https://app")
	require.NoError(t, err)
	assert.Equal(t, "linkedin", outreach.Channel)
}

type fakePages struct {
	text string
	err  error
}

func (f fakePages) FetchText(context.Context, string) (string, error) { return f.text, f.err }

func TestAnalyzePortfolio_IncludesFetchedPage(t *testing.T) {
	var prompt string
	provider := &scriptedProvider{name: "gemini", respond: func(p string) (string, error) {
		prompt = p
		return `{"overall_score":140,"verdict":"strong"}`, nil
	}}
	req := models.PortfolioRequest{PortfolioURL: "https://jane.dev"}

	svc := NewService(llm.NewChain(provider), WithPageFetcher(fakePages{text: "Built a distributed kvstore"}))
	resp, err := svc.AnalyzePortfolio(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.FlexibleInt(100), resp.OverallScore)
	assert.Contains(t, prompt, "Built a distributed kvstore")

	svc = NewService(llm.NewChain(provider), WithPageFetcher(fakePages{err: errors.New("timeout")}))
	_, err = svc.AnalyzePortfolio(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "PORTFOLIO PAGE CONTENT")
}
