package screening

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
	"github.com/hireflow/backend/utils"
)

const parsedJSON = `{"name":"Jane Doe","email":"jane@example.com","skills":["Go"]}`

// routedProvider answers parse and score prompts differently
func routedProvider(parseReply, scoreReply string) *scriptedProvider {
	return &scriptedProvider{name: "gemini", respond: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "RESUME TEXT:"):
			return parseReply, nil
		case strings.Contains(prompt, "Evaluate how well"):
			return scoreReply, nil
		default:
			return "", errors.New("unexpected prompt")
		}
	}}
}

// failingCreateStore rejects every Create
type failingCreateStore struct {
	*storage.MemoryStore
}

func (s failingCreateStore) Create(context.Context, *models.Candidate) error {
	return errors.New("database unavailable")
}

func upload() UploadInput {
	return UploadInput{
		Filename:       "jane_doe.txt",
		Data:           []byte("Jane Doe\nSenior Go engineer"),
		JobDescription: "Senior Go engineer",
		Role:           "Backend Engineer",
	}
}

func TestPipeline_Success(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	resumes := storage.NewMemoryBlobStore("resumes")
	svc := NewService(llm.NewChain(routedProvider(parsedJSON, scoreJSON)))
	p := NewPipeline(svc, utils.NewDocumentExtractor(), store, resumes)

	c, err := p.Run(ctx, upload())
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Equal(t, models.StatusPending, c.Status)
	require.NotNil(t, c.Score)
	assert.Equal(t, 100, *c.Score)
	assert.Len(t, c.Analysis.InterviewQuestions, 15)
	assert.Equal(t, "jane_doe.txt", c.ResumeName)
	assert.True(t, strings.HasPrefix(c.ResumeURL, "memory://resumes/resumes/"))

	stored, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ResumeURL, stored.ResumeURL)
	assert.Equal(t, 1, resumes.Len())
}

func TestPipeline_Validation(t *testing.T) {
	store := storage.NewMemoryStore()
	p := NewPipeline(NewService(llm.NewChain()), utils.NewDocumentExtractor(), store, storage.NewMemoryBlobStore("resumes"))

	in := upload()
	in.JobDescription = ""
	_, err := p.Run(context.Background(), in)
	assert.True(t, IsValidation(err))

	in = upload()
	in.Filename = "photo.png"
	_, err = p.Run(context.Background(), in)
	assert.True(t, IsValidation(err))

	in = upload()
	in.Data = nil
	_, err = p.Run(context.Background(), in)
	assert.True(t, IsValidation(err))
}

func TestPipeline_DemoParseAborts(t *testing.T) {
	store := storage.NewMemoryStore()
	resumes := storage.NewMemoryBlobStore("resumes")
	p := NewPipeline(NewService(llm.NewChain(failing("gemini"))), utils.NewDocumentExtractor(), store, resumes)

	_, err := p.Run(context.Background(), upload())
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepParse, stepErr.Step)
	assert.ErrorIs(t, err, ErrDemoFallback)
	assert.Equal(t, 0, resumes.Len())
	assert.Equal(t, 0, store.Writes())
}

func TestPipeline_ScoreFailureStoresNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	resumes := storage.NewMemoryBlobStore("resumes")
	p := NewPipeline(NewService(llm.NewChain(routedProvider(parsedJSON, "garbage"))), utils.NewDocumentExtractor(), store, resumes)

	_, err := p.Run(context.Background(), upload())
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepScore, stepErr.Step)
	assert.ErrorIs(t, err, llm.ErrAllProvidersFailed)
	assert.Equal(t, 0, resumes.Len())
	assert.Equal(t, 0, store.Writes())
}

func TestPipeline_UploadFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	resumes := storage.NewMemoryBlobStore("resumes")
	resumes.FailUploads = true
	p := NewPipeline(NewService(llm.NewChain(routedProvider(parsedJSON, scoreJSON))), utils.NewDocumentExtractor(), store, resumes)

	_, err := p.Run(context.Background(), upload())
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepUpload, stepErr.Step)
	assert.Equal(t, 0, store.Writes())
}

func TestPipeline_PersistFailureDeletesUploadedResume(t *testing.T) {
	store := failingCreateStore{storage.NewMemoryStore()}
	resumes := storage.NewMemoryBlobStore("resumes")
	p := NewPipeline(NewService(llm.NewChain(routedProvider(parsedJSON, scoreJSON))), utils.NewDocumentExtractor(), store, resumes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := p.Run(ctx, upload())
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepPersist, stepErr.Step)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.Equal(t, 0, resumes.Len(), "orphaned resume must be removed")
}
