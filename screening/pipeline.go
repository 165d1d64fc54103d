package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
	"github.com/hireflow/backend/utils"
)

// Pipeline steps in execution order
const (
	StepExtract = "extract"
	StepParse   = "parse"
	StepScore   = "score"
	StepUpload  = "upload"
	StepPersist = "persist"
)

// ErrDemoFallback aborts the pipeline when parsing degraded to demo data
var ErrDemoFallback = errors.New("resume parsing unavailable, refusing to store demo data")

// StepError reports which pipeline step failed
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline turns an uploaded resume into a scored candidate record
type Pipeline struct {
	svc       *Service
	extractor *utils.DocumentExtractor
	store     storage.CandidateStore
	resumes   storage.BlobStore
	log       *logrus.Entry
}

// NewPipeline creates an upload pipeline
func NewPipeline(svc *Service, extractor *utils.DocumentExtractor, store storage.CandidateStore, resumes storage.BlobStore) *Pipeline {
	return &Pipeline{
		svc:       svc,
		extractor: extractor,
		store:     store,
		resumes:   resumes,
		log:       logger.For("Pipeline"),
	}
}

// UploadInput is one resume upload
type UploadInput struct {
	Filename       string
	Data           []byte
	ContentType    string
	JobDescription string
	Role           string
	Name           string
	Email          string
	Persona        string
	CompanyCulture string
}

// Run executes extract, parse, score, upload and persist in order and stops
// at the first failure. A persist failure deletes the uploaded resume.
func (p *Pipeline) Run(ctx context.Context, in UploadInput) (*models.Candidate, error) {
	if strings.TrimSpace(in.Filename) == "" || len(in.Data) == 0 {
		return nil, required("file")
	}
	if !p.extractor.IsSupportedFormat(in.Filename) {
		return nil, &ValidationError{Field: "file", Message: "unsupported file type " + filepath.Ext(in.Filename)}
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return nil, required("job_description")
	}

	log := p.log.WithField("filename", in.Filename)
	start := time.Now()

	text, err := p.extractor.ExtractText(in.Filename, in.Data)
	if err != nil {
		if !p.svc.CanParseDocuments() {
			return nil, &StepError{Step: StepExtract, Err: err}
		}
		log.WithError(err).Warn("text extraction failed, parsing raw document")
		text = ""
	}

	parsed, err := p.svc.ParseResume(ctx, ParseInput{
		Filename: in.Filename,
		Text:     text,
		Data:     in.Data,
		MimeType: p.extractor.MimeType(in.Filename),
	})
	if err != nil {
		return nil, &StepError{Step: StepParse, Err: err}
	}
	if parsed.Demo {
		return nil, &StepError{Step: StepParse, Err: ErrDemoFallback}
	}

	candidateData, err := json.Marshal(parsed.ParsedData)
	if err != nil {
		return nil, &StepError{Step: StepScore, Err: fmt.Errorf("failed to marshal parsed data: %w", err)}
	}
	scored, err := p.svc.Score(ctx, ScoreInput{
		JD:             in.JobDescription,
		CandidateData:  candidateData,
		Persona:        in.Persona,
		CompanyCulture: in.CompanyCulture,
	})
	if err != nil {
		return nil, &StepError{Step: StepScore, Err: err}
	}

	contentType := in.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = p.extractor.MimeType(in.Filename)
	}
	resumeURL, err := p.resumes.Upload(ctx, storage.NewObjectName("resumes", in.Filename), in.Data, contentType)
	if err != nil {
		return nil, &StepError{Step: StepUpload, Err: err}
	}

	score := scored.Score
	candidate := &models.Candidate{
		Name:           firstNonEmpty(in.Name, parsed.ParsedData.Name, strings.TrimSuffix(in.Filename, filepath.Ext(in.Filename))),
		Email:          firstNonEmpty(in.Email, parsed.ParsedData.Email),
		Role:           in.Role,
		JobDescription: in.JobDescription,
		Score:          &score,
		Status:         models.StatusPending,
		ExtractedData:  parsed.ParsedData,
		Analysis:       scored.Analysis,
		ResumeURL:      resumeURL,
		ResumeName:     in.Filename,
	}
	if err := p.store.Create(ctx, candidate); err != nil {
		p.compensateUpload(ctx, resumeURL, log)
		return nil, &StepError{Step: StepPersist, Err: err}
	}

	log.WithFields(logrus.Fields{
		"candidate_id": candidate.ID,
		"score":        score,
		"duration":     time.Since(start).String(),
	}).Info("candidate created from upload")
	return candidate, nil
}

// compensateUpload removes an uploaded resume whose record was never
// written. It runs even if the request context is already cancelled.
func (p *Pipeline) compensateUpload(ctx context.Context, resumeURL string, log *logrus.Entry) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := p.resumes.Delete(cleanupCtx, resumeURL); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.WithError(err).WithField("resume_url", resumeURL).Error("failed to delete orphaned resume")
		return
	}
	log.WithField("resume_url", resumeURL).Warn("deleted orphaned resume after persist failure")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
