// Package agent runs scoring across many stored candidates.
package agent

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/storage"
)

// DefaultConcurrency bounds in-flight scoring calls
const DefaultConcurrency = 3

// Scorer scores one stored candidate
type Scorer interface {
	ScoreCandidate(ctx context.Context, c *models.Candidate, persona string) (*models.ScoreResponse, error)
}

// Rescorer re-scores stored candidates in parallel and persists each result
type Rescorer struct {
	store         storage.CandidateStore
	scorer        Scorer
	maxConcurrent int
	log           *logrus.Entry
}

// NewRescorer creates a rescorer. maxConcurrent <= 0 uses DefaultConcurrency.
func NewRescorer(store storage.CandidateStore, scorer Scorer, maxConcurrent int) *Rescorer {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultConcurrency
	}
	return &Rescorer{
		store:         store,
		scorer:        scorer,
		maxConcurrent: maxConcurrent,
		log:           logger.For("Rescorer"),
	}
}

// RescoreAll scores every candidate matching filter. Candidates without a
// job description are skipped. A failed candidate keeps its previous score.
func (r *Rescorer) RescoreAll(ctx context.Context, filter storage.CandidateFilter, persona string) (*models.BulkRescoreResponse, error) {
	candidates, err := r.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]models.RescoreResult, 0, len(candidates))
	resultsChan := make(chan models.RescoreResult, len(candidates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, r.maxConcurrent)

	for _, candidate := range candidates {
		if strings.TrimSpace(candidate.JobDescription) == "" {
			results = append(results, models.RescoreResult{CandidateID: candidate.ID, Name: candidate.Name, Skipped: true})
			continue
		}

		wg.Add(1)
		go func(c *models.Candidate) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			resultsChan <- r.rescore(ctx, c, persona)
		}(candidate)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for res := range resultsChan {
		results = append(results, res)
	}

	resp := &models.BulkRescoreResponse{Results: results}
	for _, res := range results {
		switch {
		case res.Skipped:
			resp.Skipped++
		case res.Error != "":
			resp.Failed++
		default:
			resp.Rescored++
		}
	}
	sort.SliceStable(resp.Results, func(i, j int) bool {
		return resp.Results[i].CandidateID < resp.Results[j].CandidateID
	})

	r.log.WithFields(logrus.Fields{
		"rescored": resp.Rescored,
		"failed":   resp.Failed,
		"skipped":  resp.Skipped,
	}).Info("bulk rescore finished")

	return resp, nil
}

func (r *Rescorer) rescore(ctx context.Context, c *models.Candidate, persona string) models.RescoreResult {
	result := models.RescoreResult{CandidateID: c.ID, Name: c.Name}
	log := r.log.WithField("candidate_id", c.ID)

	scored, err := r.scorer.ScoreCandidate(ctx, c, persona)
	if err != nil {
		log.WithError(err).Warn("failed to rescore candidate")
		result.Error = "scoring failed"
		return result
	}

	score := scored.Score
	analysis := scored.Analysis
	if _, err := r.store.Update(ctx, c.ID, storage.CandidateUpdate{Score: &score, Analysis: &analysis}); err != nil {
		log.WithError(err).Warn("failed to save rescored candidate")
		result.Error = "saving score failed"
		return result
	}

	result.Score = &score
	return result
}
