package handlers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/agent"
	"github.com/hireflow/backend/export"
	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
	"github.com/hireflow/backend/storage"
)

// resumeLinkTTL is how long a signed resume link stays valid
const resumeLinkTTL = 15 * time.Minute

var avatarTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// CandidateHandler serves candidate records and the upload pipeline
type CandidateHandler struct {
	store     storage.CandidateStore
	resumes   storage.BlobStore
	avatars   storage.BlobStore
	pipeline  *screening.Pipeline
	svc       *screening.Service
	rescorer  *agent.Rescorer
	maxUpload int64
	log       *logrus.Entry
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(
	store storage.CandidateStore,
	blobs *storage.Blobs,
	pipeline *screening.Pipeline,
	svc *screening.Service,
	maxUploadBytes int64,
) *CandidateHandler {
	return &CandidateHandler{
		store:     store,
		resumes:   blobs.Resumes,
		avatars:   blobs.Avatars,
		pipeline:  pipeline,
		svc:       svc,
		rescorer:  agent.NewRescorer(store, svc, agent.DefaultConcurrency),
		maxUpload: maxUploadBytes,
		log:       logger.For("CandidateHandler"),
	}
}

// List returns candidates, newest first
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Param status query string false "Filter by status (Pending, Review, Shortlisted, Accepted, Rejected)"
// @Success 200 {object} models.CandidateListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	candidates, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, "Listing candidates", err)
		return
	}
	c.JSON(http.StatusOK, models.CandidateListResponse{Candidates: candidates, Total: len(candidates)})
}

// Stats summarizes the candidate pool
// @Summary Candidate statistics
// @Tags Candidates
// @Produce json
// @Success 200 {object} models.CandidateStats
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/stats [get]
func (h *CandidateHandler) Stats(c *gin.Context) {
	candidates, err := h.store.List(c.Request.Context(), storage.CandidateFilter{})
	if err != nil {
		respondError(c, h.log, "Loading statistics", err)
		return
	}
	c.JSON(http.StatusOK, models.Summarize(candidates))
}

// Export downloads the candidate pool as an XLSX workbook
// @Summary Export candidates
// @Tags Candidates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/export [get]
func (h *CandidateHandler) Export(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	candidates, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, "Export", err)
		return
	}

	now := time.Now().UTC()
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)
	if err := export.WriteCandidates(c.Writer, candidates, now); err != nil {
		h.log.WithError(err).Error("failed to write export")
	}
}

// Get returns one candidate
// @Summary Get candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} models.ErrorResponse
// @Router /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Loading candidate", err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Create adds a candidate without the upload pipeline
// @Summary Create candidate
// @Tags Candidates
// @Accept json
// @Produce json
// @Param request body models.CreateCandidateRequest true "Candidate"
// @Success 201 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		badRequest(c, "name is required")
		return
	}

	req.ExtractedData.Normalize()
	analysis := models.Analysis{}
	analysis.Normalize()
	candidate := &models.Candidate{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Role:           req.Role,
		JobDescription: req.JobDescription,
		ExtractedData:  req.ExtractedData,
		Analysis:       analysis,
	}
	if err := h.store.Create(c.Request.Context(), candidate); err != nil {
		respondError(c, h.log, "Creating candidate", err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// Upload runs the extract, parse, score, upload and persist pipeline
// @Summary Upload resume
// @Description Parse and score a resume, store the file and create a candidate. A database failure removes the stored file.
// @Tags Candidates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume"
// @Param job_description formData string true "Job description"
// @Param role formData string false "Role label"
// @Param name formData string false "Candidate name, overrides the parsed name"
// @Param email formData string false "Candidate email, overrides the parsed email"
// @Param persona formData string false "Scoring persona"
// @Param company_culture formData string false "Company culture"
// @Success 201 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/upload [post]
func (h *CandidateHandler) Upload(c *gin.Context) {
	file, err := readUpload(c, "file", h.maxUpload)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	candidate, err := h.pipeline.Run(c.Request.Context(), screening.UploadInput{
		Filename:       file.Name,
		Data:           file.Data,
		ContentType:    file.ContentType,
		JobDescription: c.PostForm("job_description"),
		Role:           c.PostForm("role"),
		Name:           c.PostForm("name"),
		Email:          c.PostForm("email"),
		Persona:        c.PostForm("persona"),
		CompanyCulture: c.PostForm("company_culture"),
	})
	if err != nil {
		respondError(c, h.log, "Resume upload", err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// UpdateStatus moves a candidate to any status
// @Summary Update candidate status
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /candidates/{id}/status [patch]
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}
	status, ok := models.ParseStatus(req.Status)
	if !ok {
		badRequest(c, "Invalid status: "+req.Status)
		return
	}
	h.setStatus(c, status)
}

// Accept marks a candidate Accepted
// @Summary Accept candidate
// @Description Idempotent: accepting an accepted candidate changes nothing
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} models.ErrorResponse
// @Router /candidates/{id}/accept [post]
func (h *CandidateHandler) Accept(c *gin.Context) {
	h.setStatus(c, models.StatusAccepted)
}

// Reject marks a candidate Rejected
// @Summary Reject candidate
// @Description Idempotent: rejecting a rejected candidate changes nothing
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} models.ErrorResponse
// @Router /candidates/{id}/reject [post]
func (h *CandidateHandler) Reject(c *gin.Context) {
	h.setStatus(c, models.StatusRejected)
}

// setStatus writes only when the status actually changes
func (h *CandidateHandler) setStatus(c *gin.Context, status models.CandidateStatus) {
	ctx := c.Request.Context()
	id := c.Param("id")

	candidate, err := h.store.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, "Updating status", err)
		return
	}
	if candidate.Status == status {
		c.JSON(http.StatusOK, candidate)
		return
	}

	updated, err := h.store.Update(ctx, id, storage.CandidateUpdate{Status: &status})
	if err != nil {
		respondError(c, h.log, "Updating status", err)
		return
	}
	h.log.WithFields(logrus.Fields{"candidate_id": id, "from": candidate.Status, "to": status}).Info("candidate status changed")
	c.JSON(http.StatusOK, updated)
}

// Rescore re-runs scoring with the stored job description and resume data
// @Summary Rescore candidate
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Param persona query string false "Scoring persona"
// @Success 200 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/{id}/rescore [post]
func (h *CandidateHandler) Rescore(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	candidate, err := h.store.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, "Rescoring", err)
		return
	}

	scored, err := h.svc.ScoreCandidate(ctx, candidate, c.Query("persona"))
	if err != nil {
		respondError(c, h.log, "Rescoring", err)
		return
	}

	score := scored.Score
	analysis := scored.Analysis
	updated, err := h.store.Update(ctx, id, storage.CandidateUpdate{Score: &score, Analysis: &analysis})
	if err != nil {
		respondError(c, h.log, "Rescoring", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RescoreAll re-scores stored candidates in parallel
// @Summary Rescore candidates in bulk
// @Tags Candidates
// @Produce json
// @Param status query string false "Filter by status"
// @Param persona query string false "Scoring persona"
// @Success 200 {object} models.BulkRescoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/rescore [post]
func (h *CandidateHandler) RescoreAll(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	resp, err := h.rescorer.RescoreAll(c.Request.Context(), filter, c.Query("persona"))
	if err != nil {
		respondError(c, h.log, "Bulk rescore", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadAvatar stores a profile picture for a candidate
// @Summary Upload candidate avatar
// @Tags Candidates
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Candidate ID"
// @Param file formData file true "Image (PNG, JPEG, WEBP, GIF)"
// @Success 200 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/{id}/avatar [post]
func (h *CandidateHandler) UploadAvatar(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	file, err := readUpload(c, "file", h.maxUpload)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	contentType, ok := avatarTypes[strings.ToLower(filepath.Ext(file.Name))]
	if !ok {
		badRequest(c, "Unsupported image type")
		return
	}

	candidate, err := h.store.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, "Avatar upload", err)
		return
	}

	url, err := h.avatars.Upload(ctx, storage.NewObjectName("avatars", file.Name), file.Data, contentType)
	if err != nil {
		respondError(c, h.log, "Avatar upload", err)
		return
	}

	updated, err := h.store.Update(ctx, id, storage.CandidateUpdate{AvatarURL: &url})
	if err != nil {
		h.deleteBlob(ctx, h.avatars, url)
		respondError(c, h.log, "Avatar upload", err)
		return
	}
	if candidate.AvatarURL != "" && candidate.AvatarURL != url {
		h.deleteBlob(ctx, h.avatars, candidate.AvatarURL)
	}
	c.JSON(http.StatusOK, updated)
}

// ResumeLink returns a short-lived download link for the stored resume
// @Summary Resume download link
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.SignedURLResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/{id}/resume [get]
func (h *CandidateHandler) ResumeLink(c *gin.Context) {
	ctx := c.Request.Context()

	candidate, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.log, "Resume link", err)
		return
	}
	if candidate.ResumeURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Candidate has no stored resume",
			Code:  http.StatusNotFound,
		})
		return
	}

	expires := time.Now().Add(resumeLinkTTL).UTC()
	url, err := h.resumes.SignedURL(ctx, candidate.ResumeURL, resumeLinkTTL)
	if err != nil {
		respondError(c, h.log, "Resume link", err)
		return
	}
	c.JSON(http.StatusOK, models.SignedURLResponse{URL: url, ExpiresAt: expires})
}

// Delete removes a candidate and its stored files
// @Summary Delete candidate
// @Description Deletes the stored resume and avatar when present, then the record
// @Tags Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	candidate, err := h.store.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, "Deleting candidate", err)
		return
	}

	if candidate.ResumeURL != "" {
		if err := h.resumes.Delete(ctx, candidate.ResumeURL); err != nil && !errors.Is(err, storage.ErrNotFound) {
			respondError(c, h.log, "Deleting resume", err)
			return
		}
	}
	if candidate.AvatarURL != "" {
		h.deleteBlob(ctx, h.avatars, candidate.AvatarURL)
	}

	if err := h.store.Delete(ctx, id); err != nil {
		respondError(c, h.log, "Deleting candidate", err)
		return
	}

	h.log.WithField("candidate_id", id).Info("candidate deleted")
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Candidate deleted"})
}

// deleteBlob removes a stored file, logging instead of failing
func (h *CandidateHandler) deleteBlob(ctx context.Context, store storage.BlobStore, url string) {
	if err := store.Delete(ctx, url); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.log.WithError(err).WithField("url", url).Warn("failed to delete stored file")
	}
}

func (h *CandidateHandler) filter(c *gin.Context) (storage.CandidateFilter, bool) {
	raw := c.Query("status")
	if raw == "" {
		return storage.CandidateFilter{}, true
	}
	status, ok := models.ParseStatus(raw)
	if !ok {
		badRequest(c, "Invalid status: "+raw)
		return storage.CandidateFilter{}, false
	}
	return storage.CandidateFilter{Status: status}, true
}
