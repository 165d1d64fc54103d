package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
	"github.com/hireflow/backend/utils"
)

// ScreeningHandler serves the AI task endpoints
type ScreeningHandler struct {
	svc       *screening.Service
	extractor *utils.DocumentExtractor
	appURL    string
	maxUpload int64
	log       *logrus.Entry
}

// NewScreeningHandler creates a new screening handler
func NewScreeningHandler(svc *screening.Service, extractor *utils.DocumentExtractor, appURL string, maxUploadBytes int64) *ScreeningHandler {
	return &ScreeningHandler{
		svc:       svc,
		extractor: extractor,
		appURL:    appURL,
		maxUpload: maxUploadBytes,
		log:       logger.For("ScreeningHandler"),
	}
}

// bind decodes a JSON body and writes a 400 on failure
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, "Invalid request body")
		return false
	}
	return true
}

// ParseResume extracts structured data from an uploaded resume
// @Summary Parse resume
// @Description Extract structured candidate data from a resume file. Falls back to a demo payload with "demo": true when every AI provider fails.
// @Tags Screening
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume (PDF, DOC, DOCX, RTF, ODT, TXT, MD)"
// @Success 200 {object} models.ParseResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /parsing [post]
func (h *ScreeningHandler) ParseResume(c *gin.Context) {
	file, err := readUpload(c, "file", h.maxUpload)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if !h.extractor.IsSupportedFormat(file.Name) {
		badRequest(c, "Unsupported file type")
		return
	}

	text, err := h.extractor.ExtractText(file.Name, file.Data)
	if err != nil {
		h.log.WithError(err).WithField("filename", file.Name).Warn("text extraction failed")
	}

	resp, err := h.svc.ParseResume(c.Request.Context(), screening.ParseInput{
		Filename: file.Name,
		Text:     text,
		Data:     file.Data,
		MimeType: h.extractor.MimeType(file.Name),
	})
	if err != nil {
		respondError(c, h.log, "Resume parsing", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Score rates a candidate against a job description
// @Summary Score candidate
// @Description Score a candidate 0-100 against a job description. The analysis always carries 15 interview questions, 5 per round.
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body models.ScoreRequest true "Scoring request"
// @Success 200 {object} models.ScoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /scoring [post]
func (h *ScreeningHandler) Score(c *gin.Context) {
	var req models.ScoreRequest
	if !bind(c, &req) {
		return
	}
	h.score(c, screening.ScoreInput{
		JD:             req.JD,
		CandidateData:  req.CandidateData,
		Persona:        req.Persona,
		CompanyCulture: req.CompanyCulture,
	})
}

// V1Analyze is the API-key protected entry to scoring
// @Summary Analyze candidate (public API)
// @Description Same contract as /scoring, authenticated with the x-api-key header
// @Tags Public API
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.V1AnalyzeRequest true "Analyze request"
// @Success 200 {object} models.ScoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /v1/analyze [post]
func (h *ScreeningHandler) V1Analyze(c *gin.Context) {
	var req models.V1AnalyzeRequest
	if !bind(c, &req) {
		return
	}

	candidate := req.CandidateData
	if len(candidate) == 0 {
		candidate = req.Candidate
	}
	if req.JD == "" || len(candidate) == 0 {
		badRequest(c, "jd and candidate are required")
		return
	}

	h.score(c, screening.ScoreInput{
		JD:             req.JD,
		CandidateData:  candidate,
		Persona:        req.Persona,
		CompanyCulture: req.CompanyCulture,
	})
}

func (h *ScreeningHandler) score(c *gin.Context, in screening.ScoreInput) {
	resp, err := h.svc.Score(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "Scoring", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BatchScore compares several candidates
// @Summary Compare candidates
// @Description Pick the strongest of two or more candidates. Fewer than two is rejected before any AI call.
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body models.BatchScoreRequest true "Candidates to compare"
// @Success 200 {object} models.BatchScoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /scoring/batch [post]
func (h *ScreeningHandler) BatchScore(c *gin.Context) {
	var req models.BatchScoreRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.CompareBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Batch comparison", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recommend produces a hiring recommendation
// @Summary Hiring recommendation
// @Description Always 200 once the request is valid; when every AI provider fails the payload is a placeholder with an error marker.
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Recommendation request"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *ScreeningHandler) Recommend(c *gin.Context) {
	var req models.RecommendationRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Recommendation", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Chat answers a recruiter question
// @Summary Recruiter assistant chat
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /chat [post]
func (h *ScreeningHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Chat", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CandidateChat answers as the candidate persona
// @Summary Candidate persona chat
// @Description Role-play the candidate. With candidate_id and a transcript store the conversation is persisted.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.CandidateChatRequest true "Chat message"
// @Success 200 {object} models.CandidateChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /chat/candidate [post]
func (h *ScreeningHandler) CandidateChat(c *gin.Context) {
	var req models.CandidateChatRequest
	if !bind(c, &req) {
		return
	}

	data := req.CandidateData
	if len(data) == 0 {
		data = req.Candidate
	}

	resp, err := h.svc.CandidateChat(c.Request.Context(), screening.CandidateChatInput{
		Message:       req.Message,
		History:       req.History,
		CandidateData: data,
		CandidateID:   req.CandidateID,
	})
	if err != nil {
		respondError(c, h.log, "Candidate chat", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TranscriptHistory returns the stored persona conversation
// @Summary Candidate chat history
// @Tags Chat
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.TranscriptResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /chat/candidate/{id}/history [get]
func (h *ScreeningHandler) TranscriptHistory(c *gin.Context) {
	id := c.Param("id")
	history, err := h.svc.Transcript(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "Loading chat history", err)
		return
	}
	c.JSON(http.StatusOK, models.TranscriptResponse{CandidateID: id, History: history})
}

// GenerateJD drafts a job description
// @Summary Generate job description
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body models.JDRequest true "Role details"
// @Success 200 {object} models.JDResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /generate/jd [post]
func (h *ScreeningHandler) GenerateJD(c *gin.Context) {
	var req models.JDRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.GenerateJD(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Job description generation", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Outreach drafts a recruiting message
// @Summary Draft outreach message
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body models.OutreachRequest true "Outreach details"
// @Success 200 {object} models.OutreachResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /outreach [post]
func (h *ScreeningHandler) Outreach(c *gin.Context) {
	var req models.OutreachRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.Outreach(c.Request.Context(), req, h.appURL)
	if err != nil {
		respondError(c, h.log, "Outreach generation", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PredictSalary estimates compensation
// @Summary Predict salary range
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.SalaryRequest true "Role and candidate details"
// @Success 200 {object} models.SalaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /predict/salary [post]
func (h *ScreeningHandler) PredictSalary(c *gin.Context) {
	var req models.SalaryRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.PredictSalary(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Salary prediction", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyzeOnboarding builds an onboarding plan
// @Summary Onboarding plan
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.OnboardingRequest true "New hire and role"
// @Success 200 {object} models.OnboardingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/onboarding [post]
func (h *ScreeningHandler) AnalyzeOnboarding(c *gin.Context) {
	var req models.OnboardingRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.AnalyzeOnboarding(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Onboarding analysis", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyzePortfolio reviews a portfolio
// @Summary Portfolio review
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.PortfolioRequest true "Portfolio URL or projects"
// @Success 200 {object} models.PortfolioResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/portfolio [post]
func (h *ScreeningHandler) AnalyzePortfolio(c *gin.Context) {
	var req models.PortfolioRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.AnalyzePortfolio(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Portfolio analysis", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RoleArchitect proposes a role from business goals
// @Summary Role architect
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.RoleArchitectRequest true "Business goals"
// @Success 200 {object} models.RoleArchitectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/role-architect [post]
func (h *ScreeningHandler) RoleArchitect(c *gin.Context) {
	var req models.RoleArchitectRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.RoleArchitect(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Role design", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyzeVideo reviews an interview transcript
// @Summary Interview recording review
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.VideoRequest true "Interview transcript"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/video [post]
func (h *ScreeningHandler) AnalyzeVideo(c *gin.Context) {
	var req models.VideoRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.AnalyzeVideo(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Video analysis", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InterviewAddon generates one extra interview question
// @Summary Extra interview question
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body models.InterviewAddonRequest true "Round and candidate"
// @Success 200 {object} models.InterviewAddonResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /interview/addon [post]
func (h *ScreeningHandler) InterviewAddon(c *gin.Context) {
	var req models.InterviewAddonRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.InterviewAddon(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "Interview question generation", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Embeddings embeds text as one pooled vector
// @Summary Text embedding
// @Description Splits text into overlapping chunks, embeds each and mean-pools the vectors
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.EmbeddingRequest true "Text to embed"
// @Success 200 {object} models.EmbeddingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /embeddings [post]
func (h *ScreeningHandler) Embeddings(c *gin.Context) {
	var req models.EmbeddingRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.svc.Embed(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, h.log, "Embedding", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
