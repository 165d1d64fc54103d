package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/llm"
	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
	"github.com/hireflow/backend/storage"
)

// badRequest writes a 400 with the given message
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: message,
		Code:  http.StatusBadRequest,
	})
}

// respondError maps a task or store error to a status and a JSON body.
// Provider errors are logged and never returned to the caller.
func respondError(c *gin.Context, log *logrus.Entry, action string, err error) {
	var validation *screening.ValidationError
	var step *screening.StepError

	switch {
	case errors.As(err, &validation):
		badRequest(c, validation.Error())
		return
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	_ = c.Error(err)
	log.WithError(err).Error(action + " failed")

	resp := models.ErrorResponse{
		Error: action + " failed",
		Code:  http.StatusInternalServerError,
	}
	if errors.As(err, &step) {
		resp.Details = step.Step + " step failed"
	}
	if errors.Is(err, llm.ErrAllProvidersFailed) {
		resp.Details = "AI providers unavailable"
	}
	c.JSON(http.StatusInternalServerError, resp)
}
