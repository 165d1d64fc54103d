package tools

import (
	"encoding/json"
	"strings"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/screening"
)

// failure turns a task error into an error result. Validation messages are
// returned as-is; provider errors are logged and replaced by a generic message.
func failure(task string, err error) (json.RawMessage, error) {
	if screening.IsValidation(err) {
		return Fail(err.Error())
	}
	logger.For("Tools").WithError(err).WithField("task", task).Error("tool execution failed")
	return Fail(task + " failed")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
