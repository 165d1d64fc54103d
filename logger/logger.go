// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hireflow/backend/config"
)

var base = logrus.New()

// Init applies level, format and output settings from the config.
// With LOG_FILE set, entries go to stdout and to a rotating file.
func Init(cfg *config.Config) {
	level := cfg.LogLevel
	if level == "" {
		level = "info"
		if cfg.Debug {
			level = "debug"
		}
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	base.SetLevel(parsed)

	format := strings.ToLower(cfg.LogFormat)
	if format == "" {
		format = "json"
		if cfg.Debug {
			format = "text"
		}
	}
	if format == "text" {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
			Compress:   true,
		})
	}
	base.SetOutput(out)
}

// Get returns the shared logger
func Get() *logrus.Logger {
	return base
}

// For returns an entry tagged with the component name
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// GinMiddleware writes one access log line per request
func GinMiddleware() gin.HandlerFunc {
	log := For("HTTP")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}
