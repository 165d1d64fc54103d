package utils

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hireflow/backend/logger"
)

// UserAgent is sent on every outbound request that does not set one
const UserAgent = "HireFlow/1.0"

// maxErrorBody caps how much of a failed response is kept in a StatusError
const maxErrorBody = 1024

// NewHTTPClient creates the client shared by provider adapters and the page
// fetcher. Requests are tagged with UserAgent and logged at debug level.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &outboundTransport{
			next: transport,
			log:  logger.For("HTTPClient"),
		},
	}
}

type outboundTransport struct {
	next http.RoundTripper
	log  *logrus.Entry
}

func (t *outboundTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	entry := t.log.WithFields(logrus.Fields{
		"method":   req.Method,
		"host":     req.URL.Host,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Debug("outbound request failed")
		return nil, err
	}
	entry.WithField("status", resp.StatusCode).Debug("outbound request")
	return resp, nil
}

// StatusError is a non-2xx reply from an upstream service
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Service, e.Code)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Code, e.Body)
}

// CheckResponse returns a *StatusError for any non-2xx response, keeping
// the start of the body for logs. The body is left for the caller to close.
func CheckResponse(resp *http.Response, service string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Service: service,
		Code:    resp.StatusCode,
		Body:    strings.TrimSpace(string(body)),
	}
}
