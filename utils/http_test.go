package utils

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_SetsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := NewHTTPClient(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "HireFlow/1.0", ua)
}

func TestNewHTTPClient_KeepsCallerUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom/2.0")

	resp, err := NewHTTPClient(time.Second).Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "custom/2.0", ua)
}

func TestCheckResponse(t *testing.T) {
	ok := &http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(strings.NewReader(""))}
	assert.NoError(t, CheckResponse(ok, "svc"))

	failed := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Body:       io.NopCloser(strings.NewReader("  quota exceeded \n")),
	}
	err := CheckResponse(failed, "Groq API")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
	assert.Equal(t, "quota exceeded", statusErr.Body)
	assert.Equal(t, "Groq API returned status 429: quota exceeded", err.Error())
}

func TestCheckResponse_TruncatesBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", 4096))),
	}
	var statusErr *StatusError
	require.True(t, errors.As(CheckResponse(resp, "svc"), &statusErr))
	assert.Len(t, statusErr.Body, 1024)
}
