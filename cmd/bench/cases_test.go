package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRunner(baseURL string, duration time.Duration) *Runner {
	return NewRunner(Config{
		BaseURL:     baseURL,
		Timeout:     10 * time.Second,
		Concurrency: 2,
		Duration:    duration,
	})
}

func TestPerfLoad_CountsOnlyOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	res := perfLoad(context.Background(), newTestRunner(srv.URL, 200*time.Millisecond), srv.URL, map[string]any{})
	assert.Equal(t, StatusPass, res.Status, res.Note)
	assert.Contains(t, res.Note, "errors=0")
}

func TestPerfLoad_ErrorStatusesAreNotThroughput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res := perfLoad(context.Background(), newTestRunner(srv.URL, 200*time.Millisecond), srv.URL, map[string]any{})
	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Note, "no requests completed")
}

func TestPerfLoad_UnreachableServerGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	start := time.Now()
	res := perfLoad(context.Background(), newTestRunner(url, 30*time.Second), url, map[string]any{})
	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Note, "server unreachable")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, perfBackoffStep, backoff(1))
	assert.Equal(t, 3*perfBackoffStep, backoff(3))
	assert.Equal(t, perfBackoffMax, backoff(100))
}
