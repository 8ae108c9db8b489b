package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
)

func newTestFetcher(maxBytes int64) *Fetcher {
	logger := zerolog.Nop()

	return New(5*time.Second, maxBytes, &logger)
}

func TestFetchSuccess(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 2048)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	data, err := newTestFetcher(1<<20).Fetch(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetchRejectsDeclaredOversize(t *testing.T) {
	var gotGet bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gotGet = true
		}

		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)

		if r.Method == http.MethodGet {
			_, _ = w.Write(bytes.Repeat([]byte("x"), 1000))
		}
	}))
	defer server.Close()

	_, err := newTestFetcher(100).Fetch(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTooLarge))
	assert.False(t, gotGet, "oversized declared length must be rejected before the download")
}

func TestFetchRejectsUndeclaredOversize(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 500)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			// No Content-Length on the preflight.
			w.WriteHeader(http.StatusOK)

			return
		}

		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	_, err := newTestFetcher(100).Fetch(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTooLarge))
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher(1<<20).Fetch(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUpstreamError))
}

func TestFetchReportsProgress(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 4096)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))

		flusher := w.(http.Flusher)
		for i := 0; i < len(payload); i += 1024 {
			_, _ = w.Write(payload[i : i+1024])
			flusher.Flush()
			time.Sleep(200 * time.Millisecond)
		}
	}))
	defer server.Close()

	var calls int

	var lastTotal int64

	onProgress := func(downloaded, total int64) {
		calls++
		lastTotal = total

		assert.LessOrEqual(t, downloaded, total)
	}

	data, err := newTestFetcher(1<<20).Fetch(context.Background(), server.URL, onProgress)

	require.NoError(t, err)
	assert.Len(t, data, len(payload))
	assert.Positive(t, calls)
	assert.Equal(t, int64(len(payload)), lastTotal)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "clip.mp4", FileName("https://cdn.example.com/media/clip.mp4?sig=abc", "video.mp4"))
	assert.Equal(t, "video.mp4", FileName("https://cdn.example.com/", "video.mp4"))
	assert.Equal(t, "video.mp4", FileName("://bad-url", "video.mp4"))
}
