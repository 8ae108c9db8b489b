// Package fetch retrieves raw media bytes with a size ceiling and optional
// progress reporting.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/rs/zerolog"

	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
	"github.com/mhaminn/social-scraper-bot/internal/platform/observability"
)

const (
	chunkSize        = 1024 * 1024
	progressInterval = 500 * time.Millisecond
)

// ProgressFunc receives download progress. total is -1 when the server did
// not declare a content length.
type ProgressFunc func(downloaded, total int64)

// Fetcher downloads media files into memory.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
	logger     *zerolog.Logger
}

func New(timeout time.Duration, maxBytes int64, logger *zerolog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// Fetch downloads the resource at rawURL. It preflights the declared size
// with a HEAD request so oversized files are rejected without reading the
// body; servers that omit Content-Length are re-checked after download.
// Returns ErrTooLarge when the ceiling is exceeded either way.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, onProgress ProgressFunc) ([]byte, error) {
	if err := f.preflight(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errs.ErrUpstreamError, resp.StatusCode)
	}

	data, err := f.readBody(resp.Body, resp.ContentLength, onProgress)
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > f.maxBytes {
		f.logger.Warn().Int("bytes", len(data)).Int64("limit", f.maxBytes).Str("url", rawURL).Msg("downloaded media over size limit")

		return nil, fmt.Errorf("%w: downloaded %d bytes", errs.ErrTooLarge, len(data))
	}

	observability.MediaFetchBytes.Observe(float64(len(data)))

	return data, nil
}

// preflight rejects resources whose declared length already exceeds the
// ceiling. Preflight failures are non-fatal: the download proceeds and the
// post-hoc check catches oversized bodies.
func (f *Fetcher) preflight(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil //nolint:nilerr // preflight is best-effort
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Debug().Err(err).Str("url", rawURL).Msg("size preflight failed, downloading anyway")

		return nil //nolint:nilerr // preflight is best-effort
	}

	_ = resp.Body.Close()

	if resp.ContentLength > f.maxBytes {
		f.logger.Warn().Int64("bytes", resp.ContentLength).Int64("limit", f.maxBytes).Str("url", rawURL).Msg("declared media size over limit")

		return fmt.Errorf("%w: declared %d bytes", errs.ErrTooLarge, resp.ContentLength)
	}

	return nil
}

func (f *Fetcher) readBody(body io.Reader, total int64, onProgress ProgressFunc) ([]byte, error) {
	var buf bytes.Buffer

	chunk := make([]byte, chunkSize)
	downloaded := int64(0)
	lastReport := time.Now()

	for {
		n, err := body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])

			downloaded += int64(n)

			if onProgress != nil && time.Since(lastReport) >= progressInterval {
				onProgress(downloaded, total)

				lastReport = time.Now()
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read media body: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// FileName derives an attachment file name from the URL path.
func FileName(rawURL, fallback string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return fallback
	}

	return name
}
