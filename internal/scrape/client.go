// Package scrape implements the downloader-API adapters, one per supported
// platform. Each adapter takes a raw user URL, canonicalizes it, calls its
// remote API and normalizes the response into a MediaEnvelope. Adapters never
// return Go errors past their boundary: every failure becomes an error
// envelope with a user-facing message.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	"github.com/mhaminn/social-scraper-bot/internal/platform/observability"
)

const (
	defaultTimeout = 15 * time.Second
	limiterBurst   = 2

	msgTimedOut = "Request timed out"
)

var errUnexpectedStatus = errors.New("unexpected status")

// Adapter fetches and normalizes media for one platform.
type Adapter interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, rawURL string) domain.MediaEnvelope
}

// apiClient performs the single outbound GET all adapters share:
// <base>?url=<percent-encoded-canonical-url>.
type apiClient struct {
	platform   domain.Platform
	baseURL    string
	acceptJSON bool
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zerolog.Logger
}

func newAPIClient(platform domain.Platform, baseURL string, acceptJSON bool, timeout time.Duration, rps float64, logger *zerolog.Logger) *apiClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if rps <= 0 {
		rps = 1
	}

	return &apiClient{
		platform:   platform,
		baseURL:    baseURL,
		acceptJSON: acceptJSON,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), limiterBurst),
		logger:     logger,
	}
}

// get requests the downloader API for the given canonical content URL and
// returns the raw response body.
func (c *apiClient) get(ctx context.Context, contentURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	requestURL := c.baseURL + "?url=" + url.QueryEscape(contentURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.acceptJSON {
		req.Header.Set("Accept", "application/json")
	}

	c.logger.Debug().Str("platform", c.platform.String()).Str("url", requestURL).Msg("requesting content from API")

	start := time.Now()

	resp, err := c.httpClient.Do(req)

	observability.UpstreamRequestDuration.WithLabelValues(c.platform.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}

// envelopeFromError converts a transport failure into the uniform error
// envelope, distinguishing timeouts from other failures.
func envelopeFromError(err error) domain.MediaEnvelope {
	if isTimeout(err) {
		return domain.ErrorEnvelope(msgTimedOut)
	}

	return domain.ErrorEnvelope("Request error: " + err.Error())
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
