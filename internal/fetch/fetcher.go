// Package fetch performs single-URL retrieval with retry, backoff and
// per-origin circuit breaking.
package fetch

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/mealscout/recipe-scout/internal/metrics"
)

// Config controls fetcher behavior.
type Config struct {
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// Fetcher retrieves page text over HTTP. One logical Fetch may issue
// several attempts; only the terminal outcome reaches the breaker.
type Fetcher struct {
	cfg       Config
	policy    retryPolicy
	breakers  *BreakerRegistry
	logger    *zap.Logger
	transport http.RoundTripper
}

// New builds a Fetcher around the given breaker registry.
func New(cfg Config, breakers *BreakerRegistry, logger *zap.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BackoffInitial == 0 {
		cfg.BackoffInitial = 500 * time.Millisecond
	}
	if cfg.BackoffMax == 0 {
		cfg.BackoffMax = 8 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		cfg: cfg,
		policy: retryPolicy{
			maxRetries: cfg.MaxRetries,
			baseDelay:  cfg.BackoffInitial,
			maxDelay:   cfg.BackoffMax,
		},
		breakers:  breakers,
		logger:    logger,
		transport: newHTTPTransport(),
	}
}

// Fetch retrieves the page text for rawURL. The origin's circuit is
// checked before any network call; the terminal outcome, including one
// observed after the caller's context expired, is recorded into it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	origin := originOf(rawURL)
	if err := f.breakers.Allow(origin); err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		attemptStart := time.Now()
		body, err := f.fetchOnce(ctx, rawURL)
		metrics.ObserveFetch(origin, time.Since(attemptStart))
		if err == nil {
			f.breakers.RecordSuccess(origin)
			return body, nil
		}
		lastErr = err

		if !f.policy.shouldRetry(err, attempt) {
			break
		}
		wait := f.policy.backoff(err, attempt)
		f.logger.Debug("retrying fetch",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			f.breakers.RecordFailure(origin)
			return "", &NetworkError{URL: rawURL, Err: ctx.Err()}
		case <-time.After(wait):
		}
	}

	f.breakers.RecordFailure(origin)
	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	var (
		body     []byte
		typedErr error
	)

	// Each request gets a private collector: colly clones share one HTTP
	// backend, so a per-request transport or timeout set on a clone would
	// leak into concurrent fetches to other origins. Connection pooling
	// stays shared through f.transport. Injecting the context at the
	// transport layer means cancellation genuinely aborts the in-flight
	// request.
	collector := colly.NewCollector()
	// The colly.Async option ignores a false argument in colly v2.1.0,
	// so synchronous mode is set via the field instead.
	collector.Async = false
	collector.AllowURLRevisit = true
	collector.IgnoreRobotsTxt = true
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	collector.SetRequestTimeout(f.cfg.Timeout)
	collector.WithTransport(&ctxTransport{base: f.transport, ctx: ctx})

	collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode >= 300 {
			typedErr = httpErrorFrom(rawURL, r)
			return
		}
		body = append([]byte(nil), r.Body...)
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode >= 300 {
			typedErr = httpErrorFrom(rawURL, r)
			return
		}
		typedErr = &NetworkError{URL: rawURL, Err: err}
	})

	if err := collector.Visit(rawURL); err != nil && typedErr == nil {
		typedErr = &NetworkError{URL: rawURL, Err: err}
	}
	if typedErr != nil {
		return "", typedErr
	}
	return string(body), nil
}

// Breakers exposes the registry for diagnostics.
func (f *Fetcher) Breakers() *BreakerRegistry {
	return f.breakers
}

func httpErrorFrom(rawURL string, r *colly.Response) *HTTPError {
	he := &HTTPError{URL: rawURL, StatusCode: r.StatusCode}
	if r.Headers != nil {
		he.RetryAfter = parseRetryAfter(r.Headers.Get("Retry-After"))
	}
	return he
}

// parseRetryAfter accepts the delta-seconds form and the HTTP-date form.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}

// ctxTransport binds each request to the fetch context.
type ctxTransport struct {
	base http.RoundTripper
	ctx  context.Context
}

func (t *ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
