package source

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
	"github.com/matzehuels/cattree/pkg/httputil"
	"github.com/matzehuels/cattree/pkg/io"
	"github.com/matzehuels/cattree/pkg/observability"
)

const (
	httpTimeout     = 10 * time.Second
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// HTTPOption configures an [HTTP] source.
type HTTPOption func(*httpSource)

// WithHeaders sets headers sent with every request.
func WithHeaders(h map[string]string) HTTPOption {
	return func(s *httpSource) {
		for k, v := range h {
			s.headers[k] = v
		}
	}
}

// WithAttempts sets how many times transient failures are tried.
// Values below 1 mean a single attempt.
func WithAttempts(n int) HTTPOption {
	return func(s *httpSource) { s.attempts = n }
}

// WithRetryDelay sets the delay before the first retry. It doubles after
// each further failure.
func WithRetryDelay(d time.Duration) HTTPOption {
	return func(s *httpSource) { s.delay = d }
}

// WithHTTPClient replaces the default client, which times out after
// 10 seconds.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *httpSource) {
		if c != nil {
			s.client = c
		}
	}
}

type httpSource struct {
	url      string
	client   *http.Client
	headers  map[string]string
	attempts int
	delay    time.Duration
}

// HTTP returns a query that GETs rawURL and decodes a {"data": [...]} body
// (a bare list is accepted too). Transport errors and 5xx responses are
// retried with exponential backoff.
func HTTP(rawURL string, opts ...HTTPOption) category.QueryFunc {
	s := &httpSource{
		url:      rawURL,
		client:   &http.Client{Timeout: httpTimeout},
		headers:  map[string]string{"Accept": "application/json"},
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.query
}

func (s *httpSource) query(ctx context.Context) (*category.Response, error) {
	if err := errs.ValidateURL(s.url); err != nil {
		return nil, err
	}
	var cats []category.Category
	err := httputil.Retry(ctx, s.attempts, s.delay, func() error {
		var err error
		cats, err = s.fetch(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &category.Response{Data: cats}, nil
}

func (s *httpSource) fetch(ctx context.Context) ([]category.Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "build request")
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(s.url)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &httputil.RetryableError{Err: errs.Wrap(errs.ErrCodeNetwork, err, "GET %s", s.url)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(s.url, resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadCategories(resp.Body, io.FormatJSON)
}

func checkStatus(rawURL string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errs.New(errs.ErrCodeNotFound, "GET %s: status %d", rawURL, code)
	case code >= 500:
		return &httputil.RetryableError{Err: errs.New(errs.ErrCodeNetwork, "GET %s: status %d", rawURL, code)}
	default:
		return errs.New(errs.ErrCodeNetwork, "GET %s: status %d", rawURL, code)
	}
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
