package proxy

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Checker decides whether a single candidate endpoint is usable. Any
// timeout or connection failure is reported as false, never as an error.
type Checker interface {
	Check(ctx context.Context, endpoint Endpoint) bool
}

// HTTPChecker verifies a candidate by requesting the configured test URL
// through the candidate as an HTTP proxy.
type HTTPChecker struct {
	TestURL string
	Timeout time.Duration
}

func (c *HTTPChecker) Check(ctx context.Context, endpoint Endpoint) bool {
	proxyURL, err := url.Parse(endpoint.URL())
	if err != nil {
		return false
	}

	client := &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			Proxy:             http.ProxyURL(proxyURL),
			DisableKeepAlives: true,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.TestURL, nil)
	if err != nil {
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Validator tests candidate batches through a bounded worker pool.
// Batches run sequentially relative to each other; candidates within a
// batch run concurrently, capped at Concurrency simultaneous checks so the
// outbound connection count stays predictable.
type Validator struct {
	checker     Checker
	batchSize   int
	concurrency int
	log         zerolog.Logger
}

func NewValidator(checker Checker, batchSize, concurrency int, log zerolog.Logger) *Validator {
	if batchSize < 1 {
		batchSize = 1
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Validator{
		checker:     checker,
		batchSize:   batchSize,
		concurrency: concurrency,
		log:         log.With().Str("component", "validator").Logger(),
	}
}

// Validate returns the subset of candidates that passed the check. Failed
// candidates are discarded silently. Order of the result is not guaranteed.
func (v *Validator) Validate(ctx context.Context, candidates []Endpoint) []Endpoint {
	valid := make([]Endpoint, 0, len(candidates))

	for start := 0; start < len(candidates); start += v.batchSize {
		end := start + v.batchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		valid = append(valid, v.validateBatch(ctx, candidates[start:end])...)
	}

	v.log.Debug().
		Int("candidates", len(candidates)).
		Int("valid", len(valid)).
		Msg("validation finished")
	return valid
}

func (v *Validator) validateBatch(ctx context.Context, batch []Endpoint) []Endpoint {
	results := make([]bool, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, candidate := range batch {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = v.checker.Check(gctx, candidate)
			return nil
		})
	}
	// Workers never return errors; failures are recorded per candidate.
	_ = g.Wait()

	valid := make([]Endpoint, 0, len(batch))
	for i, ok := range results {
		if ok {
			valid = append(valid, batch[i])
		}
	}
	return valid
}
