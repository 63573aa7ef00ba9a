package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"proxypool-server/internal/domain/proxy"
)

const userAgent = "proxypool-server/1.0"

// feedEntry is one record of the JSON proxy feed. Only ip and port are
// consumed; everything else in the feed is ignored.
type feedEntry struct {
	IP   string      `json:"ip"`
	Port json.Number `json:"port"`
}

// JSONSource pulls candidate endpoints from a structured JSON feed.
// Entries with missing or malformed fields are skipped rather than
// failing the whole fetch.
type JSONSource struct {
	url     string
	client  *resty.Client
	breaker *CircuitBreaker
	log     zerolog.Logger
}

func NewJSONSource(url string, log zerolog.Logger) *JSONSource {
	return &JSONSource{
		url: url,
		client: resty.New().
			SetHeader("User-Agent", userAgent),
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		log:     log.With().Str("component", "json-source").Logger(),
	}
}

func (s *JSONSource) Name() string {
	return "json"
}

func (s *JSONSource) Fetch(ctx context.Context) ([]proxy.Endpoint, error) {
	var endpoints []proxy.Endpoint

	err := s.breaker.Execute("json-source", func() error {
		resp, err := s.client.R().SetContext(ctx).Get(s.url)
		if err != nil {
			return fmt.Errorf("fetch proxy feed: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("fetch proxy feed: status %d", resp.StatusCode())
		}

		endpoints, err = parseProxyFeed(resp.Body())
		if err != nil {
			return fmt.Errorf("parse proxy feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("count", len(endpoints)).Msg("fetched proxy feed")
	return endpoints, nil
}

// parseProxyFeed decodes the feed entry by entry so one malformed record
// does not discard the rest.
func parseProxyFeed(body []byte) ([]proxy.Endpoint, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	endpoints := make([]proxy.Endpoint, 0, len(raw))
	for _, record := range raw {
		var entry feedEntry
		if err := json.Unmarshal(record, &entry); err != nil {
			continue
		}
		if entry.IP == "" || entry.Port == "" {
			continue
		}
		if endpoint, ok := proxy.ParseEndpoint(entry.IP + ":" + entry.Port.String()); ok {
			endpoints = append(endpoints, endpoint)
		}
	}
	return endpoints, nil
}
