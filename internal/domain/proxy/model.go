package proxy

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Endpoint is a normalized "host:port" proxy address.
type Endpoint string

// ParseEndpoint normalizes a raw candidate into an Endpoint. It trims
// whitespace, requires a host:port shape and a port in the valid range,
// and returns false for anything malformed.
func ParseEndpoint(raw string) (Endpoint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	host, portStr, err := net.SplitHostPort(raw)
	if err != nil || host == "" {
		return "", false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", false
	}
	return Endpoint(net.JoinHostPort(host, portStr)), true
}

// URL returns the endpoint as an http proxy URL string.
func (e Endpoint) URL() string {
	return "http://" + string(e)
}

// Dedupe removes duplicate endpoints preserving first-seen order.
func Dedupe(endpoints []Endpoint) []Endpoint {
	seen := make(map[Endpoint]struct{}, len(endpoints))
	out := make([]Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Stats describes the current pool and the outcome of the last refresh cycle.
type Stats struct {
	Count           int       `json:"count"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
	LastFetchTotal  int       `json:"last_fetch_total"`
	LastValidCount  int       `json:"last_valid_count"`
}

// RefreshResult reports whether a refresh request actually ran and how many
// endpoints survived validation.
type RefreshResult struct {
	Triggered  bool
	ValidCount int
}
