package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"proxypool-server/internal/domain/proxy"
)

// HTMLSource scrapes candidate endpoints from a free proxy list page.
// The page is expected to contain a table whose rows hold the IP in the
// first cell and the port in the second; malformed rows are skipped.
type HTMLSource struct {
	url     string
	client  *resty.Client
	breaker *CircuitBreaker
	log     zerolog.Logger
}

func NewHTMLSource(url string, log zerolog.Logger) *HTMLSource {
	return &HTMLSource{
		url: url,
		client: resty.New().
			SetHeader("User-Agent", userAgent),
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		log:     log.With().Str("component", "html-source").Logger(),
	}
}

func (s *HTMLSource) Name() string {
	return "html"
}

func (s *HTMLSource) Fetch(ctx context.Context) ([]proxy.Endpoint, error) {
	var endpoints []proxy.Endpoint

	err := s.breaker.Execute("html-source", func() error {
		resp, err := s.client.R().SetContext(ctx).Get(s.url)
		if err != nil {
			return fmt.Errorf("fetch proxy page: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("fetch proxy page: status %d", resp.StatusCode())
		}

		endpoints, err = parseProxyTable(resp.Body())
		if err != nil {
			return fmt.Errorf("parse proxy page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("count", len(endpoints)).Msg("scraped proxy page")
	return endpoints, nil
}

// parseProxyTable walks the document for table rows and extracts ip:port
// pairs from the first two cells of each row.
func parseProxyTable(body []byte) ([]proxy.Endpoint, error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	var endpoints []proxy.Endpoint
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells := rowCells(n)
			if len(cells) >= 2 {
				if endpoint, ok := proxy.ParseEndpoint(cells[0] + ":" + cells[1]); ok {
					endpoints = append(endpoints, endpoint)
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return endpoints, nil
}

// rowCells collects the trimmed text of each td in a table row.
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return builder.String()
}
