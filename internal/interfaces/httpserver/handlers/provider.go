package handlers

import (
	"github.com/rs/zerolog"

	"proxypool-server/internal/config"
	domain "proxypool-server/internal/domain/proxy"
)

// Provider wires HTTP handlers.
type Provider struct {
	Proxy *ProxyHandler
}

func NewProvider(cfg *config.Config, manager *domain.Manager, log zerolog.Logger) *Provider {
	return &Provider{
		Proxy: NewProxyHandler(cfg, manager, log),
	}
}
