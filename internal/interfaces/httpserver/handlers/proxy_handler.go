package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"proxypool-server/internal/config"
	domain "proxypool-server/internal/domain/proxy"
	"proxypool-server/internal/interfaces/httpserver/responses"
)

// ProxyHandler exposes the proxy pool read endpoints and the manual
// refresh trigger.
type ProxyHandler struct {
	cfg     *config.Config
	manager *domain.Manager
	log     zerolog.Logger
}

func NewProxyHandler(cfg *config.Config, manager *domain.Manager, log zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{
		cfg:     cfg,
		manager: manager,
		log:     log.With().Str("component", "proxy-handler").Logger(),
	}
}

// List returns all currently valid proxies.
func (h *ProxyHandler) List(c *gin.Context) {
	proxies := h.manager.Pool().List()
	c.JSON(http.StatusOK, responses.OK(proxies,
		fmt.Sprintf("retrieved %d valid proxies", len(proxies))))
}

// Random returns one random proxy from the pool.
func (h *ProxyHandler) Random(c *gin.Context) {
	endpoint, err := h.manager.Pool().Random()
	if err != nil {
		if errors.Is(err, domain.ErrPoolEmpty) {
			c.JSON(http.StatusNotFound, responses.Error("no valid proxies available"))
			return
		}
		h.log.Error().Err(err).Msg("random pick failed")
		c.JSON(http.StatusInternalServerError, responses.Error("failed to retrieve random proxy"))
		return
	}
	c.JSON(http.StatusOK, responses.OK(endpoint, "random proxy retrieved"))
}

// Refresh triggers a forced refresh cycle. The rate limiter runs before
// this handler; here only the mutual-exclusion rejection remains.
func (h *ProxyHandler) Refresh(c *gin.Context) {
	result, err := h.manager.Refresh(c.Request.Context(), true)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshInProgress) {
			c.JSON(http.StatusConflict, responses.Error("refresh already in progress"))
			return
		}
		h.log.Error().Err(err).Msg("manual refresh failed")
		c.JSON(http.StatusInternalServerError, responses.Error("refresh failed"))
		return
	}

	c.JSON(http.StatusOK, responses.RefreshResponse{
		Success:    true,
		ProxyCount: result.ValidCount,
		Message:    fmt.Sprintf("refresh completed with %d valid proxies", result.ValidCount),
	})
}

// Stats returns the pool metadata.
func (h *ProxyHandler) Stats(c *gin.Context) {
	stats := h.manager.Pool().Stats()
	c.JSON(http.StatusOK, responses.OK(responses.StatsData{
		Count:           stats.Count,
		LastRefreshedAt: formatTime(stats.LastRefreshedAt),
		LastFetchTotal:  stats.LastFetchTotal,
		LastValidCount:  stats.LastValidCount,
	}, "statistics retrieved"))
}

// Health reports service liveness together with a pool summary.
func (h *ProxyHandler) Health(c *gin.Context) {
	stats := h.manager.Pool().Stats()
	c.JSON(http.StatusOK, responses.OK(responses.HealthData{
		Status:          "healthy",
		ProxyCount:      stats.Count,
		LastRefreshedAt: formatTime(stats.LastRefreshedAt),
	}, "service is healthy"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
