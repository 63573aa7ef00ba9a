package responses

// Envelope is the standard response shape for all proxy endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// RefreshResponse is the shape returned by the manual refresh endpoint.
type RefreshResponse struct {
	Success    bool   `json:"success"`
	ProxyCount int    `json:"proxy_count"`
	Message    string `json:"message"`
}

// StatsData mirrors the pool metadata for the stats endpoint.
type StatsData struct {
	Count           int    `json:"count"`
	LastRefreshedAt string `json:"last_refreshed_at"`
	LastFetchTotal  int    `json:"last_fetch_total"`
	LastValidCount  int    `json:"last_valid_count"`
}

// HealthData is the liveness payload.
type HealthData struct {
	Status          string `json:"status"`
	ProxyCount      int    `json:"proxy_count"`
	LastRefreshedAt string `json:"last_refreshed_at,omitempty"`
}

// OK builds a success envelope.
func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Error builds a failure envelope.
func Error(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
