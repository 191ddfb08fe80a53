package models

type MetadataResponse struct {
	Sondeo     bool   `json:"sondeo"`
	APIVersion string `json:"api_version"`
}

// StatsResponse holds the collector output, one section per collector name.
type StatsResponse map[string]any

type ProbeRequest struct {
	URL    string `json:"url"`
	Method string `json:"method,omitempty"`
}

type ProbeResponse struct {
	URL        string  `json:"url"`
	Reachable  bool    `json:"reachable"`
	StatusCode int     `json:"status_code,omitempty"`
	LatencyMS  float64 `json:"latency_ms"`
	Error      string  `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
