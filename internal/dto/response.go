package dto

// Response is the envelope shared by every JSON endpoint
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
	Path    string `json:"path,omitempty"`
}

// HealthResponse is returned by the probe endpoints. Details carries per-dependency state.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
