package models

// HealthStatusOK is the only status the health endpoint reports
const HealthStatusOK = "ok"

// HealthResponse represents the response from the health check endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
