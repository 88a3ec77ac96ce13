package model

import "time"

// Pagination describes the slice of results returned by a list request.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is the envelope for paginated vehicle listings.
type ListResponse struct {
	Success    bool       `json:"success"`
	Data       []Vehicle  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DataResponse wraps a single payload of any shape.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageResponse carries an informational message for mutating operations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// HealthResponse reports service and store health.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Database  string    `json:"database,omitempty"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// DocsResponse is the static API catalog served at /api/docs.
type DocsResponse struct {
	Title         string   `json:"title"`
	Version       string   `json:"version"`
	Endpoints     []string `json:"endpoints"`
	FilterColumns []string `json:"filterColumns"`
	FilterTypes   []string `json:"filterTypes"`
	Example       string   `json:"example"`
}
