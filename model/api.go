// Package model - API types for directory responses
package model

// UserListResponse is returned by the users endpoint
type UserListResponse struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Users []UserRecord `json:"users"`
}

// StatisticsResponse is returned by the statistics endpoint
type StatisticsResponse struct {
	Query     string              `json:"query"`
	Count     int                 `json:"count"`
	Locale    string              `json:"locale"`
	Stats     Statistics          `json:"statistics"`
	Formatted FormattedStatistics `json:"formatted"`
}

// HealthResponse describes the service state
type HealthResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Version string `json:"version"`
	Records int    `json:"records"`
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error"`
}
