package model

import "time"

type StatusResponse struct {
	Status string `json:"status"`
}

// APIError is the error envelope returned by every endpoint.
type APIError struct {
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Details   []string  `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
