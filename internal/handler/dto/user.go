// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProbeResponse describes a cache write/read round trip.
type ProbeResponse struct {
	Key            string `json:"key"`
	SetValue       string `json:"set_value"`
	RetrievedValue string `json:"retrieved_value"`
}
