// Package model defines domain entities for the application.
package model

// Profile is the public user profile served by the API.
// It is built once at startup from configuration and never mutated.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Stack string `json:"stack"`
}

// MeResponse is the envelope returned by GET /me.
// A fresh envelope is constructed per request; nothing is cached.
type MeResponse struct {
	Status    string  `json:"status"`
	User      Profile `json:"user"`
	Timestamp string  `json:"timestamp"`
	Fact      string  `json:"fact"`
}
