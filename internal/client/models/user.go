// Package models holds the wire DTOs exchanged with the classtrack server.
// The client renders what the server sent and never recomputes derived
// fields (percentages, streaks, overdue flags).
package models

// User is the authenticated account as returned by the auth endpoints.
// Timestamps are ISO 8601 strings exactly as the server serializes them.
type User struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	LastLogin   string         `json:"last_login,omitempty"`
	Timezone    string         `json:"timezone,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// AuthResponse is the login/registration payload: the bearer token plus the
// user it belongs to.
type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// ProfileUpdate carries the mutable profile fields for PUT /profile.
// Pointer fields distinguish "leave unchanged" from "set to zero value".
type ProfileUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Timezone    *string        `json:"timezone,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}
