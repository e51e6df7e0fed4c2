// Package api defines the HTTP wire types and error codes.
package api

import "time"

// ErrorCode enumerates machine-readable error categories.
type ErrorCode string

const (
	// CodeInvalidInput marks a malformed or missing request field.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeConflict marks a uniqueness conflict.
	CodeConflict ErrorCode = "CONFLICT"
	// CodeInternal marks an unexpected server failure.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// UserView is the flat read projection of a user. It always carries the
// user's full tag and busy slot sets, regardless of any query window.
type UserView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone,omitempty"`
	Tags      []string       `json:"tags"`
	BusySlots []BusySlotView `json:"busy_slots"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BusySlotView renders one busy interval.
type BusySlotView struct {
	ID        string    `json:"id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest is the user registration payload.
type CreateUserRequest struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone *string  `json:"phone"`
	Tags  []string `json:"tags"`
}

// UpdateUserRequest is a partial profile update; absent fields are kept,
// a present tags array replaces the association set.
type UpdateUserRequest struct {
	Name  *string   `json:"name"`
	Email *string   `json:"email"`
	Phone *string   `json:"phone"`
	Tags  *[]string `json:"tags"`
}

// TagsRequest names tags to attach or detach.
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// MarkBusyRequest creates a busy slot. Bounds stay strings so malformed
// timestamps surface as INVALID_INPUT instead of a body-decode failure.
type MarkBusyRequest struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Reason *string `json:"reason"`
}
