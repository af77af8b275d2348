package models

import "time"

// AuditLog records an auth or ownership decision after the fact. Writes are
// best effort and happen off the request path.
type AuditLog struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
