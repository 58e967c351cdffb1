package Entities

import "time"

// Log is an audit record written after a successful mutation. Records are
// keyed by a string id (uuid), not an auto-increment.
type Log struct {
	Id          string    `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
