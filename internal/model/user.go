// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered user. ID and CreatedAt are assigned by the
// store at insertion time and never change afterwards.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
