package domain

import "time"

// User is an account able to author polls and answer restricted ones.
// Password is stored and compared as plain text.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
