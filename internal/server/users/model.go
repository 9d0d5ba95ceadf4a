package users

import "time"

// User is the persistence model for a registered account. It is never
// exposed at the transport boundary; handlers map it to payload types.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
