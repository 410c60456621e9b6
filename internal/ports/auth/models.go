package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}
