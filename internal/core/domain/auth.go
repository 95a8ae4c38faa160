package domain

import "time"

// APIKey is a client credential. Only the SHA-256 hash of the token is stored.
type APIKey struct {
	TokenHash string
	Name      string
	Active    bool
	CreatedAt time.Time
}
