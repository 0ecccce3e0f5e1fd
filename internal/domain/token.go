package domain

import "time"

// TokenClaims is the payload of an access token: which board the bearer
// owns and until when. Nothing is persisted server-side.
type TokenClaims struct {
	BoardId   BoardId
	ExpiresAt time.Time
}
