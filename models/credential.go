package models

import "time"

// Credential is a bearer token issued by the tenant identity endpoint,
// together with the instant past which it must not be reused.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Usable reports whether the credential can still be presented at the
// given instant.
func (c *Credential) Usable(now time.Time) bool {
	return c != nil && c.Token != "" && now.Before(c.ExpiresAt)
}
