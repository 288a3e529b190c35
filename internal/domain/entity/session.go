package entity

import "time"

// Session is an authenticated login of the device owner.
type Session struct {
	Token     string    `json:"token"`
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}
