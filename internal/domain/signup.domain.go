package domain

import "time"

// PendingSignup is the ephemeral staging entry created by a signup request
// and destroyed on finalize or expiry. It is keyed by the normalized phone
// number in the staging store, never persisted to the relational store.
type PendingSignup struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	CountryCode  string    `json:"country_code"`
	IsWhatsApp   bool      `json:"is_whatsapp"`
	OTPCode      string    `json:"otp_code"`
	IssuedAt     time.Time `json:"issued_at"`
}
