package domain

import "time"

const (
	CategoryTypeProfessional = "professional"
	CategoryTypeBusiness     = "business"
)

// Category classifies a profile (e.g. Photographer, Retail).
type Category struct {
	ID           int64  `json:"id"`
	Icon         string `json:"icon"`
	CategoryName string `json:"category_name"`
	Type         string `json:"type"`
}

const (
	PlatformDataURL   = "url"
	PlatformDataPhone = "phone"
)

// SocialMediaPlatform is a catalog entry (Instagram, WhatsApp, …) whose
// data_type dictates what a link for it holds.
type SocialMediaPlatform struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	DataType string `json:"data_type"`
}

// SocialMediaLink ties a user to a platform with a URL or phone number.
type SocialMediaLink struct {
	ID         int64                `json:"id"`
	UserID     string               `json:"-"`
	PlatformID int64                `json:"platform"`
	Data       string               `json:"data"`
	Platform   *SocialMediaPlatform `json:"platform_details,omitempty"`
}

// Service is an offering listed on a user's card.
type Service struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Picture     *string   `json:"picture"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Theme holds per-user card styling; one row per user, created lazily
// with defaults on first fetch.
type Theme struct {
	ID              int64   `json:"id"`
	UserID          string  `json:"-"`
	BackgroundImage *string `json:"background_image"`
	BackgroundColor string  `json:"background_color"`
	FontColor       string  `json:"font_color"`
}

const (
	DefaultBackgroundColor = "#ffffff"
	DefaultFontColor       = "#000000"
)
