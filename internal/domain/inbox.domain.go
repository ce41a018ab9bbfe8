package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         int64       `json:"id"`
	SenderID   string      `json:"sender"`
	ReceiverID string      `json:"receiver"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	IsRead     bool        `json:"is_read"`
	Sender     *PublicUser `json:"sender_details,omitempty"`
}

const (
	NotificationSystem       = "system"
	NotificationAnnouncement = "announcement"
	NotificationAlert        = "alert"
	NotificationInfo         = "info"
	NotificationCustom       = "custom"
)

// ValidNotificationType reports whether t is one of the supported kinds.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationSystem, NotificationAnnouncement, NotificationAlert, NotificationInfo, NotificationCustom:
		return true
	}
	return false
}

// Notification is an administrative or system broadcast to a single user.
type Notification struct {
	ID               int64     `json:"id"`
	RecipientID      string    `json:"recipient"`
	SenderID         *string   `json:"sender"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	Timestamp        time.Time `json:"timestamp"`
	IsRead           bool      `json:"is_read"`
	Link             *string   `json:"link"`
	NotificationType string    `json:"notification_type"`
}
