package domain

import "time"

// SavedContact marks that one user keeps another in their contact list.
// At most one row per (user, saved_user) pair; repeated toggle calls
// create and delete it alternately.
type SavedContact struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"-"`
	SavedUserID string      `json:"saved_user"`
	SavedAt     time.Time   `json:"saved_at"`
	SavedUser   *PublicUser `json:"saved_user_details,omitempty"`
}

// ProfileViewRecord tracks that a viewer has seen an owner's profile.
// At most one row per (viewer, owner) pair; re-views refresh ViewedAt in
// place. Creating a new row is the only event that increments the owner's
// profile_views counter.
type ProfileViewRecord struct {
	ID           int64       `json:"id"`
	ViewerID     string      `json:"-"`
	OwnerID      string      `json:"profile_owner"`
	ViewedAt     time.Time   `json:"viewed_at"`
	ProfileOwner *PublicUser `json:"profile_owner_details,omitempty"`
}
