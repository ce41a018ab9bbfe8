package repository

import (
	"context"

	"cardlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileViewRepository struct {
	db *pgxpool.Pool
}

func NewProfileViewRepository(db *pgxpool.Pool) *ProfileViewRepository {
	return &ProfileViewRepository{db: db}
}

// RecordView upserts the (viewer, owner) pair and increments the owner's
// profile_views counter only when the row is newly created, inside one
// transaction. Two concurrent first-views collapse onto the unique
// constraint, so the counter moves by exactly one.
func (r *ProfileViewRepository) RecordView(ctx context.Context, viewerID, ownerID string) (created bool, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	err = tx.QueryRow(ctx, `
		INSERT INTO profile_view_records (viewer_id, owner_id, viewed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (viewer_id, owner_id)
		DO UPDATE SET viewed_at = NOW()
		RETURNING (xmax = 0)
	`, viewerID, ownerID).Scan(&created)
	if err != nil {
		return false, err
	}

	if created {
		if _, err = tx.Exec(ctx,
			`UPDATE users SET profile_views = profile_views + 1 WHERE id = $1`, ownerID,
		); err != nil {
			return false, err
		}
	}

	return created, tx.Commit(ctx)
}

// ListRecentlyViewed returns the viewer's view records newest first, with
// the viewed profile attached.
func (r *ProfileViewRepository) ListRecentlyViewed(ctx context.Context, viewerID string) ([]*domain.ProfileViewRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT v.id, v.viewer_id, v.owner_id, v.viewed_at,
		       u.id, u.name, u.email, u.mobile_number, u.country_code, u.is_whatsapp
		FROM profile_view_records v
		JOIN users u ON u.id = v.owner_id
		WHERE v.viewer_id = $1
		ORDER BY v.viewed_at DESC
	`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ProfileViewRecord
	for rows.Next() {
		rec := &domain.ProfileViewRecord{}
		owner := &domain.User{}
		if err := rows.Scan(
			&rec.ID, &rec.ViewerID, &rec.OwnerID, &rec.ViewedAt,
			&owner.ID, &owner.Name, &owner.Email, &owner.MobileNumber, &owner.CountryCode, &owner.IsWhatsApp,
		); err != nil {
			return nil, err
		}
		rec.ProfileOwner = owner.Public()
		records = append(records, rec)
	}
	return records, rows.Err()
}
