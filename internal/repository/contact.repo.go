package repository

import (
	"context"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedContactRepository struct {
	db *pgxpool.Pool
}

func NewSavedContactRepository(db *pgxpool.Pool) *SavedContactRepository {
	return &SavedContactRepository{db: db}
}

// Toggle removes the (user, target) contact if it exists, otherwise
// creates it. Returns true when the contact is saved after the call.
func (r *SavedContactRepository) Toggle(ctx context.Context, userID, targetID string) (saved bool, err error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM saved_contacts WHERE user_id = $1 AND saved_user_id = $2`,
		userID, targetID,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil // was saved, now unsaved
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO saved_contacts (user_id, saved_user_id, saved_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, saved_user_id) DO NOTHING
	`, userID, targetID)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23503" {
			return false, xerrors.ErrTargetOrphan
		}
		return false, err
	}
	return true, nil
}

func (r *SavedContactRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavedContact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.user_id, c.saved_user_id, c.saved_at,
		       u.id, u.name, u.email, u.mobile_number, u.country_code, u.is_whatsapp
		FROM saved_contacts c
		JOIN users u ON u.id = c.saved_user_id
		WHERE c.user_id = $1
		ORDER BY c.saved_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.SavedContact
	for rows.Next() {
		c := &domain.SavedContact{}
		u := &domain.User{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.SavedUserID, &c.SavedAt,
			&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.CountryCode, &u.IsWhatsApp,
		); err != nil {
			return nil, err
		}
		c.SavedUser = u.Public()
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
