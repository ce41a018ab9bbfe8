package repository

import (
	"context"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SocialRepository struct {
	db *pgxpool.Pool
}

func NewSocialRepository(db *pgxpool.Pool) *SocialRepository {
	return &SocialRepository{db: db}
}

func (r *SocialRepository) CreatePlatform(ctx context.Context, p *domain.SocialMediaPlatform) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO social_media_platforms (name, icon, data_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Name, p.Icon, p.DataType).Scan(&p.ID)
	if xerrors.IsUniqueViolation(err) {
		return xerrors.ErrPlatformExists
	}
	return err
}

func (r *SocialRepository) ListPlatforms(ctx context.Context) ([]*domain.SocialMediaPlatform, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, icon, data_type FROM social_media_platforms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platforms []*domain.SocialMediaPlatform
	for rows.Next() {
		p := &domain.SocialMediaPlatform{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Icon, &p.DataType); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

func (r *SocialRepository) PlatformExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM social_media_platforms WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (r *SocialRepository) CreateLink(ctx context.Context, l *domain.SocialMediaLink) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO social_media_links (user_id, platform_id, data)
		VALUES ($1, $2, $3)
		RETURNING id
	`, l.UserID, l.PlatformID, l.Data).Scan(&l.ID)
}

func (r *SocialRepository) ListLinksByUser(ctx context.Context, userID string) ([]*domain.SocialMediaLink, error) {
	rows, err := r.db.Query(ctx, `
		SELECT l.id, l.user_id, l.platform_id, l.data,
		       p.id, p.name, p.icon, p.data_type
		FROM social_media_links l
		JOIN social_media_platforms p ON p.id = l.platform_id
		WHERE l.user_id = $1
		ORDER BY l.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*domain.SocialMediaLink
	for rows.Next() {
		l := &domain.SocialMediaLink{}
		p := &domain.SocialMediaPlatform{}
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.PlatformID, &l.Data,
			&p.ID, &p.Name, &p.Icon, &p.DataType,
		); err != nil {
			return nil, err
		}
		l.Platform = p
		links = append(links, l)
	}
	return links, rows.Err()
}

// DeleteLink removes a link only when it belongs to userID.
func (r *SocialRepository) DeleteLink(ctx context.Context, userID string, linkID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM social_media_links WHERE id = $1 AND user_id = $2`, linkID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
