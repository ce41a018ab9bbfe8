package repository

import (
	"context"

	"cardlink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ThemeRepository struct {
	db *pgxpool.Pool
}

func NewThemeRepository(db *pgxpool.Pool) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// GetOrCreate returns the user's theme, inserting one with default colors
// on first access. The ON CONFLICT path covers concurrent first fetches.
func (r *ThemeRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Theme, error) {
	t := &domain.Theme{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO themes (user_id, background_color, font_color)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, background_image, background_color, font_color
	`, userID, domain.DefaultBackgroundColor, domain.DefaultFontColor).Scan(
		&t.ID, &t.UserID, &t.BackgroundImage, &t.BackgroundColor, &t.FontColor)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ThemeRepository) Update(ctx context.Context, t *domain.Theme) error {
	return r.db.QueryRow(ctx, `
		UPDATE themes
		SET background_image = $2, background_color = $3, font_color = $4
		WHERE user_id = $1
		RETURNING id
	`, t.UserID, t.BackgroundImage, t.BackgroundColor, t.FontColor).Scan(&t.ID)
}
