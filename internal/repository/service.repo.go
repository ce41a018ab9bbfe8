package repository

import (
	"context"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO services (user_id, name, picture, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, s.UserID, s.Name, s.Picture, s.Description).Scan(&s.ID, &s.CreatedAt)
}

func (r *ServiceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, picture, description, created_at
		FROM services
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		s := &domain.Service{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Picture, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// Delete removes a service only when it belongs to userID.
func (r *ServiceRepository) Delete(ctx context.Context, userID string, serviceID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM services WHERE id = $1 AND user_id = $2`, serviceID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
