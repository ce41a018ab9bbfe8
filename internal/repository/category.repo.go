package repository

import (
	"context"
	"errors"
	"fmt"

	"cardlink-backend/internal/domain"
	"cardlink-backend/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CategoryFilter narrows and orders the category list.
type CategoryFilter struct {
	Type    string
	Search  string
	Ordering string // id | category_name | type, "-" prefix for descending
}

func (f CategoryFilter) orderClause() string {
	col := "id"
	dir := "ASC"
	ord := f.Ordering
	if len(ord) > 0 && ord[0] == '-' {
		dir = "DESC"
		ord = ord[1:]
	}
	switch ord {
	case "category_name", "type", "id":
		col = ord
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

func (r *CategoryRepository) List(ctx context.Context, filter CategoryFilter) ([]*domain.Category, error) {
	q := `SELECT id, icon, category_name, type FROM categories WHERE 1=1`
	args := []interface{}{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		q += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		q += fmt.Sprintf(" AND (category_name ILIKE $%d OR type ILIKE $%d)", len(args), len(args))
	}
	q += " " + filter.orderClause()

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*domain.Category
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Icon, &c.CategoryName, &c.Type); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.db.QueryRow(ctx,
		`SELECT id, icon, category_name, type FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Icon, &c.CategoryName, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (icon, category_name, type)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Icon, c.CategoryName, c.Type).Scan(&c.ID)
	if xerrors.IsUniqueViolation(err) {
		return xerrors.ErrCategoryExists
	}
	return err
}
