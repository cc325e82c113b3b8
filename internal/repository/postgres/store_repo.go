package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storesapi/internal/domain"
)

type storeRepository struct {
	DB *sql.DB
}

// NewStoreRepository returns a domain.StoreRepository implemented with Postgres.
func NewStoreRepository(db *sql.DB) domain.StoreRepository {
	return &storeRepository{DB: db}
}

func (r *storeRepository) Create(ctx context.Context, s *domain.Store) error {
	err := r.DB.QueryRowContext(ctx, `INSERT INTO stores (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStoreName
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	s := &domain.Store{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM stores WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("query store: %w", err)
	}
	return s, nil
}

func (r *storeRepository) List(ctx context.Context) ([]*domain.Store, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		s := &domain.Store{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// Delete relies on ON DELETE CASCADE for items, tags and items_tags.
func (r *storeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}
