package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storesapi/internal/domain"
)

const itemColumns = `id, name, price, store_id`

type itemRepository struct {
	DB *sql.DB
}

// NewItemRepository returns a domain.ItemRepository implemented with Postgres.
func NewItemRepository(db *sql.DB) domain.ItemRepository {
	return &itemRepository{DB: db}
}

func scanItem(s scanner) (*domain.Item, error) {
	it := &domain.Item{}
	if err := s.Scan(&it.ID, &it.Name, &it.Price, &it.StoreID); err != nil {
		return nil, err
	}
	return it, nil
}

// itemWriteError maps constraint violations raised by INSERT/UPDATE on items.
func itemWriteError(op string, err error) error {
	if c, ok := foreignKeyConstraint(err); ok {
		switch c {
		case constraintItemsTagsTagFK:
			return domain.ErrTagNotFound
		case constraintItemsTagsItemFK:
			return domain.ErrItemNotFound
		default:
			return domain.ErrStoreNotFound
		}
	}
	if isCheckViolation(err) {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if isNumericOutOfRange(err) {
		return fmt.Errorf("%w: price is out of range", domain.ErrValidation)
	}
	if perr, ok := pqError(err, codeUniqueViolation); ok && perr.Constraint == constraintItemsPkey {
		return fmt.Errorf("%w: item id already exists", domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item, tagIDs []int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO items (name, price, store_id) VALUES ($1, $2, $3) RETURNING id`,
		it.Name, it.Price, it.StoreID,
	).Scan(&it.ID)
	if err != nil {
		return itemWriteError("insert item", err)
	}

	for _, tagID := range tagIDs {
		if err := linkInTx(ctx, tx, it.ID, it.StoreID, tagID, true); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// linkInTx checks that tagID exists and belongs to storeID, then inserts the link.
// With ignoreDuplicate the insert is a no-op on an existing pair; otherwise it returns ErrTagAlreadyLinked.
func linkInTx(ctx context.Context, tx *sql.Tx, itemID, storeID, tagID int64, ignoreDuplicate bool) error {
	var tagStoreID int64
	err := tx.QueryRowContext(ctx, `SELECT store_id FROM tags WHERE id = $1`, tagID).Scan(&tagStoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTagNotFound
		}
		return fmt.Errorf("query tag: %w", err)
	}
	if tagStoreID != storeID {
		return domain.ErrStoreMismatch
	}

	query := `INSERT INTO items_tags (item_id, tag_id) VALUES ($1, $2)`
	if ignoreDuplicate {
		query += ` ON CONFLICT (item_id, tag_id) DO NOTHING`
	}
	if _, err := tx.ExecContext(ctx, query, itemID, tagID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagAlreadyLinked
		}
		return itemWriteError("insert item tag", err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it, err := scanItem(r.DB.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return it, nil
}

func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
}

func (r *itemRepository) ListByStoreID(ctx context.Context, storeID int64) ([]*domain.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items WHERE store_id = $1 ORDER BY id`, storeID)
}

func (r *itemRepository) ListByTagID(ctx context.Context, tagID int64) ([]*domain.Item, error) {
	return r.list(ctx,
		`SELECT i.id, i.name, i.price, i.store_id FROM items i
		 JOIN items_tags it ON it.item_id = i.id
		 WHERE it.tag_id = $1
		 ORDER BY i.id`, tagID)
}

func (r *itemRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Upsert locks the row if present so a concurrent PUT on the same id serializes behind it.
// Inserting at an explicit id advances the id sequence so later generated ids do not collide.
func (r *itemRepository) Upsert(ctx context.Context, id int64, u domain.ItemUpdate) (*domain.Item, bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM items WHERE id = $1 FOR UPDATE`, id).Scan(&existing)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("query item: %w", err)
	}
	found := err == nil

	var it *domain.Item
	if found {
		it, err = scanItem(tx.QueryRowContext(ctx,
			`UPDATE items SET name = $2, price = $3 WHERE id = $1 RETURNING `+itemColumns,
			id, u.Name, u.Price))
		if err != nil {
			return nil, false, itemWriteError("update item", err)
		}
	} else {
		if u.StoreID == nil {
			return nil, false, fmt.Errorf("%w: store_id is required to create an item", domain.ErrValidation)
		}
		it, err = scanItem(tx.QueryRowContext(ctx,
			`INSERT INTO items (id, name, price, store_id) VALUES ($1, $2, $3, $4) RETURNING `+itemColumns,
			id, u.Name, u.Price, *u.StoreID))
		if err != nil {
			return nil, false, itemWriteError("insert item", err)
		}
		if _, err := tx.ExecContext(ctx,
			`SELECT setval(pg_get_serial_sequence('items', 'id'), GREATEST((SELECT MAX(id) FROM items), 1))`); err != nil {
			return nil, false, fmt.Errorf("advance item sequence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}
	return it, !found, nil
}

// Delete removes the item; its items_tags rows go with it via ON DELETE CASCADE.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
