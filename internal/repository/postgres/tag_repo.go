package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storesapi/internal/domain"
)

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO tags (name, store_id) VALUES ($1, $2) RETURNING id`,
		tag.Name, tag.StoreID,
	).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTagName
		}
		if _, ok := foreignKeyConstraint(err); ok {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, store_id FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name, &tag.StoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("query tag: %w", err)
	}
	return &tag, nil
}

func (r *tagRepository) ListByStoreID(ctx context.Context, storeID int64) ([]*domain.Tag, error) {
	return r.list(ctx, `SELECT id, name, store_id FROM tags WHERE store_id = $1 ORDER BY name`, storeID)
}

func (r *tagRepository) ListByItemID(ctx context.Context, itemID int64) ([]*domain.Tag, error) {
	return r.list(ctx,
		`SELECT t.id, t.name, t.store_id FROM tags t
		 JOIN items_tags it ON it.tag_id = t.id
		 WHERE it.item_id = $1
		 ORDER BY t.name`, itemID)
}

func (r *tagRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Tag, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.StoreID); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete fails with ErrTagInUse while items_tags still references the tag.
// Delete removes an unlinked tag. The tag row is locked first so a concurrent link
// either commits before the check or fails its foreign key after the delete.
func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM tags WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTagNotFound
		}
		return fmt.Errorf("lock tag: %w", err)
	}

	var linked bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM items_tags WHERE tag_id = $1)`, id).Scan(&linked)
	if err != nil {
		return fmt.Errorf("query tag links: %w", err)
	}
	if linked {
		return domain.ErrTagInUse
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *tagRepository) LinkItem(ctx context.Context, itemID, tagID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var storeID int64
	err = tx.QueryRowContext(ctx, `SELECT store_id FROM items WHERE id = $1`, itemID).Scan(&storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("query item: %w", err)
	}
	if err := linkInTx(ctx, tx, itemID, storeID, tagID, false); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *tagRepository) UnlinkItem(ctx context.Context, itemID, tagID int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM items_tags WHERE item_id = $1 AND tag_id = $2`, itemID, tagID)
	if err != nil {
		return fmt.Errorf("delete item tag: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
