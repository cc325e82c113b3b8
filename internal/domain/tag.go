package domain

import "context"

// Tag represents a named tag owned by a store. Tag names are unique across all stores.
// swagger:model Tag
type Tag struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	StoreID int64   `json:"store_id"`
	Items   []*Item `json:"items,omitempty"`
}

// TagRepository defines storage for tags and item–tag links.
type TagRepository interface {
	// Create inserts the tag. Returns ErrDuplicateTagName or ErrStoreNotFound.
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id int64) (*Tag, error)
	ListByStoreID(ctx context.Context, storeID int64) ([]*Tag, error)
	ListByItemID(ctx context.Context, itemID int64) ([]*Tag, error)
	// Delete returns ErrTagInUse while the tag is still linked to an item.
	Delete(ctx context.Context, id int64) error
	// LinkItem adds the (item, tag) pair. Returns ErrTagAlreadyLinked if it exists.
	LinkItem(ctx context.Context, itemID, tagID int64) error
	// UnlinkItem removes the pair. Returns ErrLinkNotFound if absent.
	UnlinkItem(ctx context.Context, itemID, tagID int64) error
}

// TagService defines the business logic for tags.
type TagService interface {
	Create(ctx context.Context, storeID int64, name string) (*Tag, error)
	Get(ctx context.Context, id int64) (*Tag, error)
	ListByStore(ctx context.Context, storeID int64) ([]*Tag, error)
	Delete(ctx context.Context, id int64) error
	LinkItem(ctx context.Context, itemID, tagID int64) (*Tag, error)
	UnlinkItem(ctx context.Context, itemID, tagID int64) error
}
