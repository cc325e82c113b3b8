package domain

import "context"

// Store owns items and tags. Deleting a store deletes both.
// swagger:model Store
type Store struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Items []*Item `json:"items,omitempty"`
	Tags  []*Tag  `json:"tags,omitempty"`
}

// StoreRepository defines the interface for store storage
type StoreRepository interface {
	// Create inserts the store and sets its ID. Returns ErrDuplicateStoreName on a name clash.
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id int64) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
	// Delete removes the store together with its items, tags and their links.
	Delete(ctx context.Context, id int64) error
}

// StoreService defines the business logic for stores.
type StoreService interface {
	Create(ctx context.Context, name string) (*Store, error)
	// Get returns the store with its items and tags loaded.
	Get(ctx context.Context, id int64) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Delete(ctx context.Context, id int64) error
}
