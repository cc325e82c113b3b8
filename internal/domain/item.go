package domain

import "context"

// Item belongs to exactly one store and holds zero or more tags of that store.
// swagger:model Item
type Item struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	StoreID int64   `json:"store_id"`
	Tags    []*Tag  `json:"tags,omitempty"`
}

// ItemUpdate is the replacement payload for PUT /item/{id}.
// StoreID is only consulted when the item does not exist yet.
type ItemUpdate struct {
	Name    string
	Price   float64
	StoreID *int64
}

// ItemRepository defines the interface for item storage
type ItemRepository interface {
	// Create inserts the item and links it to tagIDs in a single transaction.
	Create(ctx context.Context, item *Item, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	ListByStoreID(ctx context.Context, storeID int64) ([]*Item, error)
	ListByTagID(ctx context.Context, tagID int64) ([]*Item, error)
	// Upsert overwrites name and price of item id, or inserts a new item at id.
	// created reports which of the two happened.
	Upsert(ctx context.Context, id int64, update ItemUpdate) (item *Item, created bool, err error)
	Delete(ctx context.Context, id int64) error
}

// ItemService defines the business logic for items.
type ItemService interface {
	Create(ctx context.Context, name string, price float64, storeID int64, tagIDs []int64) (*Item, error)
	// Get returns the item with its tags loaded.
	Get(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	Put(ctx context.Context, id int64, update ItemUpdate) (*Item, error)
	Delete(ctx context.Context, id int64) error
}
