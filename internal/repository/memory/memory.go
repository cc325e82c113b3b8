// Package memory implements the domain repositories over in-process maps, enforcing the
// same uniqueness, foreign key and cascade rules as migrations/001_init.sql. Used by tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"storesapi/internal/domain"
)

type linkKey struct{ itemID, tagID int64 }

// DB is the shared state behind every repository in this package.
type DB struct {
	mu sync.Mutex

	stores map[int64]domain.Store
	items  map[int64]domain.Item
	tags   map[int64]domain.Tag
	links  map[linkKey]struct{}
	users  map[int64]domain.User

	nextStore, nextItem, nextTag, nextUser int64

	// Err, when set, is returned by every operation to simulate a storage failure.
	Err error
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		stores: make(map[int64]domain.Store),
		items:  make(map[int64]domain.Item),
		tags:   make(map[int64]domain.Tag),
		links:  make(map[linkKey]struct{}),
		users:  make(map[int64]domain.User),
	}
}

func (db *DB) lock() (func(), error) {
	db.mu.Lock()
	if db.Err != nil {
		db.mu.Unlock()
		return nil, fmt.Errorf("memory: %w", db.Err)
	}
	return db.mu.Unlock, nil
}

// StoreRepository

type storeRepository struct{ db *DB }

// NewStoreRepository returns a domain.StoreRepository backed by db. Deleting a store removes its items, tags and links.
func NewStoreRepository(db *DB) domain.StoreRepository { return &storeRepository{db: db} }

func (r *storeRepository) Create(_ context.Context, s *domain.Store) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	for _, existing := range r.db.stores {
		if existing.Name == s.Name {
			return domain.ErrDuplicateStoreName
		}
	}
	r.db.nextStore++
	s.ID = r.db.nextStore
	r.db.stores[s.ID] = domain.Store{ID: s.ID, Name: s.Name}
	return nil
}

func (r *storeRepository) GetByID(_ context.Context, id int64) (*domain.Store, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	s, ok := r.db.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return &s, nil
}

func (r *storeRepository) List(_ context.Context) ([]*domain.Store, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]*domain.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *storeRepository) Delete(_ context.Context, id int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.db.stores[id]; !ok {
		return domain.ErrStoreNotFound
	}
	for itemID, it := range r.db.items {
		if it.StoreID == id {
			r.db.deleteItemLocked(itemID)
		}
	}
	for tagID, tag := range r.db.tags {
		if tag.StoreID == id {
			delete(r.db.tags, tagID)
		}
	}
	delete(r.db.stores, id)
	return nil
}

// ItemRepository

type itemRepository struct{ db *DB }

// NewItemRepository returns a domain.ItemRepository backed by db.
func NewItemRepository(db *DB) domain.ItemRepository { return &itemRepository{db: db} }

func (db *DB) deleteItemLocked(id int64) {
	delete(db.items, id)
	for k := range db.links {
		if k.itemID == id {
			delete(db.links, k)
		}
	}
}

func (db *DB) checkTagLocked(storeID, tagID int64) error {
	tag, ok := db.tags[tagID]
	if !ok {
		return domain.ErrTagNotFound
	}
	if tag.StoreID != storeID {
		return domain.ErrStoreMismatch
	}
	return nil
}

func (r *itemRepository) Create(_ context.Context, it *domain.Item, tagIDs []int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.db.stores[it.StoreID]; !ok {
		return domain.ErrStoreNotFound
	}
	if it.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	for _, tagID := range tagIDs {
		if err := r.db.checkTagLocked(it.StoreID, tagID); err != nil {
			return err
		}
	}
	r.db.nextItem++
	it.ID = r.db.nextItem
	r.db.items[it.ID] = domain.Item{ID: it.ID, Name: it.Name, Price: it.Price, StoreID: it.StoreID}
	for _, tagID := range tagIDs {
		r.db.links[linkKey{it.ID, tagID}] = struct{}{}
	}
	return nil
}

func (r *itemRepository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (r *itemRepository) filter(keep func(domain.Item) bool) ([]*domain.Item, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]*domain.Item, 0)
	for _, it := range r.db.items {
		if keep(it) {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *itemRepository) List(_ context.Context) ([]*domain.Item, error) {
	return r.filter(func(domain.Item) bool { return true })
}

func (r *itemRepository) ListByStoreID(_ context.Context, storeID int64) ([]*domain.Item, error) {
	return r.filter(func(it domain.Item) bool { return it.StoreID == storeID })
}

// keep runs with db.mu held, so it may read links directly.
func (r *itemRepository) ListByTagID(_ context.Context, tagID int64) ([]*domain.Item, error) {
	return r.filter(func(it domain.Item) bool {
		_, ok := r.db.links[linkKey{it.ID, tagID}]
		return ok
	})
}

func (r *itemRepository) Upsert(_ context.Context, id int64, u domain.ItemUpdate) (*domain.Item, bool, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, false, err
	}
	defer unlock()
	if it, ok := r.db.items[id]; ok {
		it.Name, it.Price = u.Name, u.Price
		r.db.items[id] = it
		return &it, false, nil
	}
	if u.StoreID == nil {
		return nil, false, fmt.Errorf("%w: store_id is required to create an item", domain.ErrValidation)
	}
	if _, ok := r.db.stores[*u.StoreID]; !ok {
		return nil, false, domain.ErrStoreNotFound
	}
	it := domain.Item{ID: id, Name: u.Name, Price: u.Price, StoreID: *u.StoreID}
	r.db.items[id] = it
	if id > r.db.nextItem {
		r.db.nextItem = id
	}
	return &it, true, nil
}

func (r *itemRepository) Delete(_ context.Context, id int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.db.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	r.db.deleteItemLocked(id)
	return nil
}

// TagRepository

type tagRepository struct{ db *DB }

// NewTagRepository returns a domain.TagRepository backed by db. Deleting a linked tag fails with domain.ErrTagInUse.
func NewTagRepository(db *DB) domain.TagRepository { return &tagRepository{db: db} }

func (r *tagRepository) Create(_ context.Context, tag *domain.Tag) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	for _, existing := range r.db.tags {
		if existing.Name == tag.Name {
			return domain.ErrDuplicateTagName
		}
	}
	if _, ok := r.db.stores[tag.StoreID]; !ok {
		return domain.ErrStoreNotFound
	}
	r.db.nextTag++
	tag.ID = r.db.nextTag
	r.db.tags[tag.ID] = domain.Tag{ID: tag.ID, Name: tag.Name, StoreID: tag.StoreID}
	return nil
}

func (r *tagRepository) GetByID(_ context.Context, id int64) (*domain.Tag, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	tag, ok := r.db.tags[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	return &tag, nil
}

func (r *tagRepository) filter(keep func(domain.Tag) bool) ([]*domain.Tag, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	out := make([]*domain.Tag, 0)
	for _, tag := range r.db.tags {
		if keep(tag) {
			tag := tag
			out = append(out, &tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *tagRepository) ListByStoreID(_ context.Context, storeID int64) ([]*domain.Tag, error) {
	return r.filter(func(tag domain.Tag) bool { return tag.StoreID == storeID })
}

func (r *tagRepository) ListByItemID(_ context.Context, itemID int64) ([]*domain.Tag, error) {
	return r.filter(func(tag domain.Tag) bool {
		_, ok := r.db.links[linkKey{itemID, tag.ID}]
		return ok
	})
}

func (r *tagRepository) Delete(_ context.Context, id int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.db.tags[id]; !ok {
		return domain.ErrTagNotFound
	}
	for k := range r.db.links {
		if k.tagID == id {
			return domain.ErrTagInUse
		}
	}
	delete(r.db.tags, id)
	return nil
}

func (r *tagRepository) LinkItem(_ context.Context, itemID, tagID int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	it, ok := r.db.items[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	if err := r.db.checkTagLocked(it.StoreID, tagID); err != nil {
		return err
	}
	key := linkKey{itemID, tagID}
	if _, ok := r.db.links[key]; ok {
		return domain.ErrTagAlreadyLinked
	}
	r.db.links[key] = struct{}{}
	return nil
}

func (r *tagRepository) UnlinkItem(_ context.Context, itemID, tagID int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	key := linkKey{itemID, tagID}
	if _, ok := r.db.links[key]; !ok {
		return domain.ErrLinkNotFound
	}
	delete(r.db.links, key)
	return nil
}

// UserRepository

type userRepository struct{ db *DB }

// NewUserRepository returns a domain.UserRepository backed by db.
func NewUserRepository(db *DB) domain.UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(_ context.Context, u *domain.User) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	for _, existing := range r.db.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.db.nextUser++
	u.ID = r.db.nextUser
	r.db.users[u.ID] = *u
	return nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	for _, u := range r.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	unlock, err := r.db.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) SetAdmin(_ context.Context, id int64, isAdmin bool) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	u, ok := r.db.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsAdmin = isAdmin
	r.db.users[id] = u
	return nil
}

func (r *userRepository) Delete(_ context.Context, id int64) error {
	unlock, err := r.db.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := r.db.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.db.users, id)
	return nil
}
