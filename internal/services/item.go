package services

import (
	"context"
	"fmt"
	"math"

	"storesapi/internal/domain"
)

type itemService struct {
	itemRepo domain.ItemRepository
	tagRepo  domain.TagRepository
}

// NewItemService creates an ItemService with the given repositories.
func NewItemService(itemRepo domain.ItemRepository, tagRepo domain.TagRepository) domain.ItemService {
	return &itemService{itemRepo: itemRepo, tagRepo: tagRepo}
}

// maxPrice is the largest value the NUMERIC(10,2) price column holds.
const maxPrice = 99999999.99

// normalizePrice rounds price to cents, the precision the price column stores.
func normalizePrice(price float64) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price must be a number", domain.ErrValidation)
	}
	price = math.Round(price*100) / 100
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if price > maxPrice {
		return 0, fmt.Errorf("%w: price must not exceed %.2f", domain.ErrValidation, maxPrice)
	}
	return price, nil
}

func (s *itemService) Create(ctx context.Context, name string, price float64, storeID int64, tagIDs []int64) (*domain.Item, error) {
	name, err := validateName("name", name)
	if err != nil {
		return nil, err
	}
	price, err = normalizePrice(price)
	if err != nil {
		return nil, err
	}
	item := &domain.Item{Name: name, Price: price, StoreID: storeID}
	if err := s.itemRepo.Create(ctx, item, uniqueIDs(tagIDs)); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	if len(tagIDs) > 0 {
		if item.Tags, err = s.tagRepo.ListByItemID(ctx, item.ID); err != nil {
			return nil, fmt.Errorf("failed to list item tags: %w", err)
		}
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item.Tags, err = s.tagRepo.ListByItemID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list item tags: %w", err)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Put replaces name and price of an existing item, or creates the item at id.
func (s *itemService) Put(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: item id must be positive", domain.ErrValidation)
	}
	name, err := validateName("name", update.Name)
	if err != nil {
		return nil, err
	}
	if update.Price, err = normalizePrice(update.Price); err != nil {
		return nil, err
	}
	update.Name = name
	item, _, err := s.itemRepo.Upsert(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
