package services

import (
	"context"
	"fmt"
	"strings"

	"storesapi/internal/domain"
)

const maxNameLen = 80

type storeService struct {
	storeRepo domain.StoreRepository
	itemRepo  domain.ItemRepository
	tagRepo   domain.TagRepository
}

// NewStoreService creates a StoreService with the given repositories.
func NewStoreService(storeRepo domain.StoreRepository, itemRepo domain.ItemRepository, tagRepo domain.TagRepository) domain.StoreService {
	return &storeService{storeRepo: storeRepo, itemRepo: itemRepo, tagRepo: tagRepo}
}

// validateName trims name and checks it fits the 80 character columns.
func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	if len([]rune(name)) > maxNameLen {
		return "", fmt.Errorf("%w: %s must not exceed %d characters", domain.ErrValidation, field, maxNameLen)
	}
	return name, nil
}

func (s *storeService) Create(ctx context.Context, name string) (*domain.Store, error) {
	name, err := validateName("name", name)
	if err != nil {
		return nil, err
	}
	store := &domain.Store{Name: name}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

func (s *storeService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if store.Items, err = s.itemRepo.ListByStoreID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list store items: %w", err)
	}
	if store.Tags, err = s.tagRepo.ListByStoreID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list store tags: %w", err)
	}
	return store, nil
}

func (s *storeService) List(ctx context.Context) ([]*domain.Store, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

func (s *storeService) Delete(ctx context.Context, id int64) error {
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}
