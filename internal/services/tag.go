package services

import (
	"context"
	"fmt"

	"storesapi/internal/domain"
)

type tagService struct {
	tagRepo   domain.TagRepository
	storeRepo domain.StoreRepository
	itemRepo  domain.ItemRepository
}

// NewTagService creates a TagService with the given repositories.
func NewTagService(tagRepo domain.TagRepository, storeRepo domain.StoreRepository, itemRepo domain.ItemRepository) domain.TagService {
	return &tagService{tagRepo: tagRepo, storeRepo: storeRepo, itemRepo: itemRepo}
}

func (s *tagService) Create(ctx context.Context, storeID int64, name string) (*domain.Tag, error) {
	name, err := validateName("name", name)
	if err != nil {
		return nil, err
	}
	tag := &domain.Tag{Name: name, StoreID: storeID}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	if tag.Items, err = s.itemRepo.ListByTagID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to list tag items: %w", err)
	}
	return tag, nil
}

// ListByStore returns ErrStoreNotFound for an unknown store rather than an empty list.
func (s *tagService) ListByStore(ctx context.Context, storeID int64) ([]*domain.Tag, error) {
	if _, err := s.storeRepo.GetByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	tags, err := s.tagRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func (s *tagService) LinkItem(ctx context.Context, itemID, tagID int64) (*domain.Tag, error) {
	if err := s.tagRepo.LinkItem(ctx, itemID, tagID); err != nil {
		return nil, fmt.Errorf("failed to link tag: %w", err)
	}
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) UnlinkItem(ctx context.Context, itemID, tagID int64) error {
	if err := s.tagRepo.UnlinkItem(ctx, itemID, tagID); err != nil {
		return fmt.Errorf("failed to unlink tag: %w", err)
	}
	return nil
}
