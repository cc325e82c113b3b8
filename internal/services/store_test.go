package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesapi/internal/domain"
	"storesapi/internal/repository/memory"
)

type fixture struct {
	db     *memory.DB
	stores domain.StoreService
	items  domain.ItemService
	tags   domain.TagService
}

func newFixture() *fixture {
	db := memory.New()
	storeRepo := memory.NewStoreRepository(db)
	itemRepo := memory.NewItemRepository(db)
	tagRepo := memory.NewTagRepository(db)
	return &fixture{
		db:     db,
		stores: NewStoreService(storeRepo, itemRepo, tagRepo),
		items:  NewItemService(itemRepo, tagRepo),
		tags:   NewTagService(tagRepo, storeRepo, itemRepo),
	}
}

func TestStoreService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"trims whitespace", "  Corner Shop ", "Corner Shop", nil},
		{"empty name", "   ", "", domain.ErrValidation},
		{"80 characters", strings.Repeat("a", 80), strings.Repeat("a", 80), nil},
		{"81 characters", strings.Repeat("b", 81), "", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			store, err := f.stores.Create(ctx, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Name)
			assert.NotZero(t, store.ID)
		})
	}
}

func TestStoreService_Create_duplicateName(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.stores.Create(ctx, "Corner Shop")
	require.NoError(t, err)

	_, err = f.stores.Create(ctx, "Corner Shop")
	require.ErrorIs(t, err, domain.ErrDuplicateStoreName)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStoreService_Get_includesItemsAndTags(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	store, err := f.stores.Create(ctx, "Corner Shop")
	require.NoError(t, err)
	_, err = f.items.Create(ctx, "chair", 15.99, store.ID, nil)
	require.NoError(t, err)
	_, err = f.tags.Create(ctx, store.ID, "furniture")
	require.NoError(t, err)

	got, err := f.stores.Get(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "chair", got.Items[0].Name)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "furniture", got.Tags[0].Name)
}

func TestStoreService_Get_notFound(t *testing.T) {
	f := newFixture()
	_, err := f.stores.Get(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreService_Delete_cascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	store, err := f.stores.Create(ctx, "Corner Shop")
	require.NoError(t, err)
	tag, err := f.tags.Create(ctx, store.ID, "furniture")
	require.NoError(t, err)
	item, err := f.items.Create(ctx, "chair", 15.99, store.ID, []int64{tag.ID})
	require.NoError(t, err)

	require.NoError(t, f.stores.Delete(ctx, store.ID))

	_, err = f.items.Get(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = f.tags.Get(ctx, tag.ID)
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
	assert.ErrorIs(t, f.stores.Delete(ctx, store.ID), domain.ErrStoreNotFound)
}

func TestStoreService_List_storageError(t *testing.T) {
	f := newFixture()
	boom := errors.New("connection reset")
	f.db.Err = boom

	_, err := f.stores.List(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to list stores")
}
