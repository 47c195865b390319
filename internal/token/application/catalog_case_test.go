package application

import (
	"context"
	"testing"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCase_Mutations(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		executeFn func(ctx context.Context, cc *CatalogCase) error

		expectedItems []domain.Item
		expectedErr   error
	}

	tests := []testCase{
		{
			name: "add new item",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.AddItem(ctx, testAdmin, domain.Item{ID: 2, Name: "Sticker", Price: 5})
			},
			expectedItems: []domain.Item{
				{ID: 1, Name: "Test Item #1", Price: 10},
				{ID: 2, Name: "Sticker", Price: 5},
			},
		},
		{
			name: "add overwrites existing item",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.AddItem(ctx, testAdmin, domain.Item{ID: 1, Name: "Renamed", Price: 15})
			},
			expectedItems: []domain.Item{{ID: 1, Name: "Renamed", Price: 15}},
		},
		{
			name: "add by non administrator",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.AddItem(ctx, testUser, domain.Item{ID: 2, Name: "Sticker", Price: 5})
			},
			expectedItems: []domain.Item{{ID: 1, Name: "Test Item #1", Price: 10}},
			expectedErr:   &domain.UnauthorizedError{},
		},
		{
			name: "update cost",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.UpdateItemCost(ctx, testAdmin, 1, 20)
			},
			expectedItems: []domain.Item{{ID: 1, Name: "Test Item #1", Price: 20}},
		},
		{
			name: "update cost of unknown item",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.UpdateItemCost(ctx, testAdmin, 9, 20)
			},
			expectedItems: []domain.Item{{ID: 1, Name: "Test Item #1", Price: 10}},
			expectedErr:   &domain.ItemNotFoundError{},
		},
		{
			name: "remove item",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.RemoveItem(ctx, testAdmin, 1)
			},
			expectedItems: []domain.Item{},
		},
		{
			name: "remove by non administrator",
			executeFn: func(ctx context.Context, cc *CatalogCase) error {
				return cc.RemoveItem(ctx, testUser, 1)
			},
			expectedItems: []domain.Item{{ID: 1, Name: "Test Item #1", Price: 10}},
			expectedErr:   &domain.UnauthorizedError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			catalogCase := NewCatalogCase(newTestToken(t), logging.NopLogger)
			require.NoError(t, catalogCase.AddItem(ctx, testAdmin, domain.Item{ID: 1, Name: "Test Item #1", Price: 10}))

			err := tt.executeFn(ctx, catalogCase)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			items, err := catalogCase.ListItems(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expectedItems, items)
		})
	}
}

func TestCatalogCase_GetItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalogCase := NewCatalogCase(newTestToken(t), logging.NopLogger)
	require.NoError(t, catalogCase.AddItem(ctx, testAdmin, domain.Item{ID: 1, Name: "Test Item #1", Price: 10}))

	item, err := catalogCase.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: 1, Name: "Test Item #1", Price: 10}, item)

	item, err = catalogCase.GetItem(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Item{}, item)
}

func TestCatalogCase_DisplayItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalogCase := NewCatalogCase(newTestToken(t), logging.NopLogger)

	display, err := catalogCase.DisplayItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", display)

	require.NoError(t, catalogCase.AddItem(ctx, testAdmin, domain.Item{ID: 2, Name: "Test Item #2", Price: 20}))
	require.NoError(t, catalogCase.AddItem(ctx, testAdmin, domain.Item{ID: 1, Name: "Test Item #1", Price: 10}))

	display, err = catalogCase.DisplayItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "\n1: Test Item #1 for 10 Tokens\n2: Test Item #2 for 20 Tokens", display)
}
