package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRedeemPolicy(t *testing.T) {
	t.Parallel()

	policy, err := ParseRedeemPolicy("burn")
	require.NoError(t, err)
	assert.Equal(t, RedeemBurn, policy)

	policy, err = ParseRedeemPolicy("credit-admin")
	require.NoError(t, err)
	assert.Equal(t, RedeemCreditAdministrator, policy)

	_, err = ParseRedeemPolicy("donate")
	assert.ErrorIs(t, err, &InvalidArgumentsError{})
}

func TestRedemptionEngine_Redeem(t *testing.T) {
	t.Parallel()

	redeemedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		policy  RedeemPolicy
		balance uint64
		itemID  uint64

		expectedCaller uint64
		expectedAdmin  uint64
		expectedSupply Supply
		expectedErr    error
	}

	tests := []testCase{
		{
			name:           "burn policy",
			policy:         RedeemBurn,
			balance:        1000,
			itemID:         1,
			expectedCaller: 990,
			expectedSupply: Supply{Minted: 1000, Redeemed: 10},
		},
		{
			name:           "credit administrator policy",
			policy:         RedeemCreditAdministrator,
			balance:        1000,
			itemID:         2,
			expectedCaller: 980,
			expectedAdmin:  20,
			expectedSupply: Supply{Minted: 1000},
		},
		{
			name:           "exact balance",
			policy:         RedeemBurn,
			balance:        30,
			itemID:         3,
			expectedCaller: 0,
			expectedSupply: Supply{Minted: 30, Redeemed: 30},
		},
		{
			name:           "insufficient balance",
			policy:         RedeemBurn,
			balance:        29,
			itemID:         3,
			expectedCaller: 29,
			expectedSupply: Supply{Minted: 29},
			expectedErr:    &InsufficientBalanceError{},
		},
		{
			name:           "unknown item",
			policy:         RedeemCreditAdministrator,
			balance:        100,
			itemID:         7,
			expectedCaller: 100,
			expectedSupply: Supply{Minted: 100},
			expectedErr:    &ItemNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := newTestCatalog(t)
			ledger := NewLedger()
			require.NoError(t, ledger.Mint("player", tt.balance))

			engine := NewRedemptionEngine(catalog, ledger, tt.policy, "owner")
			id := uuid.New()

			redemption, err := engine.Redeem("player", tt.itemID, id, redeemedAt)

			assert.Equal(t, tt.expectedCaller, ledger.BalanceOf("player"))
			assert.Equal(t, tt.expectedAdmin, ledger.BalanceOf("owner"))
			assert.Equal(t, tt.expectedSupply, ledger.Supply())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, engine.Inventory("player"))
				return
			}

			require.NoError(t, err)
			item, _ := catalog.Get(tt.itemID)
			expected := Redemption{
				ID:         id,
				Account:    "player",
				ItemID:     item.ID,
				ItemName:   item.Name,
				Price:      item.Price,
				RedeemedAt: redeemedAt,
			}
			assert.Equal(t, expected, redemption)
			assert.Equal(t, []Redemption{expected}, engine.Inventory("player"))
		})
	}
}

func TestRedemptionEngine_InventoryIsCopied(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	require.NoError(t, ledger.Mint("player", 100))
	engine := NewRedemptionEngine(newTestCatalog(t), ledger, RedeemBurn, "owner")

	_, err := engine.Redeem("player", 1, uuid.New(), time.Now())
	require.NoError(t, err)

	inventory := engine.Inventory("player")
	inventory[0].ItemName = "tampered"

	assert.Equal(t, "Test Item #1", engine.Inventory("player")[0].ItemName)
}
