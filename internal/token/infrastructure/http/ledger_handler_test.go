package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tokenmocks "github.com/Lexv0lk/token-store/gen/mocks/token"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerHandler_Mutations(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		caller  domain.Address
		body    any
		handle  func(h *LedgerHandler) gin.HandlerFunc
		prepare func(t *testing.T, ledger *tokenmocks.MockLedgerService)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:   "mint",
			caller: testAdmin,
			body:   mintRequestBody{To: "alice", Amount: 100},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Mint },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Mint(gomock.Any(), testAdmin, testUser, uint64(100)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "mint by non administrator",
			caller: testUser,
			body:   mintRequestBody{To: "alice", Amount: 100},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Mint },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Mint(gomock.Any(), testUser, testUser, uint64(100)).
					Return(&domain.UnauthorizedError{Msg: "not administrator"})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "mint zero",
			caller: testAdmin,
			body:   mintRequestBody{To: "alice"},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Mint },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Mint(gomock.Any(), testAdmin, testUser, uint64(0)).
					Return(&domain.InvalidAmountError{Msg: "amount must be positive"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "mint without recipient",
			caller:         testAdmin,
			body:           map[string]any{"amount": 5},
			handle:         func(h *LedgerHandler) gin.HandlerFunc { return h.Mint },
			prepare:        func(t *testing.T, ledger *tokenmocks.MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "mint without caller",
			body:           mintRequestBody{To: "alice", Amount: 100},
			handle:         func(h *LedgerHandler) gin.HandlerFunc { return h.Mint },
			prepare:        func(t *testing.T, ledger *tokenmocks.MockLedgerService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "burn",
			caller: testUser,
			body:   burnRequestBody{Amount: 10},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Burn },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Burn(gomock.Any(), testUser, uint64(10)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "burn more than balance",
			caller: testUser,
			body:   burnRequestBody{Amount: 10},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Burn },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Burn(gomock.Any(), testUser, uint64(10)).
					Return(&domain.InsufficientBalanceError{Msg: "insufficient"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "burn from",
			caller: testAdmin,
			body:   burnFromRequestBody{From: "alice", Amount: 10},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.BurnFrom },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().BurnFrom(gomock.Any(), testAdmin, testUser, uint64(10)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "transfer",
			caller: testUser,
			body:   transferRequestBody{To: "bob", Amount: 10},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Transfer },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Transfer(gomock.Any(), testUser, domain.Address("bob"), uint64(10)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "transfer internal error",
			caller: testUser,
			body:   transferRequestBody{To: "bob", Amount: 10},
			handle: func(h *LedgerHandler) gin.HandlerFunc { return h.Transfer },
			prepare: func(t *testing.T, ledger *tokenmocks.MockLedgerService) {
				ledger.EXPECT().Transfer(gomock.Any(), testUser, domain.Address("bob"), uint64(10)).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ledger := tokenmocks.NewMockLedgerService(ctrl)
			tt.prepare(t, ledger)
			handler := NewLedgerHandler(ledger, tokenmocks.NewMockAccountInfoService(ctrl), logging.NopLogger)

			c, writer := newTestContext(t, http.MethodPost, tt.body, tt.caller, nil)
			tt.handle(handler)(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestLedgerHandler_Queries(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	t.Run("balance", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ledger := tokenmocks.NewMockLedgerService(ctrl)
		ledger.EXPECT().Balance(gomock.Any(), testUser).Return(uint64(1500000000000000000), nil)
		handler := NewLedgerHandler(ledger, tokenmocks.NewMockAccountInfoService(ctrl), logging.NopLogger)

		c, writer := newTestContext(t, http.MethodGet, nil, testUser, gin.Params{{Key: AccountKey, Value: "alice"}})
		handler.Balance(c)

		assert.Equal(t, http.StatusOK, writer.Code)
		assert.JSONEq(t, `{"account":"alice","balance":1500000000000000000,"tokens":"1.5"}`, writer.Body.String())
	})

	t.Run("supply", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ledger := tokenmocks.NewMockLedgerService(ctrl)
		ledger.EXPECT().Supply(gomock.Any()).Return(domain.Supply{Minted: 100, Burned: 20, Redeemed: 10}, nil)
		handler := NewLedgerHandler(ledger, tokenmocks.NewMockAccountInfoService(ctrl), logging.NopLogger)

		c, writer := newTestContext(t, http.MethodGet, nil, testUser, nil)
		handler.Supply(c)

		assert.Equal(t, http.StatusOK, writer.Code)

		var response supplyResponse
		require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
		assert.Equal(t, uint64(70), response.TotalSupply)
		assert.Equal(t, uint64(10), response.Redeemed)
	})
}

func TestLedgerHandler_GetInfo(t *testing.T) {
	t.Parallel()

	redeemedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	info := domain.AccountInfo{
		Account: testUser,
		Balance: 90,
		Inventory: []domain.Redemption{
			{ID: uuid.New(), Account: testUser, ItemID: 1, ItemName: "Test Item #1", Price: 10, RedeemedAt: redeemedAt},
		},
		History: []domain.Event{
			{ID: uuid.New(), Kind: domain.EventRedeemed, Account: testUser, ItemID: 1, ItemName: "Test Item #1", Amount: 10, OccurredAt: redeemedAt},
			{ID: uuid.New(), Kind: domain.EventMinted, Account: testUser, Amount: 100, OccurredAt: redeemedAt},
		},
	}

	type testCase struct {
		name    string
		caller  domain.Address
		prepare func(t *testing.T, accountInfo *tokenmocks.MockAccountInfoService)

		expectedStatus  int
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:   "successful get info",
			caller: testUser,
			prepare: func(t *testing.T, accountInfo *tokenmocks.MockAccountInfoService) {
				accountInfo.EXPECT().GetAccountInfo(gomock.Any(), testUser).Return(info, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response accountInfoResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
				assert.Equal(t, uint64(90), response.Balance)
				assert.Len(t, response.Inventory, 1)
				assert.Equal(t, "Test Item #1", response.Inventory[0].ItemName)
				assert.Len(t, response.History, 2)
				assert.Equal(t, "redeemed", response.History[0].Kind)
			},
		},
		{
			name:   "history unavailable",
			caller: testUser,
			prepare: func(t *testing.T, accountInfo *tokenmocks.MockAccountInfoService) {
				accountInfo.EXPECT().GetAccountInfo(gomock.Any(), testUser).Return(domain.AccountInfo{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing caller",
			prepare:        func(t *testing.T, accountInfo *tokenmocks.MockAccountInfoService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			accountInfo := tokenmocks.NewMockAccountInfoService(ctrl)
			tt.prepare(t, accountInfo)
			handler := NewLedgerHandler(tokenmocks.NewMockLedgerService(ctrl), accountInfo, logging.NopLogger)

			c, writer := newTestContext(t, http.MethodGet, nil, tt.caller, nil)
			handler.GetInfo(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
