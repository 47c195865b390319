package http

import (
	"time"

	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type balanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
	Tokens  string `json:"tokens"`
}

type supplyResponse struct {
	Minted      uint64 `json:"minted"`
	Burned      uint64 `json:"burned"`
	Redeemed    uint64 `json:"redeemed"`
	TotalSupply uint64 `json:"totalSupply"`
	Tokens      string `json:"tokens"`
}

type itemResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price uint64 `json:"price"`
}

type redemptionResponse struct {
	ID         string    `json:"id"`
	ItemID     uint64    `json:"itemId"`
	ItemName   string    `json:"itemName"`
	Price      uint64    `json:"price"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

type eventResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Account      string    `json:"account"`
	Counterparty string    `json:"counterparty,omitempty"`
	ItemID       uint64    `json:"itemId,omitempty"`
	ItemName     string    `json:"itemName,omitempty"`
	Amount       uint64    `json:"amount"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type accountInfoResponse struct {
	balanceResponse
	Inventory []redemptionResponse `json:"inventory"`
	History   []eventResponse      `json:"history"`
}

func newBalanceResponse(account domain.Address, balance uint64) balanceResponse {
	return balanceResponse{
		Account: string(account),
		Balance: balance,
		Tokens:  domain.FormatUnits(balance),
	}
}

func newSupplyResponse(supply domain.Supply) supplyResponse {
	return supplyResponse{
		Minted:      supply.Minted,
		Burned:      supply.Burned,
		Redeemed:    supply.Redeemed,
		TotalSupply: supply.Total(),
		Tokens:      domain.FormatUnits(supply.Total()),
	}
}

func newItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
	}
}

func newRedemptionResponse(redemption domain.Redemption) redemptionResponse {
	return redemptionResponse{
		ID:         redemption.ID.String(),
		ItemID:     redemption.ItemID,
		ItemName:   redemption.ItemName,
		Price:      redemption.Price,
		RedeemedAt: redemption.RedeemedAt,
	}
}

func newAccountInfoResponse(info domain.AccountInfo) accountInfoResponse {
	inventory := make([]redemptionResponse, 0, len(info.Inventory))
	for _, redemption := range info.Inventory {
		inventory = append(inventory, newRedemptionResponse(redemption))
	}

	history := make([]eventResponse, 0, len(info.History))
	for _, event := range info.History {
		history = append(history, eventResponse{
			ID:           event.ID.String(),
			Kind:         string(event.Kind),
			Account:      string(event.Account),
			Counterparty: string(event.Counterparty),
			ItemID:       event.ItemID,
			ItemName:     event.ItemName,
			Amount:       event.Amount,
			OccurredAt:   event.OccurredAt,
		})
	}

	return accountInfoResponse{
		balanceResponse: newBalanceResponse(info.Account, info.Balance),
		Inventory:       inventory,
		History:         history,
	}
}
