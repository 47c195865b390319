package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/token/services.go -package=mocks . LedgerService,CatalogService,RedemptionService,AccountInfoService

type LedgerService interface {
	Mint(ctx context.Context, caller, to Address, amount uint64) error
	Burn(ctx context.Context, caller Address, amount uint64) error
	BurnFrom(ctx context.Context, caller, from Address, amount uint64) error
	Transfer(ctx context.Context, caller, to Address, amount uint64) error
	Balance(ctx context.Context, account Address) (uint64, error)
	Supply(ctx context.Context) (Supply, error)
}

type CatalogService interface {
	AddItem(ctx context.Context, caller Address, item Item) error
	UpdateItemCost(ctx context.Context, caller Address, id, price uint64) error
	RemoveItem(ctx context.Context, caller Address, id uint64) error
	GetItem(ctx context.Context, id uint64) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	DisplayItems(ctx context.Context) (string, error)
}

type RedemptionService interface {
	Redeem(ctx context.Context, caller Address, itemID uint64) (Redemption, error)
}

type AccountInfoService interface {
	GetAccountInfo(ctx context.Context, account Address) (AccountInfo, error)
}
