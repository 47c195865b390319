package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/token/repositories.go -package=mocks . HistoryRepository,StateLoader

type HistoryRepository interface {
	FetchAccountHistory(ctx context.Context, account Address, limit int) ([]Event, error)
}

type StateLoader interface {
	LoadState(ctx context.Context) (Snapshot, error)
}

type AccountInfo struct {
	Account   Address
	Balance   uint64
	Inventory []Redemption
	History   []Event
}
