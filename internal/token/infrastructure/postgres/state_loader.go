package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type StateLoader struct {
	querier database.Querier
}

func NewStateLoader(querier database.Querier) *StateLoader {
	return &StateLoader{
		querier: querier,
	}
}

// LoadState reads the projected tables into a snapshot the token can restore from.
func (sl *StateLoader) LoadState(ctx context.Context) (domain.Snapshot, error) {
	supply, err := sl.loadSupply(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	balances, err := sl.loadBalances(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	items, err := sl.loadItems(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	redemptions, err := sl.loadRedemptions(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		Balances:    balances,
		Items:       items,
		Redemptions: redemptions,
		Supply:      supply,
	}, nil
}

func (sl *StateLoader) loadSupply(ctx context.Context) (domain.Supply, error) {
	supplySQL := `SELECT minted, burned, redeemed FROM supply WHERE id = 1`

	var supply domain.Supply
	err := sl.querier.QueryRow(ctx, supplySQL).Scan(&supply.Minted, &supply.Burned, &supply.Redeemed)
	if err != nil {
		return domain.Supply{}, fmt.Errorf("failed to load supply: %w", err)
	}

	return supply, nil
}

func (sl *StateLoader) loadBalances(ctx context.Context) (map[domain.Address]uint64, error) {
	balancesSQL := `SELECT account, balance FROM balances WHERE balance > 0`

	rows, err := sl.querier.Query(ctx, balancesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[domain.Address]uint64)
	for rows.Next() {
		var account string
		var balance uint64
		if err := rows.Scan(&account, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}

		balances[domain.Address(account)] = balance
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}

	return balances, nil
}

func (sl *StateLoader) loadItems(ctx context.Context) ([]domain.Item, error) {
	itemsSQL := `SELECT id, name, price FROM items ORDER BY id`

	rows, err := sl.querier.Query(ctx, itemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	return items, nil
}

func (sl *StateLoader) loadRedemptions(ctx context.Context) ([]domain.Redemption, error) {
	redemptionsSQL := `SELECT id, account, item_id, item_name, price, redeemed_at FROM redemptions ORDER BY redeemed_at, id`

	rows, err := sl.querier.Query(ctx, redemptionsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to load redemptions: %w", err)
	}
	defer rows.Close()

	redemptions := make([]domain.Redemption, 0)
	for rows.Next() {
		var redemption domain.Redemption
		var account string
		err := rows.Scan(
			&redemption.ID,
			&account,
			&redemption.ItemID,
			&redemption.ItemName,
			&redemption.Price,
			&redemption.RedeemedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan redemption row: %w", err)
		}

		redemption.Account = domain.Address(account)
		redemptions = append(redemptions, redemption)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load redemptions: %w", err)
	}

	return redemptions, nil
}
