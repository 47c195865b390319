package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type HistoryRepository struct {
	querier database.Querier
}

func NewHistoryRepository(querier database.Querier) *HistoryRepository {
	return &HistoryRepository{
		querier: querier,
	}
}

// FetchAccountHistory returns up to limit events the account took part in, newest first.
func (hr *HistoryRepository) FetchAccountHistory(ctx context.Context, account domain.Address, limit int) ([]domain.Event, error) {
	historySQL := `SELECT id, kind, account, counterparty, item_id, item_name, amount, occurred_at
FROM ledger_events
WHERE account = $1 OR counterparty = $1
ORDER BY seq DESC
LIMIT $2`

	rows, err := hr.querier.Query(ctx, historySQL, string(account), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account history: %w", err)
	}
	defer rows.Close()

	history := make([]domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		var kind, eventAccount, counterparty string
		err := rows.Scan(
			&event.ID,
			&kind,
			&eventAccount,
			&counterparty,
			&event.ItemID,
			&event.ItemName,
			&event.Amount,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}

		event.Kind = domain.EventKind(kind)
		event.Account = domain.Address(eventAccount)
		event.Counterparty = domain.Address(counterparty)
		history = append(history, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch account history: %w", err)
	}

	return history, nil
}
