package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

const (
	DefaultJournalBuffer = 1024

	maxWriteAttempts = 3
	retryDelay       = 100 * time.Millisecond
)

// Journal persists committed events and projects them onto the state tables.
// Publish is called while the token lock is held, so it only enqueues.
// Writes happen on the Run goroutine in publish order. The first event that cannot be written
// stops the journal: later events are dropped and Run returns an error.
type Journal struct {
	txManager database.TxManager
	logger    logging.Logger

	mu     sync.RWMutex
	closed bool
	events chan domain.Event

	failed atomic.Bool

	written atomic.Uint64
	dropped atomic.Uint64
}

func NewJournal(txManager database.TxManager, buffer int, logger logging.Logger) *Journal {
	if buffer <= 0 {
		buffer = DefaultJournalBuffer
	}

	return &Journal{
		txManager: txManager,
		logger:    logger,
		events:    make(chan domain.Event, buffer),
	}
}

// Publish blocks while the buffer is full, which stalls the ledger until the database catches up.
func (j *Journal) Publish(event domain.Event) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.closed || j.failed.Load() {
		j.dropped.Add(1)
		j.logger.Error("journal is not accepting events, event dropped", "event_id", event.ID.String(), "kind", string(event.Kind))
		return
	}

	j.events <- event
}

// Close stops intake. Run returns once everything queued before Close is written.
func (j *Journal) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	j.closed = true
	close(j.events)
}

// Run writes queued events until Close is called and the queue is drained.
// Cancelling ctx does not abandon queued events, they are still written.
// If an event still fails after every retry, Run closes the journal, drops the rest of the queue
// and returns the write error once the queue is empty.
func (j *Journal) Run(ctx context.Context) error {
	writeCtx := context.WithoutCancel(ctx)
	var failure error

	for event := range j.events {
		if failure != nil {
			j.dropped.Add(1)
			continue
		}

		if err := j.writeWithRetry(writeCtx, event); err != nil {
			j.dropped.Add(1)
			j.logger.Error("failed to persist event, journal stopped",
				"event_id", event.ID.String(),
				"kind", string(event.Kind),
				"error", err.Error(),
			)

			failure = fmt.Errorf("failed to persist event %s: %w", event.ID, err)
			j.failed.Store(true)
			// Close waits for blocked publishers, which need this loop to keep draining.
			go j.Close()
			continue
		}

		j.written.Add(1)
	}

	return failure
}

// Failed reports whether a write error has stopped the journal.
func (j *Journal) Failed() bool {
	return j.failed.Load()
}

func (j *Journal) Written() uint64 {
	return j.written.Load()
}

func (j *Journal) Dropped() uint64 {
	return j.dropped.Load()
}

func (j *Journal) writeWithRetry(ctx context.Context, event domain.Event) error {
	var err error

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		err = j.write(ctx, event)
		if err == nil {
			return nil
		}

		j.logger.Warn("event write failed", "event_id", event.ID.String(), "attempt", attempt, "error", err.Error())
		if attempt < maxWriteAttempts {
			time.Sleep(retryDelay)
		}
	}

	return err
}

func (j *Journal) write(ctx context.Context, event domain.Event) error {
	return j.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		appended, err := appendEvent(ctx, executor, event)
		if err != nil {
			return err
		}

		// A replayed event id has already been projected.
		if !appended {
			return nil
		}

		return project(ctx, executor, event)
	})
}

func appendEvent(ctx context.Context, executor database.Executor, event domain.Event) (bool, error) {
	appendSQL := `INSERT INTO ledger_events (id, kind, account, counterparty, item_id, item_name, amount, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

	tag, err := executor.Exec(ctx, appendSQL,
		event.ID,
		string(event.Kind),
		string(event.Account),
		string(event.Counterparty),
		event.ItemID,
		event.ItemName,
		event.Amount,
		event.OccurredAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to append event: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func project(ctx context.Context, executor database.Executor, event domain.Event) error {
	switch event.Kind {
	case domain.EventMinted:
		if err := creditBalance(ctx, executor, event.Account, event.Amount); err != nil {
			return err
		}
		return addToSupply(ctx, executor, `UPDATE supply SET minted = minted + $1 WHERE id = 1`, event.Amount)

	case domain.EventBurned:
		if err := debitBalance(ctx, executor, event.Account, event.Amount); err != nil {
			return err
		}
		return addToSupply(ctx, executor, `UPDATE supply SET burned = burned + $1 WHERE id = 1`, event.Amount)

	case domain.EventTransferred:
		if err := debitBalance(ctx, executor, event.Account, event.Amount); err != nil {
			return err
		}
		return creditBalance(ctx, executor, event.Counterparty, event.Amount)

	case domain.EventRedeemed:
		if err := debitBalance(ctx, executor, event.Account, event.Amount); err != nil {
			return err
		}

		var err error
		if event.Counterparty != "" {
			err = creditBalance(ctx, executor, event.Counterparty, event.Amount)
		} else {
			err = addToSupply(ctx, executor, `UPDATE supply SET redeemed = redeemed + $1 WHERE id = 1`, event.Amount)
		}
		if err != nil {
			return err
		}

		return insertRedemption(ctx, executor, event)

	case domain.EventItemAdded:
		upsertSQL := `INSERT INTO items (id, name, price) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price`
		_, err := executor.Exec(ctx, upsertSQL, event.ItemID, event.ItemName, event.Amount)
		if err != nil {
			return fmt.Errorf("failed to upsert item: %w", err)
		}
		return nil

	case domain.EventItemCostUpdated:
		updateSQL := `UPDATE items SET price = $1 WHERE id = $2`
		_, err := executor.Exec(ctx, updateSQL, event.Amount, event.ItemID)
		if err != nil {
			return fmt.Errorf("failed to update item cost: %w", err)
		}
		return nil

	case domain.EventItemRemoved:
		deleteSQL := `DELETE FROM items WHERE id = $1`
		_, err := executor.Exec(ctx, deleteSQL, event.ItemID)
		if err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil

	default:
		return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown event kind %q", event.Kind)}
	}
}

func creditBalance(ctx context.Context, executor database.Executor, account domain.Address, amount uint64) error {
	creditSQL := `INSERT INTO balances (account, balance) VALUES ($1, $2)
ON CONFLICT (account) DO UPDATE SET balance = balances.balance + EXCLUDED.balance`
	_, err := executor.Exec(ctx, creditSQL, string(account), amount)
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	}

	return nil
}

func debitBalance(ctx context.Context, executor database.Executor, account domain.Address, amount uint64) error {
	debitSQL := `UPDATE balances SET balance = balance - $1 WHERE account = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, amount, string(account))
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("stored balance of %q is below %d", account, amount)}
	}

	return nil
}

func addToSupply(ctx context.Context, executor database.Executor, updateSQL string, amount uint64) error {
	_, err := executor.Exec(ctx, updateSQL, amount)
	if err != nil {
		return fmt.Errorf("failed to update supply: %w", err)
	}

	return nil
}

func insertRedemption(ctx context.Context, executor database.Executor, event domain.Event) error {
	insertSQL := `INSERT INTO redemptions (id, account, item_id, item_name, price, redeemed_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(ctx, insertSQL,
		event.ID,
		string(event.Account),
		event.ItemID,
		event.ItemName,
		event.Amount,
		event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert redemption: %w", err)
	}

	return nil
}
