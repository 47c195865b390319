package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RedeemPolicy decides where units spent on a redemption go.
type RedeemPolicy string

const (
	// RedeemBurn removes the spent units from circulation.
	RedeemBurn RedeemPolicy = "burn"
	// RedeemCreditAdministrator moves the spent units to the administrator.
	RedeemCreditAdministrator RedeemPolicy = "credit-admin"
)

func ParseRedeemPolicy(value string) (RedeemPolicy, error) {
	switch RedeemPolicy(value) {
	case RedeemBurn, RedeemCreditAdministrator:
		return RedeemPolicy(value), nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown redeem policy %q", value)}
	}
}

// Redemption is an immutable record of an item handed to an account.
type Redemption struct {
	ID         uuid.UUID
	Account    Address
	ItemID     uint64
	ItemName   string
	Price      uint64
	RedeemedAt time.Time
}

type RedemptionEngine struct {
	catalog       *Catalog
	ledger        *Ledger
	policy        RedeemPolicy
	administrator Address

	inventory map[Address][]Redemption
}

func NewRedemptionEngine(catalog *Catalog, ledger *Ledger, policy RedeemPolicy, administrator Address) *RedemptionEngine {
	return &RedemptionEngine{
		catalog:       catalog,
		ledger:        ledger,
		policy:        policy,
		administrator: administrator,
		inventory:     make(map[Address][]Redemption),
	}
}

func (e *RedemptionEngine) Policy() RedeemPolicy {
	return e.policy
}

// Redeem validates the item and the caller's funds before touching the ledger,
// so a failed call leaves every balance as it was.
func (e *RedemptionEngine) Redeem(caller Address, itemID uint64, id uuid.UUID, at time.Time) (Redemption, error) {
	item, ok := e.catalog.Get(itemID)
	if !ok {
		return Redemption{}, itemNotFound(itemID)
	}

	balance := e.ledger.BalanceOf(caller)
	if balance < item.Price {
		return Redemption{}, &InsufficientBalanceError{
			Msg: fmt.Sprintf("account %q has %d, item %d costs %d", caller, balance, item.ID, item.Price),
		}
	}

	settle, err := e.settlement(caller, item.Price)
	if err != nil {
		return Redemption{}, err
	}

	if err := e.ledger.Debit(caller, item.Price); err != nil {
		return Redemption{}, err
	}
	if err := settle(); err != nil {
		return Redemption{}, err
	}

	redemption := Redemption{
		ID:         id,
		Account:    caller,
		ItemID:     item.ID,
		ItemName:   item.Name,
		Price:      item.Price,
		RedeemedAt: at,
	}
	e.inventory[caller] = append(e.inventory[caller], redemption)

	return redemption, nil
}

// settlement checks where the spent units will go and returns the step that moves them there.
// A nil error guarantees the returned step succeeds once the caller has been debited.
func (e *RedemptionEngine) settlement(caller Address, price uint64) (func() error, error) {
	if e.policy == RedeemCreditAdministrator {
		// The administrator redeeming gets back exactly what was debited.
		if caller != e.administrator {
			if err := e.ledger.checkCredit(e.administrator, price); err != nil {
				return nil, err
			}
		}

		return func() error { return e.ledger.Credit(e.administrator, price) }, nil
	}

	if err := e.ledger.checkRetire(price); err != nil {
		return nil, err
	}

	return func() error { return e.ledger.retire(price) }, nil
}

func (e *RedemptionEngine) Inventory(owner Address) []Redemption {
	owned := e.inventory[owner]
	result := make([]Redemption, len(owned))
	copy(result, owned)

	return result
}

func (e *RedemptionEngine) snapshot() []Redemption {
	var all []Redemption
	for _, owned := range e.inventory {
		all = append(all, owned...)
	}

	return all
}

func (e *RedemptionEngine) restore(redemptions []Redemption) {
	inventory := make(map[Address][]Redemption)
	for _, r := range redemptions {
		inventory[r.Account] = append(inventory[r.Account], r)
	}

	e.inventory = inventory
}
