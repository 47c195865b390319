package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the full state of a Token, used to persist and restore it.
type Snapshot struct {
	Balances    map[Address]uint64
	Items       []Item
	Redemptions []Redemption
	Supply      Supply
}

// Option configures a Token at construction.
type Option func(*Token)

// WithEventSink sets where committed mutations are published. The default discards them.
func WithEventSink(sink EventSink) Option {
	return func(t *Token) {
		t.sink = sink
	}
}

// WithRedeemPolicy chooses where redeemed units go. The default is RedeemBurn.
func WithRedeemPolicy(policy RedeemPolicy) Option {
	return func(t *Token) {
		t.policy = policy
	}
}

// WithClock replaces time.Now for event and redemption timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Token) {
		t.now = now
	}
}

// Token combines the ledger, the catalog and redemptions behind one lock.
// Every operation either completes and publishes exactly one event, or fails without changing state.
type Token struct {
	mu sync.Mutex

	access      AccessControl
	ledger      *Ledger
	catalog     *Catalog
	redemptions *RedemptionEngine

	policy RedeemPolicy
	sink   EventSink
	now    func() time.Time
}

// NewToken creates an empty ledger and catalog governed by administrator.
// It fails with InvalidArgumentsError for an invalid administrator or an unknown redeem policy.
func NewToken(administrator Address, opts ...Option) (*Token, error) {
	access, err := NewAccessControl(administrator)
	if err != nil {
		return nil, err
	}

	t := &Token{
		access:  access,
		ledger:  NewLedger(),
		catalog: NewCatalog(),
		policy:  RedeemBurn,
		sink:    nopSink{},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	if _, err := ParseRedeemPolicy(string(t.policy)); err != nil {
		return nil, err
	}

	t.redemptions = NewRedemptionEngine(t.catalog, t.ledger, t.policy, administrator)

	return t, nil
}

func (t *Token) Administrator() Address {
	return t.access.Administrator()
}

func (t *Token) IsAdministrator(identity Address) bool {
	return t.access.IsAdministrator(identity)
}

func (t *Token) RedeemPolicy() RedeemPolicy {
	return t.policy
}

func (t *Token) MintTokens(caller, to Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.access.RequireAdministrator(caller, "mint tokens"); err != nil {
		return err
	}
	if err := t.ledger.Mint(to, amount); err != nil {
		return err
	}

	t.publish(Event{Kind: EventMinted, Account: to, Amount: amount})
	return nil
}

// BurnTokens destroys units from the caller's own balance.
func (t *Token) BurnTokens(caller Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ledger.Burn(caller, amount); err != nil {
		return err
	}

	t.publish(Event{Kind: EventBurned, Account: caller, Amount: amount})
	return nil
}

func (t *Token) BurnFrom(caller, from Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.access.RequireAdministrator(caller, "burn tokens of another account"); err != nil {
		return err
	}
	if err := t.ledger.Burn(from, amount); err != nil {
		return err
	}

	t.publish(Event{Kind: EventBurned, Account: from, Counterparty: caller, Amount: amount})
	return nil
}

func (t *Token) Transfer(caller, to Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ledger.Transfer(caller, to, amount); err != nil {
		return err
	}

	t.publish(Event{Kind: EventTransferred, Account: caller, Counterparty: to, Amount: amount})
	return nil
}

func (t *Token) BalanceOf(identity Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ledger.BalanceOf(identity)
}

func (t *Token) Supply() Supply {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ledger.Supply()
}

func (t *Token) AddItem(caller Address, id, price uint64, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.access.RequireAdministrator(caller, "add items"); err != nil {
		return err
	}
	if err := t.catalog.Add(id, price, name); err != nil {
		return err
	}

	t.publish(Event{Kind: EventItemAdded, Account: caller, ItemID: id, ItemName: name, Amount: price})
	return nil
}

func (t *Token) UpdateItemCost(caller Address, id, price uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.access.RequireAdministrator(caller, "update item cost"); err != nil {
		return err
	}
	if err := t.catalog.UpdateCost(id, price); err != nil {
		return err
	}

	item, _ := t.catalog.Get(id)
	t.publish(Event{Kind: EventItemCostUpdated, Account: caller, ItemID: id, ItemName: item.Name, Amount: price})
	return nil
}

func (t *Token) RemoveItem(caller Address, id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.access.RequireAdministrator(caller, "remove items"); err != nil {
		return err
	}

	item, _ := t.catalog.Get(id)
	if err := t.catalog.Remove(id); err != nil {
		return err
	}

	t.publish(Event{Kind: EventItemRemoved, Account: caller, ItemID: id, ItemName: item.Name})
	return nil
}

// GetItem returns the zero Item for ids that were never added or have been removed.
func (t *Token) GetItem(id uint64) Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, _ := t.catalog.Get(id)
	return item
}

func (t *Token) ListItems() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.catalog.List()
}

func (t *Token) DisplayItems() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.catalog.Display()
}

func (t *Token) RedeemTokens(caller Address, itemID uint64) (Redemption, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	redemption, err := t.redemptions.Redeem(caller, itemID, uuid.New(), t.now().UTC())
	if err != nil {
		return Redemption{}, err
	}

	event := Event{
		ID:         redemption.ID,
		Kind:       EventRedeemed,
		Account:    caller,
		ItemID:     redemption.ItemID,
		ItemName:   redemption.ItemName,
		Amount:     redemption.Price,
		OccurredAt: redemption.RedeemedAt,
	}
	if t.policy == RedeemCreditAdministrator {
		event.Counterparty = t.access.Administrator()
	}
	t.sink.Publish(event)

	return redemption, nil
}

// Account reads a balance and the redemptions behind it under one lock, so the two always agree.
func (t *Token) Account(owner Address) (uint64, []Redemption) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ledger.BalanceOf(owner), t.redemptions.Inventory(owner)
}

func (t *Token) Redemptions(owner Address) []Redemption {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.redemptions.Inventory(owner)
}

func (t *Token) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	balances, supply := t.ledger.snapshot()

	return Snapshot{
		Balances:    balances,
		Items:       t.catalog.List(),
		Redemptions: t.redemptions.snapshot(),
		Supply:      supply,
	}
}

// Restore replaces the whole state with snapshot without publishing events.
// A snapshot whose balances do not add up to its supply is rejected and nothing changes.
func (t *Token) Restore(snapshot Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ledger := NewLedger()
	if err := ledger.restore(snapshot.Balances, snapshot.Supply); err != nil {
		return err
	}

	catalog := NewCatalog()
	if err := catalog.restore(snapshot.Items); err != nil {
		return err
	}

	t.ledger = ledger
	t.catalog = catalog
	t.redemptions = NewRedemptionEngine(catalog, ledger, t.policy, t.access.Administrator())
	t.redemptions.restore(snapshot.Redemptions)

	return nil
}

func (t *Token) publish(event Event) {
	event.ID = uuid.New()
	event.OccurredAt = t.now().UTC()
	t.sink.Publish(event)
}
