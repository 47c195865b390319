package domain

import (
	"fmt"
	"math"
)

// Supply tracks how units entered and left circulation.
type Supply struct {
	Minted   uint64
	Burned   uint64
	Redeemed uint64
}

// Total is the amount in circulation, which always equals the sum of all balances.
func (s Supply) Total() uint64 {
	return s.Minted - s.Burned - s.Redeemed
}

// Ledger is not safe for concurrent use; Token serializes access to it.
type Ledger struct {
	balances map[Address]uint64
	supply   Supply
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[Address]uint64),
	}
}

func (l *Ledger) BalanceOf(identity Address) uint64 {
	return l.balances[identity]
}

func (l *Ledger) Supply() Supply {
	return l.supply
}

// Mint bounds the cumulative Minted counter, which in turn bounds Burned, Redeemed and every balance.
func (l *Ledger) Mint(to Address, amount uint64) error {
	if err := ValidateAddress(to, "mint recipient"); err != nil {
		return err
	}
	if amount == 0 {
		return &InvalidAmountError{Msg: "mint amount must be positive"}
	}
	if err := checkedAdd(l.supply.Minted, amount, "minted supply"); err != nil {
		return err
	}
	if err := l.checkCredit(to, amount); err != nil {
		return err
	}

	l.balances[to] += amount
	l.supply.Minted += amount

	return nil
}

func (l *Ledger) Burn(from Address, amount uint64) error {
	if amount == 0 {
		return &InvalidAmountError{Msg: "burn amount must be positive"}
	}
	if err := checkedAdd(l.supply.Burned, amount, "burned supply"); err != nil {
		return err
	}

	err := l.Debit(from, amount)
	if err != nil {
		return err
	}

	l.supply.Burned += amount
	return nil
}

// Debit removes amount from an account without touching supply counters.
// Callers must account for the units elsewhere (Credit or a supply counter).
func (l *Ledger) Debit(from Address, amount uint64) error {
	balance := l.balances[from]
	if amount > balance {
		return &InsufficientBalanceError{Msg: fmt.Sprintf("account %q has %d, needs %d", from, balance, amount)}
	}

	if balance == amount {
		delete(l.balances, from)
	} else {
		l.balances[from] = balance - amount
	}

	return nil
}

func (l *Ledger) Credit(to Address, amount uint64) error {
	if err := l.checkCredit(to, amount); err != nil {
		return err
	}

	if amount > 0 {
		l.balances[to] += amount
	}

	return nil
}

func (l *Ledger) Transfer(from, to Address, amount uint64) error {
	if amount == 0 {
		return &InvalidAmountError{Msg: "transfer amount must be positive"}
	}
	if err := l.checkCredit(to, amount); err != nil {
		return err
	}
	if from == to {
		return &InvalidArgumentsError{Msg: "sender must differ from recipient"}
	}
	if l.balances[from] < amount {
		return &InsufficientBalanceError{Msg: fmt.Sprintf("account %q has %d, needs %d", from, l.balances[from], amount)}
	}

	if err := l.Debit(from, amount); err != nil {
		return err
	}

	return l.Credit(to, amount)
}

// checkCredit reports whether Credit(to, amount) would succeed, without changing anything.
func (l *Ledger) checkCredit(to Address, amount uint64) error {
	if err := ValidateAddress(to, "recipient"); err != nil {
		return err
	}

	return checkedAdd(l.balances[to], amount, fmt.Sprintf("balance of %q", to))
}

// checkRetire reports whether retire(amount) would succeed.
func (l *Ledger) checkRetire(amount uint64) error {
	return checkedAdd(l.supply.Redeemed, amount, "redeemed supply")
}

// retire records that redeemed units left circulation after a Debit.
func (l *Ledger) retire(amount uint64) error {
	if err := l.checkRetire(amount); err != nil {
		return err
	}

	l.supply.Redeemed += amount
	return nil
}

func checkedAdd(current, amount uint64, counter string) error {
	if current > math.MaxUint64-amount {
		return &InvalidAmountError{Msg: fmt.Sprintf("adding %d would overflow %s", amount, counter)}
	}

	return nil
}

func (l *Ledger) snapshot() (map[Address]uint64, Supply) {
	balances := make(map[Address]uint64, len(l.balances))
	for identity, balance := range l.balances {
		balances[identity] = balance
	}

	return balances, l.supply
}

func (l *Ledger) restore(balances map[Address]uint64, supply Supply) error {
	var sum uint64
	restored := make(map[Address]uint64, len(balances))

	for identity, balance := range balances {
		if err := ValidateAddress(identity, "snapshot account"); err != nil {
			return err
		}
		if balance == 0 {
			continue
		}
		if sum > math.MaxUint64-balance {
			return &InvalidArgumentsError{Msg: "snapshot balances overflow"}
		}

		sum += balance
		restored[identity] = balance
	}

	if sum != supply.Total() {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("snapshot balances sum to %d but supply is %d", sum, supply.Total())}
	}

	l.balances = restored
	l.supply = supply

	return nil
}
