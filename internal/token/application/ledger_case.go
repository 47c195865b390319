package application

import (
	"context"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type LedgerCase struct {
	token  *domain.Token
	logger logging.Logger
}

func NewLedgerCase(token *domain.Token, logger logging.Logger) *LedgerCase {
	return &LedgerCase{
		token:  token,
		logger: logger,
	}
}

func (lc *LedgerCase) Mint(ctx context.Context, caller, to domain.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := lc.token.MintTokens(caller, to, amount)
	if err != nil {
		lc.logger.Warn("mint rejected", "caller", caller, "to", to, "amount", amount, "error", err.Error())
		return err
	}

	lc.logger.Info("tokens minted", "to", to, "amount", amount)
	return nil
}

func (lc *LedgerCase) Burn(ctx context.Context, caller domain.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := lc.token.BurnTokens(caller, amount)
	if err != nil {
		lc.logger.Warn("burn rejected", "caller", caller, "amount", amount, "error", err.Error())
		return err
	}

	lc.logger.Info("tokens burned", "from", caller, "amount", amount)
	return nil
}

func (lc *LedgerCase) BurnFrom(ctx context.Context, caller, from domain.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := lc.token.BurnFrom(caller, from, amount)
	if err != nil {
		lc.logger.Warn("burn on behalf rejected", "caller", caller, "from", from, "amount", amount, "error", err.Error())
		return err
	}

	lc.logger.Info("tokens burned", "from", from, "by", caller, "amount", amount)
	return nil
}

func (lc *LedgerCase) Transfer(ctx context.Context, caller, to domain.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := lc.token.Transfer(caller, to, amount)
	if err != nil {
		lc.logger.Warn("transfer rejected", "from", caller, "to", to, "amount", amount, "error", err.Error())
		return err
	}

	return nil
}

func (lc *LedgerCase) Balance(ctx context.Context, account domain.Address) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return lc.token.BalanceOf(account), nil
}

func (lc *LedgerCase) Supply(ctx context.Context) (domain.Supply, error) {
	if err := ctx.Err(); err != nil {
		return domain.Supply{}, err
	}

	return lc.token.Supply(), nil
}
