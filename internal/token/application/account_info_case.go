package application

import (
	"context"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"golang.org/x/sync/errgroup"
)

const DefaultHistoryLimit = 50

type AccountInfoCase struct {
	token             *domain.Token
	historyRepository domain.HistoryRepository
	historyLimit      int
	logger            logging.Logger
}

func NewAccountInfoCase(token *domain.Token, historyRepository domain.HistoryRepository, historyLimit int, logger logging.Logger) *AccountInfoCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &AccountInfoCase{
		token:             token,
		historyRepository: historyRepository,
		historyLimit:      historyLimit,
		logger:            logger,
	}
}

func (aic *AccountInfoCase) GetAccountInfo(ctx context.Context, account domain.Address) (domain.AccountInfo, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var balance uint64
	var inventory []domain.Redemption
	var history []domain.Event

	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		balance, inventory = aic.token.Account(account)
		return nil
	})

	group.Go(func() error {
		var err error
		history, err = aic.historyRepository.FetchAccountHistory(groupCtx, account, aic.historyLimit)
		return err
	})

	err := group.Wait()
	if err != nil {
		aic.logger.Error("failed to collect account info", "account", account, "error", err.Error())
		return domain.AccountInfo{}, err
	}

	return domain.AccountInfo{
		Account:   account,
		Balance:   balance,
		Inventory: inventory,
		History:   history,
	}, nil
}
