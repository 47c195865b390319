package application

import (
	"context"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type RedeemCase struct {
	token  *domain.Token
	logger logging.Logger
}

func NewRedeemCase(token *domain.Token, logger logging.Logger) *RedeemCase {
	return &RedeemCase{
		token:  token,
		logger: logger,
	}
}

func (rc *RedeemCase) Redeem(ctx context.Context, caller domain.Address, itemID uint64) (domain.Redemption, error) {
	if err := ctx.Err(); err != nil {
		return domain.Redemption{}, err
	}

	redemption, err := rc.token.RedeemTokens(caller, itemID)
	if err != nil {
		rc.logger.Warn("redemption rejected", "caller", caller, "item_id", itemID, "error", err.Error())
		return domain.Redemption{}, err
	}

	rc.logger.Info("item redeemed",
		"redemption_id", redemption.ID.String(),
		"account", caller,
		"item_id", itemID,
		"price", redemption.Price,
	)

	return redemption, nil
}
