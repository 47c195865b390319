package application

import (
	"context"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
)

type CatalogCase struct {
	token  *domain.Token
	logger logging.Logger
}

func NewCatalogCase(token *domain.Token, logger logging.Logger) *CatalogCase {
	return &CatalogCase{
		token:  token,
		logger: logger,
	}
}

func (cc *CatalogCase) AddItem(ctx context.Context, caller domain.Address, item domain.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := cc.token.AddItem(caller, item.ID, item.Price, item.Name)
	if err != nil {
		cc.logger.Warn("add item rejected", "caller", caller, "item_id", item.ID, "error", err.Error())
		return err
	}

	cc.logger.Info("item saved", "item_id", item.ID, "name", item.Name, "price", item.Price)
	return nil
}

func (cc *CatalogCase) UpdateItemCost(ctx context.Context, caller domain.Address, id, price uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := cc.token.UpdateItemCost(caller, id, price)
	if err != nil {
		cc.logger.Warn("update item cost rejected", "caller", caller, "item_id", id, "error", err.Error())
		return err
	}

	cc.logger.Info("item cost updated", "item_id", id, "price", price)
	return nil
}

func (cc *CatalogCase) RemoveItem(ctx context.Context, caller domain.Address, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := cc.token.RemoveItem(caller, id)
	if err != nil {
		cc.logger.Warn("remove item rejected", "caller", caller, "item_id", id, "error", err.Error())
		return err
	}

	cc.logger.Info("item removed", "item_id", id)
	return nil
}

func (cc *CatalogCase) GetItem(ctx context.Context, id uint64) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, err
	}

	return cc.token.GetItem(id), nil
}

func (cc *CatalogCase) ListItems(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return cc.token.ListItems(), nil
}

func (cc *CatalogCase) DisplayItems(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return cc.token.DisplayItems(), nil
}
