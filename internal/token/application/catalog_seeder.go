package application

import (
	"context"
	"fmt"
	"os"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"gopkg.in/yaml.v3"
)

type catalogSeedFile struct {
	Items []catalogSeedItem `yaml:"items"`
}

type catalogSeedItem struct {
	ID    uint64 `yaml:"id"`
	Name  string `yaml:"name"`
	Price uint64 `yaml:"price"`
}

// LoadCatalogSeed reads catalog items from a YAML file of the form
//
//	items:
//	  - id: 1
//	    name: "Test Item #1"
//	    price: 10
func LoadCatalogSeed(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	return ParseCatalogSeed(data)
}

func ParseCatalogSeed(data []byte) ([]domain.Item, error) {
	var seed catalogSeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	seen := make(map[uint64]struct{}, len(seed.Items))
	items := make([]domain.Item, 0, len(seed.Items))

	for _, it := range seed.Items {
		if _, dup := seen[it.ID]; dup {
			return nil, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("catalog seed lists item %d twice", it.ID)}
		}
		seen[it.ID] = struct{}{}

		items = append(items, domain.Item{ID: it.ID, Name: it.Name, Price: it.Price})
	}

	return items, nil
}

type CatalogSeeder struct {
	catalog       domain.CatalogService
	administrator domain.Address
	logger        logging.Logger
}

func NewCatalogSeeder(catalog domain.CatalogService, administrator domain.Address, logger logging.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		catalog:       catalog,
		administrator: administrator,
		logger:        logger,
	}
}

// Seed adds items only when the catalog is empty, so restarts never overwrite prices changed at runtime.
func (cs *CatalogSeeder) Seed(ctx context.Context, items []domain.Item) (int, error) {
	existing, err := cs.catalog.ListItems(ctx)
	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		cs.logger.Info("catalog already populated, skipping seed", "items", len(existing))
		return 0, nil
	}

	for i, item := range items {
		if err := cs.catalog.AddItem(ctx, cs.administrator, item); err != nil {
			return i, fmt.Errorf("failed to seed item %d: %w", item.ID, err)
		}
	}

	cs.logger.Info("catalog seeded", "items", len(items))
	return len(items), nil
}
