package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Item struct {
	ID    uint64
	Name  string
	Price uint64
}

// Catalog holds the items that can be redeemed. An id without an entry reads back as the zero Item.
type Catalog struct {
	items map[uint64]Item
}

func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[uint64]Item),
	}
}

// Add inserts the item or overwrites an existing entry with the same id.
func (c *Catalog) Add(id, price uint64, name string) error {
	if price == 0 {
		return &InvalidAmountError{Msg: fmt.Sprintf("item %d must have a positive price", id)}
	}

	c.items[id] = Item{ID: id, Name: name, Price: price}
	return nil
}

func (c *Catalog) UpdateCost(id, price uint64) error {
	item, ok := c.items[id]
	if !ok {
		return itemNotFound(id)
	}
	if price == 0 {
		return &InvalidAmountError{Msg: fmt.Sprintf("item %d must have a positive price", id)}
	}

	item.Price = price
	c.items[id] = item

	return nil
}

func (c *Catalog) Remove(id uint64) error {
	if _, ok := c.items[id]; !ok {
		return itemNotFound(id)
	}

	delete(c.items, id)
	return nil
}

func (c *Catalog) Get(id uint64) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// List returns the items ordered by id.
func (c *Catalog) List() []Item {
	items := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	return items
}

// Display renders the catalog as "\n<id>: <name> for <price> Tokens" per item, ordered by id.
func (c *Catalog) Display() string {
	var sb strings.Builder

	for _, item := range c.List() {
		sb.WriteByte('\n')
		sb.WriteString(strconv.FormatUint(item.ID, 10))
		sb.WriteString(": ")
		sb.WriteString(item.Name)
		sb.WriteString(" for ")
		sb.WriteString(strconv.FormatUint(item.Price, 10))
		sb.WriteString(" Tokens")
	}

	return sb.String()
}

func (c *Catalog) restore(items []Item) error {
	restored := make(map[uint64]Item, len(items))
	for _, item := range items {
		if item.Price == 0 {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("snapshot item %d has no price", item.ID)}
		}

		restored[item.ID] = item
	}

	c.items = restored
	return nil
}

func itemNotFound(id uint64) error {
	return &ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", id)}
}
