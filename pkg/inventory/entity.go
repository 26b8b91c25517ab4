package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Currency is the symbol prices are rendered with.
const Currency = "₹"

// Common errors used by the catalog and its sources
var (
	ErrNotFound     = errors.New("item not found")
	ErrEmptyCatalog = errors.New("catalog has no items")
	ErrInvalidItem  = errors.New("invalid item")
)

// Item is a single product on sale with its unit price in whole currency units.
type Item struct {
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`
}

// Source loads catalog items. Implementations may be static, file or SQL backed.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
}

// Catalog is an ordered, read-only list of items. It is built once at startup.
type Catalog struct {
	items []Item
	index map[string]int
}

// NewCatalog validates items and keeps their order.
func NewCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidItem)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("%w: negative price for %q", ErrInvalidItem, it.Name)
		}
		key := normalize(it.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidItem, it.Name)
		}
		c.index[key] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns a copy of the catalog in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// Find looks an item up by name, ignoring case and surrounding spaces.
func (c *Catalog) Find(name string) (Item, error) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.items[i], nil
}

// Total sums quantity*price over known items. Unknown names and non-positive
// quantities contribute nothing.
func (c *Catalog) Total(quantities map[string]int) int {
	total := 0
	for name, qty := range quantities {
		if qty <= 0 {
			continue
		}
		it, err := c.Find(name)
		if err != nil {
			continue
		}
		total += qty * it.Price
	}
	return total
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
