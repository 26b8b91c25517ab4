package inventory

import (
	"context"
	"fmt"
)

// DefaultItems is the built-in store inventory used when no other source is configured.
func DefaultItems() []Item {
	return []Item{
		{Name: "Rice", Price: 60}, // per kg
		{Name: "Milk", Price: 50}, // per litre
		{Name: "Biscuits", Price: 40},
		{Name: "Sugar", Price: 50}, // per 500g
		{Name: "Cooking Oil", Price: 200},
		{Name: "Tea Pack", Price: 150},
		{Name: "Soap", Price: 30},
		{Name: "Toothpaste", Price: 80},
	}
}

type staticSource []Item

// Static returns a Source that always yields the given items.
func Static(items []Item) Source { return staticSource(items) }

func (s staticSource) Load(context.Context) ([]Item, error) {
	out := make([]Item, len(s))
	copy(out, s)
	return out, nil
}

// Load reads items from src and builds the catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return NewCatalog(items)
}
