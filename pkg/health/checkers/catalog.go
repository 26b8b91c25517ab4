package checkers

import (
	"context"

	"github.com/artem13815/kirana/pkg/inventory"
)

// CatalogChecker reports not ready while the catalog is missing or empty.
type CatalogChecker struct {
	catalog *inventory.Catalog
}

func NewCatalogChecker(c *inventory.Catalog) *CatalogChecker { return &CatalogChecker{catalog: c} }

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(context.Context) error {
	if c.catalog == nil || c.catalog.Len() == 0 {
		return inventory.ErrEmptyCatalog
	}
	return nil
}
