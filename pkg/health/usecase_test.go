package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/kirana/pkg/health/checkers"
	"github.com/artem13815/kirana/pkg/inventory"
)

type failing struct{}

func (failing) Name() string                { return "upstream" }
func (failing) Check(context.Context) error { return errors.New("down") }

func TestReady(t *testing.T) {
	c, err := inventory.NewCatalog(inventory.DefaultItems())
	assert.NoError(t, err)

	assert.NoError(t, NewService().Ready(context.Background()))
	assert.NoError(t, NewService(checkers.NewCatalogChecker(c)).Ready(context.Background()))

	err = NewService(checkers.NewCatalogChecker(c), failing{}).Ready(context.Background())
	assert.EqualError(t, err, "upstream: down")

	err = NewService(checkers.NewCatalogChecker(nil)).Ready(context.Background())
	assert.ErrorIs(t, err, inventory.ErrEmptyCatalog)
}
