// Package order turns a shopping selection into the question sent to the assistant.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/kirana/pkg/inventory"
)

// Separator joins itemised order lines.
const Separator = ", "

// ErrEmptyRequest means neither items nor free text were given.
var ErrEmptyRequest = errors.New("select items or type a request")

// Line is one selected item with a positive quantity.
type Line struct {
	Item     inventory.Item
	Quantity int
}

func (l Line) Cost() int { return l.Quantity * l.Item.Price }

// String renders the line as "2 x Rice (₹120)".
func (l Line) String() string {
	return fmt.Sprintf("%d x %s (%s%d)", l.Quantity, l.Item.Name, inventory.Currency, l.Cost())
}

// Lines resolves quantities against the catalog and returns them in catalog order.
// Unknown names are dropped, names differing only in case are summed, and lines
// whose total quantity is not positive are skipped.
func Lines(c *inventory.Catalog, quantities map[string]int) []Line {
	if len(quantities) == 0 {
		return nil
	}
	byName := make(map[string]int, len(quantities))
	for name, qty := range quantities {
		it, err := c.Find(name)
		if err != nil {
			continue
		}
		byName[it.Name] += qty
	}
	var out []Line
	for _, it := range c.Items() {
		if qty := byName[it.Name]; qty > 0 {
			out = append(out, Line{Item: it, Quantity: qty})
		}
	}
	return out
}

// Compose builds the question. Non-empty free text wins outright and the itemised
// order is discarded; otherwise the lines are joined with Separator.
func Compose(lines []Line, freeText string) (string, error) {
	if text := strings.TrimSpace(freeText); text != "" {
		return text, nil
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		parts = append(parts, l.String())
	}
	if len(parts) == 0 {
		return "", ErrEmptyRequest
	}
	return strings.Join(parts, Separator), nil
}
