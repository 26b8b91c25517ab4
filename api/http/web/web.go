// Package web holds the single storefront page.
package web

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/artem13815/kirana/pkg/inventory"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Page is the data the storefront template renders.
type Page struct {
	HasKey   bool
	Items    []inventory.Item
	Currency string
}

func RenderIndex(w io.Writer, p Page) error {
	return index.Execute(w, p)
}
