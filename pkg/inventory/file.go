package inventory

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads the catalog from a YAML document of the form:
//
//	items:
//	  - name: Rice
//	    price: 60
type FileSource struct {
	Path string
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

func (f FileSource) Load(context.Context) ([]Item, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var doc catalogFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", f.Path, err)
	}
	return doc.Items, nil
}
