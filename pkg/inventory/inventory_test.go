package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_KeepsOrder(t *testing.T) {
	c, err := NewCatalog(DefaultItems())
	require.NoError(t, err)
	require.Equal(t, 8, c.Len())

	items := c.Items()
	assert.Equal(t, "Rice", items[0].Name)
	assert.Equal(t, "Toothpaste", items[7].Name)
}

func TestNewCatalog_Rejects(t *testing.T) {
	cases := map[string][]Item{
		"empty":     nil,
		"blankName": {{Name: "  ", Price: 10}},
		"negative":  {{Name: "Rice", Price: -1}},
		"duplicate": {{Name: "Rice", Price: 10}, {Name: "rice ", Price: 20}},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalog(items)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_ItemsIsCopy(t *testing.T) {
	c, err := NewCatalog(DefaultItems())
	require.NoError(t, err)

	items := c.Items()
	items[0].Price = 9999

	it, err := c.Find("Rice")
	require.NoError(t, err)
	assert.Equal(t, 60, it.Price)
}

func TestCatalog_Find(t *testing.T) {
	c, err := NewCatalog(DefaultItems())
	require.NoError(t, err)

	it, err := c.Find(" cooking oil ")
	require.NoError(t, err)
	assert.Equal(t, Item{Name: "Cooking Oil", Price: 200}, it)

	_, err = c.Find("Caviar")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_Total(t *testing.T) {
	c, err := NewCatalog(DefaultItems())
	require.NoError(t, err)

	total := c.Total(map[string]int{
		"Rice":   2,
		"Milk":   1,
		"Soap":   0,
		"Sugar":  -3,
		"Caviar": 5,
	})
	assert.Equal(t, 170, total)
	assert.Zero(t, c.Total(nil))
}

func TestFileSource_Load(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "items:\n  - name: Atta\n    price: 45\n  - name: Dal\n    price: 120\n"
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	c, err := Load(context.Background(), FileSource{Path: p})
	require.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Atta", Price: 45}, {Name: "Dal", Price: 120}}, c.Items())
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FileSource{Path: filepath.Join(dir, "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("items: [oops"), 0o644))
	_, err = FileSource{Path: bad}.Load(context.Background())
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("items: []\n"), 0o644))
	_, err = Load(context.Background(), FileSource{Path: empty})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
