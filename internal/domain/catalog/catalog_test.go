//go:build unit

package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain/catalog"
)

func newCatalog() *catalog.Catalog {
	return catalog.NewCatalog([]catalog.Product{
		{ID: "1", Name: "Wireless Headphones", Price: decimal.RequireFromString("99.99")},
		{ID: "2", Name: "Smartphone", Price: decimal.RequireFromString("699.99")},
	})
}

func TestCatalogGet(t *testing.T) {
	c := newCatalog()

	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Smartphone", p.Name)

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestCatalogAll(t *testing.T) {
	c := newCatalog()

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)

	// mutation of the returned slice must not leak back
	all[0].Name = "changed"
	p, _ := c.Get("1")
	assert.Equal(t, "Wireless Headphones", p.Name)
}

func TestCatalogLen(t *testing.T) {
	assert.Equal(t, 2, newCatalog().Len())
	assert.Equal(t, 0, catalog.NewCatalog(nil).Len())
}
