package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "vo-001", Identifier("VODKA", 1))
	assert.Equal(t, "vo-042", Identifier("VODKA", 42))
	assert.Equal(t, "ru-1000", Identifier("RUM", 1000))
}

func TestStockQuantity(t *testing.T) {
	assert.Equal(t, 50, StockQuantity(1))
	assert.Equal(t, 70, StockQuantity(5))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"vodka", "craft", "american", "bestseller"}, SplitTags("vodka,craft,american,bestseller"))
	assert.Equal(t, []string{"a", "b", ""}, SplitTags("a,b,"))
	assert.Equal(t, []string{""}, SplitTags(""))
}

func TestNewProduct(t *testing.T) {
	record, err := ParseRecord("VODKA", 3, titos())
	require.NoError(t, err)

	product := NewProduct("VODKA", 3, record, NewRenderer(nil).Options)

	assert.Equal(t, "vo-003", product.Id)
	assert.Equal(t, "titos-handmade-vodka", product.Slug)
	assert.Equal(t, "Vodka", product.Category)
	assert.Equal(t, 60, product.StockQuantity)
	assert.True(t, product.InStock)
	assert.Equal(t, DefaultImageUrl, product.Image)
	assert.Equal(t, []string{DefaultImageUrl}, product.Images)
	assert.Equal(t, 12, product.MonthsBack)
	assert.Len(t, product.Tags, 4)
}
