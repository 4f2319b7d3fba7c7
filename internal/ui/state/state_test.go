package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodtable/internal/domain"
	"prodtable/internal/logic"
)

func catalog() domain.Catalog {
	return domain.Catalog{
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
	}
}

func TestNewAppStateDefaults(t *testing.T) {
	s := NewAppState(catalog())

	assert.Equal(t, "", s.SearchTerm)
	assert.False(t, s.StockOnly)
	assert.Equal(t, logic.DefaultSortState(), s.Sort)
	require.NoError(t, s.Err)
	require.Len(t, s.Groups, 2)
	assert.Equal(t, 3, s.ProductCount())
}

func TestSetStockOnlyRecomputes(t *testing.T) {
	s := NewAppState(catalog())
	s.SetStockOnly(true)

	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Fruits", s.Groups[0].Category)
	assert.Equal(t, "Apple", s.Groups[0].Products[0].Name)

	s.ToggleStockOnly()
	assert.False(t, s.StockOnly)
	assert.Len(t, s.Groups, 2)
}

func TestSetSearchTermRecomputes(t *testing.T) {
	s := NewAppState(catalog())
	s.SetSearchTerm("pump")

	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Vegetables", s.Groups[0].Category)

	s.SetSearchTerm("zzz")
	assert.Empty(t, s.Groups)
	assert.Equal(t, 0, s.ProductCount())
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestClickHeader(t *testing.T) {
	s := NewAppState(catalog())

	s.ClickHeader(domain.ColumnPrice)
	assert.Equal(t, domain.ColumnPrice, s.FocusedColumn)
	assert.Equal(t, domain.OrderAsc, s.Sort.OrderFor(domain.ColumnPrice))
	assert.Equal(t, "Apple", s.Groups[0].Products[0].Name)

	s.ClickHeader(domain.ColumnPrice)
	assert.Equal(t, "Passionfruit", s.Groups[0].Products[0].Name)
}

func TestMalformedPriceSetsError(t *testing.T) {
	s := NewAppState(domain.Catalog{
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Fruits", Price: "cheap", Stocked: true, Name: "Lemon"},
	})

	s.ClickHeader(domain.ColumnPrice)
	require.Error(t, s.Err)
	assert.Nil(t, s.Groups)
	assert.Equal(t, 0, s.ProductCount())

	var perr *domain.ParseError
	require.ErrorAs(t, s.Err, &perr)
	assert.Equal(t, "Lemon", perr.Product.Name)

	// the cycle continues: desc still fails, none recovers
	s.ClickHeader(domain.ColumnPrice)
	require.Error(t, s.Err)
	s.ClickHeader(domain.ColumnPrice)
	require.NoError(t, s.Err)
	assert.Len(t, s.Groups, 1)
}

func TestProductAt(t *testing.T) {
	s := NewAppState(catalog())

	p, ok := s.ProductAt(0)
	require.True(t, ok)
	assert.Equal(t, "Passionfruit", p.Name)

	p, ok = s.ProductAt(2)
	require.True(t, ok)
	assert.Equal(t, "Pumpkin", p.Name)

	_, ok = s.ProductAt(3)
	assert.False(t, ok)
	_, ok = s.ProductAt(-1)
	assert.False(t, ok)
}

func TestSelectionAndViewport(t *testing.T) {
	var products domain.Catalog
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		products = append(products, domain.Product{Name: name, Category: "X", Price: "$1", Stocked: true})
	}
	s := NewAppState(products)
	s.SetViewportHeight(3)

	s.MoveSelection(-5)
	assert.Equal(t, 0, s.SelectedIndex)

	s.MoveSelection(4)
	assert.Equal(t, 4, s.SelectedIndex)
	assert.Equal(t, 2, s.ViewportOffset)

	s.SelectLast()
	assert.Equal(t, 7, s.SelectedIndex)
	assert.Equal(t, 5, s.ViewportOffset)

	s.SelectFirst()
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)

	// shrinking the list pulls the cursor back in range
	s.SelectLast()
	s.SetSearchTerm("a")
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}
