package logic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"prodtable/internal/domain"
)

// CurrencySymbol is stripped from the front of a price before parsing
const CurrencySymbol = "$"

// ErrInvalidPrice is wrapped by every price parsing failure
var ErrInvalidPrice = errors.New("price is not a number")

// ParsePrice reads a currency formatted price such as "$2" or "$1.50"
func ParsePrice(price string) (float64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), CurrencySymbol))
	if raw == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidPrice)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return value, nil
}

// SortProducts orders products by one column. OrderNone keeps the input order.
// The result is a new slice; the sort is stable so equal keys keep their
// relative input order in both directions.
func SortProducts(products []domain.Product, column domain.Column, order domain.Order) ([]domain.Product, error) {
	if order == domain.OrderNone {
		return products, nil
	}

	entries := make([]sortEntry, len(products))
	for i, p := range products {
		entries[i] = sortEntry{product: p}
	}
	if column == domain.ColumnPrice {
		prices, err := parsePrices(products)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			entries[i].price = prices[i]
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		c := compareEntries(entries[i], entries[j], column)
		if order == domain.OrderDesc {
			c = -c
		}
		return c < 0
	})

	sorted := make([]domain.Product, len(entries))
	for i, e := range entries {
		sorted[i] = e.product
	}
	return sorted, nil
}

// sortEntry pairs a product with its parsed sort key
type sortEntry struct {
	product domain.Product
	price   float64
}

// compareEntries is a three-way comparator; 0 means the entries tie
func compareEntries(a, b sortEntry, column domain.Column) int {
	if column == domain.ColumnPrice {
		return comparePrices(a.price, b.price)
	}
	return strings.Compare(a.product.Name, b.product.Name)
}

// parsePrices parses every price, reporting the first malformed record
func parsePrices(products []domain.Product) ([]float64, error) {
	prices := make([]float64, len(products))
	for i, p := range products {
		value, err := ParsePrice(p.Price)
		if err != nil {
			return nil, &domain.ParseError{Index: i, Product: p, Err: err}
		}
		prices[i] = value
	}
	return prices, nil
}

func comparePrices(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
