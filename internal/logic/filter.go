package logic

import (
	"strings"

	"prodtable/internal/domain"
)

// FilterStock drops out-of-stock products when stockOnly is set.
// With stockOnly false the input slice is returned as is.
func FilterStock(products []domain.Product, stockOnly bool) []domain.Product {
	if !stockOnly {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Stocked {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByName keeps products whose name contains term, ignoring case.
// An empty term returns the input slice as is.
func FilterByName(products []domain.Product, term string) []domain.Product {
	if term == "" {
		return products
	}

	query := strings.ToLower(term)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if MatchesName(p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// MatchesName checks a product against an already lowered query
func MatchesName(p domain.Product, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerQuery)
}
