package logic

import (
	"sort"

	"prodtable/internal/domain"
)

// GroupByCategory splits an already sorted list into one group per category.
// Members keep their sorted position; groups come out ordered by category
// label. Categories without products never produce a group.
func GroupByCategory(sorted []domain.Product) []domain.DisplayGroup {
	index := make(map[string]int)
	groups := make([]domain.DisplayGroup, 0)

	for _, p := range sorted {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, domain.DisplayGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}

// DeriveGroups sorts products by the given column and order, then groups them
func DeriveGroups(products []domain.Product, column domain.Column, order domain.Order) ([]domain.DisplayGroup, error) {
	sorted, err := SortProducts(products, column, order)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(sorted), nil
}
