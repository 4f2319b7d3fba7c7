package logic

import (
	"fmt"
	"strings"

	"prodtable/internal/domain"
)

// SortState tracks which column governs ordering and in which direction.
// Only the active column can carry a non-none order.
type SortState struct {
	Active domain.Column
	Order  domain.Order
}

// DefaultSortState is the initial state: name column, no ordering
func DefaultSortState() SortState {
	return SortState{Active: domain.ColumnName, Order: domain.OrderNone}
}

// Click handles a header click on col. Clicking the active column advances
// its order; clicking the other column makes it active and advances it from
// none, which resets the previously active column.
func (s SortState) Click(col domain.Column) SortState {
	current := s.OrderFor(col)
	return SortState{Active: col, Order: current.Next()}
}

// OrderFor returns the order shown on the header of col
func (s SortState) OrderFor(col domain.Column) domain.Order {
	if col != s.Active {
		return domain.OrderNone
	}
	return s.Order
}

// IsSorted reports whether any column currently orders the list
func (s SortState) IsSorted() bool {
	return s.Order != domain.OrderNone
}

// ParseSortSpec reads "column" or "column:order", e.g. "price:desc".
// A column without an order sorts ascending; an empty spec is unsorted.
func ParseSortSpec(spec string) (SortState, error) {
	if spec == "" {
		return DefaultSortState(), nil
	}

	colPart, orderPart, hasOrder := strings.Cut(spec, ":")
	colPart = strings.ToLower(strings.TrimSpace(colPart))
	if colPart == "" {
		return SortState{}, fmt.Errorf("sort spec %q has no column", spec)
	}
	col, err := domain.ParseColumn(colPart)
	if err != nil {
		return SortState{}, err
	}

	order := domain.OrderAsc
	if hasOrder {
		order, err = domain.ParseOrder(strings.ToLower(strings.TrimSpace(orderPart)))
		if err != nil {
			return SortState{}, err
		}
	}
	return SortState{Active: col, Order: order}, nil
}
