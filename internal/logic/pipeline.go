package logic

import "prodtable/internal/domain"

// View is the snapshot of UI state the pipeline derives from
type View struct {
	SearchTerm string
	StockOnly  bool
	Sort       SortState
}

// Derive runs the full pipeline: stock filter, name filter, sort and group
func Derive(catalog domain.Catalog, view View) ([]domain.DisplayGroup, error) {
	products := FilterStock(catalog, view.StockOnly)
	products = FilterByName(products, view.SearchTerm)
	return DeriveGroups(products, view.Sort.Active, view.Sort.Order)
}

// Summary holds the counts shown in the status line
type Summary struct {
	Groups     int
	Products   int
	OutOfStock int
}

// Stats counts what a derivation produced
func Stats(groups []domain.DisplayGroup) Summary {
	s := Summary{Groups: len(groups)}
	for _, g := range groups {
		for _, p := range g.Products {
			s.Products++
			if !p.Stocked {
				s.OutOfStock++
			}
		}
	}
	return s
}
