package state

import (
	"prodtable/internal/domain"
	"prodtable/internal/logic"
)

// AppState contains all the mutable UI state of the product table.
// Every mutator re-derives the display groups before returning.
type AppState struct {
	// Source data, never modified after construction
	Catalog domain.Catalog

	// Table controls
	SearchTerm string
	StockOnly  bool
	Sort       logic.SortState

	// Derived data
	Groups  []domain.DisplayGroup
	Err     error         // derivation error, Groups is nil when set
	Summary logic.Summary // counts for the status line

	// UI state
	SelectedIndex  int           // cursor row among product rows
	FocusedColumn  domain.Column // header that enter would click
	ViewportOffset int           // first visible product row
	ViewportHeight int           // product rows that fit on screen
	ShowHelp       bool
	StatusMessage  string
}

// NewAppState creates the state for a catalog and derives the first view
func NewAppState(catalog domain.Catalog) *AppState {
	s := &AppState{
		Catalog:        catalog,
		Sort:           logic.DefaultSortState(),
		FocusedColumn:  domain.ColumnName,
		ViewportHeight: 20,
	}
	s.Recompute()
	return s
}

// View returns the snapshot handed to the derivation pipeline
func (s *AppState) View() logic.View {
	return logic.View{
		SearchTerm: s.SearchTerm,
		StockOnly:  s.StockOnly,
		Sort:       s.Sort,
	}
}

// Recompute re-runs the pipeline against the current controls
func (s *AppState) Recompute() {
	groups, err := logic.Derive(s.Catalog, s.View())
	if err != nil {
		s.Groups = nil
		s.Err = err
		s.Summary = logic.Summary{}
	} else {
		s.Groups = groups
		s.Err = nil
		s.Summary = logic.Stats(groups)
	}
	s.clampSelection()
}

// SetSearchTerm handles a change of the search box text
func (s *AppState) SetSearchTerm(term string) {
	if term == s.SearchTerm {
		return
	}
	s.SearchTerm = term
	s.Recompute()
}

// SetStockOnly handles a change of the stock checkbox
func (s *AppState) SetStockOnly(stockOnly bool) {
	if stockOnly == s.StockOnly {
		return
	}
	s.StockOnly = stockOnly
	s.Recompute()
}

// ToggleStockOnly flips the stock checkbox
func (s *AppState) ToggleStockOnly() {
	s.SetStockOnly(!s.StockOnly)
}

// ClickHeader advances the sort state machine for col
func (s *AppState) ClickHeader(col domain.Column) {
	s.Sort = s.Sort.Click(col)
	s.FocusedColumn = col
	s.Recompute()
}

// SetSort replaces the sort state, used for the initial configuration
func (s *AppState) SetSort(sort logic.SortState) {
	s.Sort = sort
	s.FocusedColumn = sort.Active
	s.Recompute()
}

// ProductCount returns the number of product rows currently displayed
func (s *AppState) ProductCount() int {
	return s.Summary.Products
}

// ProductAt returns the product on display row index, counting only product rows
func (s *AppState) ProductAt(index int) (domain.Product, bool) {
	if index < 0 {
		return domain.Product{}, false
	}
	for _, g := range s.Groups {
		if index < len(g.Products) {
			return g.Products[index], true
		}
		index -= len(g.Products)
	}
	return domain.Product{}, false
}

// MoveSelection moves the cursor by delta rows and keeps it visible
func (s *AppState) MoveSelection(delta int) {
	s.SelectedIndex += delta
	s.clampSelection()
}

// SelectFirst moves the cursor to the first row
func (s *AppState) SelectFirst() {
	s.SelectedIndex = 0
	s.clampSelection()
}

// SelectLast moves the cursor to the last row
func (s *AppState) SelectLast() {
	s.SelectedIndex = s.ProductCount() - 1
	s.clampSelection()
}

// clampSelection keeps the cursor inside the list and the viewport around it
func (s *AppState) clampSelection() {
	total := s.ProductCount()
	if s.SelectedIndex >= total {
		s.SelectedIndex = total - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}

	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// SetViewportHeight updates the number of product rows that fit on screen
func (s *AppState) SetViewportHeight(height int) {
	s.ViewportHeight = height
	s.clampSelection()
}
