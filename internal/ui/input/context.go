package input

import (
	"prodtable/internal/domain"
	"prodtable/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// SearchTerm returns the active search term
func (c *ModelContext) SearchTerm() string {
	return c.State.SearchTerm
}

// FocusedColumn returns the header enter would click
func (c *ModelContext) FocusedColumn() int {
	return int(c.State.FocusedColumn)
}

// ColumnCount returns the number of sortable columns
func (c *ModelContext) ColumnCount() int {
	return int(domain.ColumnPrice) + 1
}
