package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prodtable/internal/domain"
	"prodtable/internal/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Groups         []domain.DisplayGroup
	Err            error
	Summary        logic.Summary
	CatalogSize    int
	SearchTerm     string
	SearchInput    string // rendered search box content
	SearchFocused  bool
	StockOnly      bool
	Sort           logic.SortState
	FocusedColumn  domain.Column
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	ShowHelp       bool
	HelpContent    string
	ShortHelp      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
	groupRender   *GroupRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles),
		groupRender:   NewGroupRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n")
	content.WriteString(r.renderStockToggle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	switch {
	case state.Err != nil:
		content.WriteString(r.RenderError(state.Err))
	case len(state.Groups) == 0:
		content.WriteString(r.styles.Dim.Render("No products match"))
	default:
		content.WriteString(r.renderTable(state))
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Status.Render(r.renderStatus(state)))
	if state.ShortHelp != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.ShortHelp))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the title with the active search on the right
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("prodtable")
	if state.SearchTerm == "" {
		return logo
	}

	filterText := r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchTerm))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(filterText)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + filterText
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	style := r.styles.SearchBox
	if state.SearchFocused {
		style = r.styles.SearchFocus
	}
	return style.Width(NameWidth + PriceWidth).Render(state.SearchInput)
}

func (r *Renderer) renderStockToggle(state ViewState) string {
	box := "[ ]"
	if state.StockOnly {
		box = "[x]"
	}
	return box + " Only show products in stock"
}

// renderHeader renders the column headers with their sort markers
func (r *Renderer) renderHeader(state ViewState) string {
	cell := func(col domain.Column, width int) string {
		label := col.Title()
		if symbol := state.Sort.OrderFor(col).Symbol(); symbol != "" {
			label += " " + symbol
		}
		style := r.styles.Header
		if col == state.FocusedColumn {
			style = r.styles.HeaderFocus
		}
		return padPlain(style.Render(label), width)
	}
	return "  " + cell(domain.ColumnName, NameWidth) + cell(domain.ColumnPrice, PriceWidth)
}

// renderTable renders the visible window of category headings and product rows
func (r *Renderer) renderTable(state ViewState) string {
	height := state.ViewportHeight
	if height <= 0 {
		height = state.Summary.Products
	}
	start := state.ViewportOffset
	end := start + height

	var lines []string
	row := 0
	for _, group := range state.Groups {
		groupStart := row
		headerDone := false
		for _, p := range group.Products {
			if row >= start && row < end {
				if !headerDone {
					lines = append(lines, r.groupRender.RenderGroupHeader(group, row > groupStart))
					headerDone = true
				}
				lines = append(lines, r.productRender.RenderProduct(p, row == state.SelectedIndex, state.SearchTerm, state.Width-4))
			}
			row++
		}
	}

	if start > 0 {
		lines = append([]string{r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start))}, lines...)
	}
	if end < row {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", row-end)))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders the error indicator shown instead of the table
func (r *Renderer) RenderError(err error) string {
	msg := err.Error()
	var perr *domain.ParseError
	if errors.As(err, &perr) {
		msg = fmt.Sprintf("Cannot sort by price: %q has price %q", perr.Product.Name, perr.Product.Price)
	}
	return r.styles.ErrorBox.Render("⚠ " + msg)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		return state.StatusMessage
	}
	if state.Err != nil {
		return "Table unavailable"
	}
	s := state.Summary
	status := fmt.Sprintf("%d of %d products in %d categories", s.Products, state.CatalogSize, s.Groups)
	if s.OutOfStock > 0 {
		status += fmt.Sprintf(", %d out of stock", s.OutOfStock)
	}
	return status
}
