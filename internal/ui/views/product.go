package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prodtable/internal/domain"
)

// Column widths of the product table
const (
	NameWidth  = 24
	PriceWidth = 10

	// SearchInputWidth fits the search field inside the box padding, leaving
	// a cell for the cursor
	SearchInputWidth = NameWidth + PriceWidth - 3
)

// ProductRenderer handles rendering of product rows
type ProductRenderer struct {
	styles *Styles
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles) *ProductRenderer {
	return &ProductRenderer{
		styles: styles,
	}
}

// RenderProduct renders one row; out-of-stock names are shown in red
func (r *ProductRenderer) RenderProduct(p domain.Product, isSelected bool, searchTerm string, width int) string {
	nameStyle := lipgloss.NewStyle()
	if !p.Stocked {
		nameStyle = r.styles.OutOfStock
	}
	priceStyle := r.styles.Price
	if isSelected {
		nameStyle = nameStyle.Background(lipgloss.Color("238"))
		priceStyle = priceStyle.Background(lipgloss.Color("238"))
	}

	name := highlightMatch(p.Name, searchTerm, r.styles.Highlight.Inherit(nameStyle), nameStyle)
	name = padRight(name, NameWidth, isSelected)

	line := "  " + name + priceStyle.Render(padPlain(p.Price, PriceWidth))

	if isSelected && width > 0 {
		lineLen := lipgloss.Width(line)
		if lineLen < width {
			line += r.styles.SelectionBg.Render(strings.Repeat(" ", width-lineLen))
		}
	}
	return line
}

// padRight pads a rendered string to width visible cells
func padRight(s string, width int, selected bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	pad := strings.Repeat(" ", gap)
	if selected {
		pad = lipgloss.NewStyle().Background(lipgloss.Color("238")).Render(pad)
	}
	return s + pad
}

func padPlain(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
