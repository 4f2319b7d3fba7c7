package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prodtable/internal/domain"
)

// GroupRenderer handles rendering of category heading rows
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroupHeader renders the heading row of a category
func (g *GroupRenderer) RenderGroupHeader(group domain.DisplayGroup, continued bool) string {
	label := group.Category
	if continued {
		label += " (cont.)"
	}
	return g.styles.Category.Render(fmt.Sprintf("%s (%d)", label, len(group.Products)))
}

// highlightMatch highlights the first case-insensitive occurrence of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// lowering can change byte lengths outside ASCII; fall back to no highlight
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
