package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	InfoBox     lipgloss.Style
	ErrorBox    lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	Header      lipgloss.Style
	HeaderFocus lipgloss.Style
	Category    lipgloss.Style
	OutOfStock  lipgloss.Style
	Price       lipgloss.Style
	SelectionBg lipgloss.Style
	SearchBox   lipgloss.Style
	SearchFocus lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("203")).
			BorderForeground(lipgloss.Color("203")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Header:      lipgloss.NewStyle().Bold(true).Underline(true),
		HeaderFocus: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		Category:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		OutOfStock:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
	}
}
