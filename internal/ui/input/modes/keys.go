package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal mode bindings; it also feeds the short help line
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Search     key.Binding
	Clear      key.Binding
	Stock      key.Binding
	SortName   key.Binding
	SortPrice  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	Click      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings used by the table
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+u", "x"), key.WithHelp("x", "clear search")),
		Stock:      key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "in stock only")),
		SortName:   key.NewBinding(key.WithKeys("n", "1"), key.WithHelp("n", "sort name")),
		SortPrice:  key.NewBinding(key.WithKeys("p", "2"), key.WithHelp("p", "sort price")),
		FocusLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		FocusRight: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next column")),
		Click:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sort column")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Stock, k.SortName, k.SortPrice, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Clear, k.Stock},
		{k.SortName, k.SortPrice, k.FocusLeft, k.FocusRight, k.Click},
		{k.Help, k.Quit},
	}
}
