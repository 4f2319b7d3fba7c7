package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prodtable/internal/ui/input/types"
)

// SearchMode edits the search box. Every keystroke is a text change;
// esc puts back the term that was active when the mode was entered.
type SearchMode struct {
	TextInputMode
	original string
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.original = ctx.SearchTerm()
	if m.textInput != nil {
		m.textInput.SetValue(m.original)
		m.textInput.CursorEnd()
	}
	return m.TextInputMode.Enter(ctx)
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "esc" {
		if m.textInput != nil {
			m.textInput.SetValue(m.original)
		}
		return []types.Action{
			types.CancelTextAction{Restore: m.original},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
