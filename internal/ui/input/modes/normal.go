package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"prodtable/internal/domain"
	"prodtable/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Clear):
		if ctx.SearchTerm() == "" {
			return nil, false
		}
		return []types.Action{types.ClearSearchAction{}}, true

	case key.Matches(msg, m.keys.Stock):
		return []types.Action{types.ToggleStockAction{}}, true

	case key.Matches(msg, m.keys.SortName):
		return []types.Action{types.ClickHeaderAction{Column: int(domain.ColumnName)}}, true

	case key.Matches(msg, m.keys.SortPrice):
		return []types.Action{types.ClickHeaderAction{Column: int(domain.ColumnPrice)}}, true

	case key.Matches(msg, m.keys.FocusLeft):
		return []types.Action{types.FocusColumnAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.FocusRight):
		return []types.Action{types.FocusColumnAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.Click):
		return []types.Action{types.ClickHeaderAction{Column: ctx.FocusedColumn()}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
