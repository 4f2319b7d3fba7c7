package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"prodtable/internal/ui/input/modes"
	"prodtable/internal/ui/state"
	"prodtable/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state         *state.AppState
	width         int
	height        int
	help          help.Model
	keys          modes.KeyMap
	textInput     textinput.Model
	searchFocused bool
	helpContent   string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys modes.KeyMap, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:     appState,
		help:      help.New(),
		keys:      keys,
		textInput: textInput,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// UpdateTextInput updates the search box model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model, focused bool) {
	vm.textInput = textInput
	vm.searchFocused = focused
}

// SetHelpContent sets the text of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Groups:         vm.state.Groups,
		Err:            vm.state.Err,
		Summary:        vm.state.Summary,
		CatalogSize:    len(vm.state.Catalog),
		SearchTerm:     vm.state.SearchTerm,
		SearchInput:    vm.textInput.View(),
		SearchFocused:  vm.searchFocused,
		StockOnly:      vm.state.StockOnly,
		Sort:           vm.state.Sort,
		FocusedColumn:  vm.state.FocusedColumn,
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		StatusMessage:  vm.state.StatusMessage,
		ShowHelp:       vm.state.ShowHelp,
		HelpContent:    vm.helpContent,
		ShortHelp:      vm.help.ShortHelpView(vm.keys.ShortHelp()),
	}
}
