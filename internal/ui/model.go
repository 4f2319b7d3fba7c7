package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prodtable/internal/domain"
	"prodtable/internal/logic"
	"prodtable/internal/ui/input"
	inputtypes "prodtable/internal/ui/input/types"
	"prodtable/internal/ui/state"
	"prodtable/internal/ui/viewmodels"
	"prodtable/internal/ui/views"
)

// layoutOverhead is the number of terminal lines used by everything but
// the table body: padding, title, search box, checkbox, header, status, help
// and the two scroll indicators.
const layoutOverhead = 17

const statusTimeout = 2 * time.Second

// Options holds the initial control values
type Options struct {
	SearchTerm string
	StockOnly  bool
	Sort       logic.SortState
}

// Model represents the UI state
type Model struct {
	state  *state.AppState
	logger *zap.Logger

	width       int
	height      int
	inPagerMode bool
	statusSeq   int // bumped per status message; older clear ticks are ignored

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model for the catalog
func NewModel(catalog domain.Catalog, opts Options, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState(catalog)
	appState.StockOnly = opts.StockOnly
	appState.SearchTerm = opts.SearchTerm
	appState.SetSort(opts.Sort)

	handler := input.New()
	handler.TextInput().Width = views.SearchInputWidth
	handler.SetText(opts.SearchTerm)

	m := &Model{
		state:        appState,
		logger:       logger,
		renderer:     views.NewRenderer(),
		inputHandler: handler,
		helpRenderer: NewHelpRenderer(handler.Keys()),
	}
	m.viewModel = viewmodels.NewViewModel(appState, handler.Keys(), *handler.TextInput())
	m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContent())

	m.logDerivation("initial derivation")
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			// fall back to the built-in popup
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.ShowHelp = true
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput(), m.inputHandler.CurrentMode() == inputtypes.ModeSearch)
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction applies one input action to the state
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		m.setSearchTerm(a.Text)

	case inputtypes.SubmitTextAction:
		m.setSearchTerm(a.Text)

	case inputtypes.CancelTextAction:
		m.setSearchTerm(a.Restore)

	case inputtypes.ClearSearchAction:
		m.inputHandler.SetText("")
		m.setSearchTerm("")

	case inputtypes.ToggleStockAction:
		m.state.ToggleStockOnly()
		m.logger.Debug("stock filter changed", zap.Bool("stock_only", m.state.StockOnly))
		m.logDerivation("stock filter")
		m.updateViewportHeight()
		if m.state.StockOnly {
			return m.setStatus("Showing only products in stock")
		}
		return m.setStatus("Showing all products")

	case inputtypes.ClickHeaderAction:
		col := domain.Column(a.Column)
		m.state.ClickHeader(col)
		m.logger.Debug("header clicked",
			zap.Stringer("column", col),
			zap.Stringer("order", m.state.Sort.Order))
		m.logDerivation("header click")
		m.updateViewportHeight()

	case inputtypes.FocusColumnAction:
		count := (&input.ModelContext{State: m.state}).ColumnCount()
		next := int(m.state.FocusedColumn)
		if a.Direction == "left" {
			next = (next + count - 1) % count
		} else {
			next = (next + 1) % count
		}
		m.state.FocusedColumn = domain.Column(next)

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) setSearchTerm(term string) {
	if term == m.state.SearchTerm {
		return
	}
	m.state.SetSearchTerm(term)
	m.logger.Debug("search changed", zap.String("term", term))
	m.logDerivation("search")
	m.updateViewportHeight()
}

func (m *Model) navigate(direction string) {
	page := m.state.ViewportHeight
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		m.state.MoveSelection(-1)
	case "down":
		m.state.MoveSelection(1)
	case "pageup":
		m.state.MoveSelection(-page)
	case "pagedown":
		m.state.MoveSelection(page)
	case "home":
		m.state.SelectFirst()
	case "end":
		m.state.SelectLast()
	}
}

// updateViewportHeight recalculates how many product rows fit; each visible
// category heading takes a line too
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	height := m.height - layoutOverhead - len(m.state.Groups)
	if height < 3 {
		height = 3
	}
	m.state.SetViewportHeight(height)
}

// logDerivation records a failed derivation and shows it in the status line
func (m *Model) logDerivation(trigger string) {
	if m.state.Err == nil {
		m.logger.Debug("table derived",
			zap.String("trigger", trigger),
			zap.Int("groups", m.state.Summary.Groups),
			zap.Int("products", m.state.Summary.Products))
		return
	}
	m.logger.Warn("cannot derive table", zap.String("trigger", trigger), zap.Error(m.state.Err))
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// setStatus shows a transient message and schedules its removal
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusSeq++
	m.state.StatusMessage = msg
	return clearStatusAfter(m.statusSeq, statusTimeout)
}

// clearStatusAfter returns a command that clears status message seq later
func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
