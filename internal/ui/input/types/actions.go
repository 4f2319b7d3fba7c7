package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// CancelTextAction restores the text that was active before editing began
type CancelTextAction struct {
	Restore string
}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Table control actions
type ToggleStockAction struct{}

func (a ToggleStockAction) Type() string { return "toggle_stock" }

// ClickHeaderAction clicks the header of Column (a domain.Column value)
type ClickHeaderAction struct {
	Column int
}

func (a ClickHeaderAction) Type() string { return "click_header" }

type FocusColumnAction struct {
	Direction string // "left" or "right"
}

func (a FocusColumnAction) Type() string { return "focus_column" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
