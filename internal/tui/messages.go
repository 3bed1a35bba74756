package tui

// stateChangedMsg tells the model to read the store again.
type stateChangedMsg struct{}

type clearStatusMsg struct{}
