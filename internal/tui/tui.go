package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal view of the film catalog. It reads the store and sends
// the user's intents back to it as actions.
type TUI struct {
	store   state.Store[catalog.State]
	version string
	logger  *logger.Logger
}

// New creates the terminal UI over store.
func New(store state.Store[catalog.State], version string, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{store: store, version: version, logger: log}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newCatalogModel(t.store, t.version),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	stop := t.forwardChanges(program)
	defer stop()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal UI error: %w", err)
	}

	t.logger.Debug().Str("func", "tui.Run").Msg("terminal UI closed by user")
	return nil
}

// forwardChanges subscribes to the store and notifies program of changes.
// Changes arriving while a notification is pending are coalesced.
func (t *TUI) forwardChanges(program *tea.Program) (stop func()) {
	changes := make(chan struct{}, 1)
	done := make(chan struct{})

	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	unsubscribe := t.store.Subscribe(notify)
	notify()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-changes:
				program.Send(stateChangedMsg{})
			}
		}
	}()

	return func() {
		unsubscribe()
		close(done)
	}
}
