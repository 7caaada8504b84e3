package layer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/overlaykit/internal/overlay"
)

// UpdateMsg merges Data into the overlay with ID. Sent by async producers.
type UpdateMsg struct {
	ID   string
	Data any
}

// CloseMsg closes the overlay with ID
type CloseMsg struct {
	ID string
}

// CloseKindMsg closes every overlay of Kind
type CloseKindMsg struct {
	Kind overlay.Kind
}

// UpdateCmd returns a command that delivers an UpdateMsg
func UpdateCmd(id string, data any) tea.Cmd {
	return func() tea.Msg {
		return UpdateMsg{ID: id, Data: data}
	}
}

// CloseCmd returns a command that delivers a CloseMsg
func CloseCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return CloseMsg{ID: id}
	}
}

// CloseAfter closes the overlay once d has elapsed. Closing an overlay that is
// already gone is a no-op, so timers never need cancelling.
func CloseAfter(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CloseMsg{ID: id}
	})
}

// Update routes overlay messages into the registry. It reports whether msg was
// one of them.
func (l *Layer) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case UpdateMsg:
		l.reg.Update(msg.ID, msg.Data)
		return true
	case CloseMsg:
		l.reg.Remove(msg.ID)
		return true
	case CloseKindMsg:
		overlay.NewController(l.reg, msg.Kind).CloseAll()
		return true
	}
	return false
}
