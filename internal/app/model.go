// Package app is the demo program's bubbletea model. It drives every overlay
// kind through the registry and composites them with the layer.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/overlaykit/internal/config"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/types"
	"github.com/riordanpawley/overlaykit/internal/ui/layer"
	"github.com/riordanpawley/overlaykit/internal/ui/statusbar"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
	"github.com/riordanpawley/overlaykit/internal/ui/widgets"
)

const (
	maxEvents    = 12
	progressStep = 0.1
	progressTick = 200 * time.Millisecond
)

// progressTickMsg advances the progress modal with ID
type progressTickMsg struct {
	id string
}

// state is shared by all copies of Model. Lifecycle callbacks run inside
// registry calls and write here.
type state struct {
	events  []string
	pending []tea.Cmd
	counter int
	prompt  *widgets.Prompt
}

// Model is the main application model
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	styles *styles.Styles
	keys   keyMap

	reg     *overlay.Registry
	layer   *layer.Layer
	popups  *overlay.Controller
	toasts  *overlay.Controller
	modals  *overlay.Controller
	dialogs *overlay.Controller

	state *state

	width  int
	height int
}

// New creates the model and attaches a layer to reg
func New(cfg *config.Config, reg *overlay.Registry, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	st := styles.New()

	return Model{
		cfg:     cfg,
		logger:  logger,
		styles:  st,
		keys:    defaultKeyMap(),
		reg:     reg,
		layer:   layer.New(reg, st, layer.WithPopupWidth(cfg.Popup.Width), layer.WithToastMaxWidth(cfg.Toast.MaxWidth)),
		popups:  overlay.NewPopupController(reg),
		toasts:  overlay.NewController(reg, overlay.KindToast),
		modals:  overlay.NewController(reg, overlay.KindModal),
		dialogs: overlay.NewController(reg, overlay.KindDialog),
		state:   &state{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.layer.Update(msg) {
		return m, m.drain()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case progressTickMsg:
		return m, m.advanceProgress(msg.id)

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.drain())
	}

	// Non-key messages such as cursor blinks go to the prompt
	if m.state.prompt != nil {
		cmd, closed := m.state.prompt.Update(msg)
		if closed {
			m.state.prompt = nil
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Prompt owns the keyboard while open
	if m.state.prompt != nil {
		cmd, closed := m.state.prompt.Update(msg)
		if closed {
			m.state.prompt = nil
		}
		return cmd
	}

	// Dialogs are answered before anything else
	if top, ok := m.reg.Top(overlay.KindDialog); ok {
		dc, err := m.reg.ContextFor(top.ID, overlay.KindDialog)
		if err != nil {
			m.logger.Warn("dialog lookup failed", "error", err)
			return nil
		}
		widgets.ConfirmKey(dc, msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Popup):
		m.openPopup()

	case key.Matches(msg, m.keys.Toast):
		m.notify(types.ToastSuccess, fmt.Sprintf("Toast #%d", m.next()))

	case key.Matches(msg, m.keys.Confirm):
		m.openConfirm()

	case key.Matches(msg, m.keys.Prompt):
		m.openPrompt()

	case key.Matches(msg, m.keys.Progress):
		return m.openProgress()

	case key.Matches(msg, m.keys.CloseTop):
		if !m.popups.CloseTop() {
			m.modals.CloseTop()
		}

	case key.Matches(msg, m.keys.CloseAll):
		m.reg.RemoveAll()
		m.record("closed everything")
	}

	return nil
}

func (m Model) openPopup() {
	n := m.next()
	m.popups.Open(widgets.Message(m.styles), overlay.Options{
		Data: map[string]any{
			"message": fmt.Sprintf("Popup #%d", n),
			"hint":    "Esc: Close",
		},
		OnClose: func(any) {
			m.record(fmt.Sprintf("popup #%d closed", n))
		},
	})
}

func (m Model) openConfirm() {
	m.dialogs.Open(widgets.Confirm(m.styles), overlay.Options{
		Data: widgets.ConfirmData("Confirm", "Spawn a toast from the close callback?"),
		OnClose: func(data any) {
			if widgets.Confirmed(data) {
				m.notify(types.ToastInfo, "Confirmed")
				return
			}
			m.record("confirm dismissed")
		},
	})
}

func (m Model) openPrompt() {
	m.state.prompt = widgets.OpenPrompt(m.popups, m.styles, "What is your name?", "Ada", func(data any) {
		result, _ := data.(map[string]any)
		if submitted, _ := result["submitted"].(bool); !submitted {
			m.record("prompt cancelled")
			return
		}
		m.notify(types.ToastSuccess, fmt.Sprintf("Hello, %v", result["value"]))
	})
	m.state.pending = append(m.state.pending, textinput.Blink)
}

func (m Model) openProgress() tea.Cmd {
	id := m.modals.Open(widgets.Progress(m.styles, 40), overlay.Options{
		Data: widgets.ProgressData("Sync", "Uploading overlays"),
		OnClose: func(data any) {
			m.record("progress closed")
		},
	})
	return tickProgress(id)
}

// advanceProgress feeds the next percentage to the modal through an async
// update, the way a background job would
func (m Model) advanceProgress(id string) tea.Cmd {
	rec, ok := m.reg.Get(id)
	if !ok {
		return nil
	}
	data, _ := rec.Data.(map[string]any)
	pct, _ := data["percent"].(float64)
	pct += progressStep

	if pct >= 1 {
		m.modals.Close(id)
		m.notify(types.ToastSuccess, "Upload finished")
		return m.drain()
	}
	return tea.Batch(layer.UpdateCmd(id, map[string]any{"percent": pct}), tickProgress(id))
}

func tickProgress(id string) tea.Cmd {
	return tea.Tick(progressTick, func(time.Time) tea.Msg {
		return progressTickMsg{id: id}
	})
}

// notify opens a toast that closes itself after the configured duration
func (m Model) notify(level types.ToastLevel, message string) {
	id := m.toasts.Open(widgets.Message(m.styles), overlay.Options{
		Data: map[string]any{
			"message": message,
			"level":   level,
		},
	})
	m.state.pending = append(m.state.pending, layer.CloseAfter(id, m.cfg.Toast.Duration()))
	m.record(fmt.Sprintf("%s toast: %s", level, message))
}

func (m Model) quit() tea.Cmd {
	m.reg.RemoveAll()
	return tea.Quit
}

// drain returns the commands queued by lifecycle callbacks
func (m Model) drain() tea.Cmd {
	if len(m.state.pending) == 0 {
		return nil
	}
	cmds := m.state.pending
	m.state.pending = nil
	return tea.Batch(cmds...)
}

func (m Model) next() int {
	m.state.counter++
	return m.state.counter
}

func (m Model) record(event string) {
	m.logger.Info("overlay event", "event", event)
	m.state.events = append(m.state.events, event)
	if len(m.state.events) > maxEvents {
		m.state.events = m.state.events[len(m.state.events)-maxEvents:]
	}
}

// Events returns the most recent lifecycle events, oldest first
func (m Model) Events() []string {
	out := make([]string, len(m.state.events))
	copy(out, m.state.events)
	return out
}

// View renders the base screen with overlays composited on top
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.layer.View(m.renderBase(), m.width, m.height)
}

func (m Model) renderBase() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("overlaykit"))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render(fmt.Sprintf("%d overlays active", m.reg.Len())))
	b.WriteString("\n\n")

	for _, event := range m.state.events {
		b.WriteString(m.styles.MenuItem.Render("• " + event))
		b.WriteString("\n")
	}

	body := m.styles.App.Render(b.String())
	bodyHeight := max(0, m.height-1)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, statusbar.New(m.mode(), m.width, m.styles).Render())
}

// mode reports which overlay owns the keyboard
func (m Model) mode() types.Mode {
	if m.state.prompt != nil {
		return types.ModePrompt
	}
	if _, ok := m.reg.Top(overlay.KindDialog); ok {
		return types.ModeDialog
	}
	records := m.reg.List()
	for i := len(records) - 1; i >= 0; i-- {
		switch records[i].Kind {
		case overlay.KindPopup:
			return types.ModePopup
		case overlay.KindModal:
			return types.ModeModal
		}
	}
	return types.ModeNormal
}
