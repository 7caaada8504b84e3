package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
)

// Prompt is a popup with a single text input. The textinput model lives here;
// the overlay payload carries its rendered view so the layer can repaint it.
type Prompt struct {
	ctrl  *overlay.Controller
	id    string
	input textinput.Model
}

// OpenPrompt opens a prompt popup. onClose receives {"value", "submitted"}.
func OpenPrompt(ctrl *overlay.Controller, st *styles.Styles, label, placeholder string, onClose func(data any)) *Prompt {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 120
	input.Width = 36
	input.Focus()

	p := &Prompt{ctrl: ctrl, input: input}
	p.id = ctrl.Open(func(dc *overlay.DataContext) string {
		text, _ := overlay.Field[string](dc, "label")
		view, _ := overlay.Field[string](dc, "input")
		return lipgloss.JoinVertical(lipgloss.Left,
			st.Label.Render(text),
			view,
			st.Footer.Render("Enter: Submit • Esc: Cancel"),
		)
	}, overlay.Options{
		Data: map[string]any{
			"label": label,
			"input": input.View(),
			"value": "",
		},
		OnClose: onClose,
	})
	return p
}

// ID returns the overlay ID of the prompt
func (p *Prompt) ID() string {
	return p.id
}

// Value returns the current input text
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Update feeds a message to the text input. It reports whether the prompt
// closed.
func (p *Prompt) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !p.ctrl.IsOpen(p.id) {
		return nil, true
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			p.closeWith(true)
			return nil, true
		case "esc":
			p.closeWith(false)
			return nil, true
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.ctrl.UpdateData(p.id, map[string]any{
		"input": p.input.View(),
		"value": p.input.Value(),
	})
	return cmd, false
}

func (p *Prompt) closeWith(submitted bool) {
	dc, err := p.ctrl.Registry().ContextFor(p.id, p.ctrl.Kind())
	if err != nil {
		return
	}
	dc.CloseWith(map[string]any{
		"value":     p.input.Value(),
		"submitted": submitted,
	})
}
