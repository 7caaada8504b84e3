package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
)

// ConfirmData builds the initial payload of a confirmation dialog.
// The layer renders "title" above the body.
func ConfirmData(title, message string) map[string]any {
	return map[string]any{
		"title":    title,
		"message":  message,
		"selected": false, // Default to No
	}
}

// Confirmed reads the outcome from the data a confirmation dialog closed with
func Confirmed(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	confirmed, _ := m["confirmed"].(bool)
	return confirmed
}

// Confirm renders a Yes/No dialog body
func Confirm(st *styles.Styles) overlay.RenderFunc {
	return func(dc *overlay.DataContext) string {
		var b strings.Builder

		// Message
		if msg, _ := overlay.Field[string](dc, "message"); msg != "" {
			b.WriteString(st.MenuItem.Render(msg))
			b.WriteString("\n\n")
		}

		// Buttons
		selected, _ := overlay.Field[bool](dc, "selected")
		yesStyle := st.MenuItem
		noStyle := st.MenuItem
		if selected {
			yesStyle = st.MenuItemActive
		} else {
			noStyle = st.MenuItemActive
		}
		b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
		b.WriteString("\n")

		b.WriteString(st.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))
		return b.String()
	}
}

// ConfirmKey applies a key press to the dialog bound to dc. It reports whether
// the key closed the dialog; the dialog closes with {"confirmed": bool}.
func ConfirmKey(dc *overlay.DataContext, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y":
		dc.CloseWith(map[string]any{"confirmed": true})
		return true

	case "n", "N", "esc":
		dc.CloseWith(map[string]any{"confirmed": false})
		return true

	case "enter":
		selected, _ := overlay.Field[bool](dc, "selected")
		dc.CloseWith(map[string]any{"confirmed": selected})
		return true

	case "left", "h":
		dc.Update(map[string]any{"selected": false})

	case "right", "l", "tab":
		dc.Update(map[string]any{"selected": true})
	}
	return false
}
