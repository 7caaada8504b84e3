// Package widgets provides ready-made render callbacks for common overlays.
package widgets

import (
	"strings"

	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
)

// Message renders a popup or toast body from {"message", "hint"}. A payload
// that is a plain string is shown as the message.
func Message(st *styles.Styles) overlay.RenderFunc {
	return func(dc *overlay.DataContext) string {
		if s, ok := overlay.DataAs[string](dc); ok {
			return st.MenuItem.Render(s)
		}

		var b strings.Builder
		msg, _ := overlay.Field[string](dc, "message")
		b.WriteString(st.MenuItem.Render(msg))

		if hint, ok := overlay.Field[string](dc, "hint"); ok && hint != "" {
			b.WriteString("\n")
			b.WriteString(st.Footer.Render(hint))
		}
		return b.String()
	}
}
