package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/overlaykit/internal/types"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
)

// Item is one painted toast body waiting to be boxed
type Item struct {
	Level   types.ToastLevel
	Content string
}

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles   *styles.Styles
	maxWidth int
}

// New creates a new ToastRenderer with the given styles and width cap
func New(styles *styles.Styles, maxWidth int) *ToastRenderer {
	return &ToastRenderer{
		styles:   styles,
		maxWidth: maxWidth,
	}
}

// Render renders a stack of toasts, oldest first, right-aligned.
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(items []Item, width int) string {
	if len(items) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if r.maxWidth > 0 && toastWidth > r.maxWidth {
		toastWidth = r.maxWidth // Cap maximum toast width
	}

	for _, item := range items {
		style := r.styles.ToastLevel(item.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(item.Content))
	}

	// Stack toasts vertically, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
