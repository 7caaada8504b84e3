package layer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/types"
	"github.com/riordanpawley/overlaykit/internal/ui/toast"
)

// View composites every mounted surface over base, which is first padded or
// clipped to width x height. Popups, modals and dialogs are centered in mount
// order, so later overlays cover earlier ones. A modal dims everything beneath
// it. Toasts stack in the bottom-right corner above all other surfaces.
func (l *Layer) View(base string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	canvas := strings.Split(lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, base), "\n")
	if len(canvas) > height {
		canvas = canvas[:height]
	}

	var toasts []toast.Item
	for _, s := range l.surfaces {
		content := l.paint(s)

		switch s.kind {
		case overlay.KindToast:
			toasts = append(toasts, toast.Item{Level: l.surfaceLevel(s), Content: content})
		case overlay.KindModal:
			dim(canvas, l.styles.Backdrop)
			placeCenter(canvas, l.titledBox(s, content, l.styles.Overlay), width, height)
		case overlay.KindDialog:
			placeCenter(canvas, l.titledBox(s, content, l.styles.Dialog), width, height)
		default:
			placeCenter(canvas, l.popupBox(content), width, height)
		}
	}

	if block := l.toasts.Render(toasts, width); block != "" {
		x := max(0, width-lipgloss.Width(block)-1)
		y := max(0, height-lipgloss.Height(block)-1)
		placeAt(canvas, block, x, y)
	}

	return strings.Join(canvas, "\n")
}

func (l *Layer) popupBox(content string) string {
	style := l.styles.Popup
	if l.popupWidth > 0 {
		style = style.Width(l.popupWidth)
	}
	return style.Render(content)
}

func (l *Layer) titledBox(s *surface, content string, style lipgloss.Style) string {
	dc, ok := l.reg.DataContext(s.id)
	if ok {
		if title, ok := overlay.Field[string](dc, "title"); ok && title != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, l.styles.OverlayTitle.Render(title), content)
		}
	}
	return style.Render(content)
}

func (l *Layer) surfaceLevel(s *surface) types.ToastLevel {
	if dc, ok := l.reg.DataContext(s.id); ok {
		return toastLevel(dc)
	}
	return types.ToastInfo
}

// toastLevel reads the "level" key as a ToastLevel or its name
func toastLevel(dc *overlay.DataContext) types.ToastLevel {
	if level, ok := overlay.Field[types.ToastLevel](dc, "level"); ok {
		return level
	}
	if name, ok := overlay.Field[string](dc, "level"); ok {
		if level, err := types.ParseToastLevel(name); err == nil {
			return level
		}
	}
	return types.ToastInfo
}

func placeCenter(canvas []string, block string, width, height int) {
	x := max(0, (width-lipgloss.Width(block))/2)
	y := max(0, (height-lipgloss.Height(block))/2)
	placeAt(canvas, block, x, y)
}

// placeAt draws block over canvas with its top-left corner at column x, row y.
// Cells of the canvas left and right of the block are preserved.
func placeAt(canvas []string, block string, x, y int) {
	lines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)

	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		under := canvas[row]

		left := ansi.Truncate(under, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if w := ansi.StringWidth(line); w < blockWidth {
			line += strings.Repeat(" ", blockWidth-w)
		}
		right := ansi.TruncateLeft(under, x+blockWidth, "")

		canvas[row] = left + line + right
	}
}

func dim(canvas []string, style lipgloss.Style) {
	for i, line := range canvas {
		canvas[i] = style.Render(ansi.Strip(line))
	}
}
