package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
)

// ProgressData builds the initial payload of a progress modal
func ProgressData(title, label string) map[string]any {
	return map[string]any{
		"title":   title,
		"label":   label,
		"percent": 0.0,
	}
}

// Progress renders {"label", "percent"} as a progress bar. percent is clamped
// to [0, 1].
func Progress(st *styles.Styles, width int) overlay.RenderFunc {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage())

	return func(dc *overlay.DataContext) string {
		label, _ := overlay.Field[string](dc, "label")
		pct, _ := overlay.Field[float64](dc, "percent")
		pct = min(max(pct, 0), 1)

		return lipgloss.JoinVertical(lipgloss.Left,
			st.Label.Render(label),
			bar.ViewAs(pct),
			st.Footer.Render(fmt.Sprintf("%3.0f%%", pct*100)),
		)
	}
}
