package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/overlaykit/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Base view
	App       lipgloss.Style
	Header    lipgloss.Style
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Popup        lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Dialog       lipgloss.Style
	Backdrop     lipgloss.Style

	// Overlay content
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Footer         lipgloss.Style
	Label          lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		App: lipgloss.NewStyle().
			Foreground(Text).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Popup: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Background(Base).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Peach).
			Background(Base).
			Padding(1, 2),

		Backdrop: lipgloss.NewStyle().
			Foreground(Overlay0).
			Faint(true),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Subtext0).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// ToastLevel returns the appropriate style for a toast level
func (s *Styles) ToastLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return s.ToastSuccess
	case types.ToastWarning:
		return s.ToastWarning
	case types.ToastError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
