package styles

import (
	"testing"

	"github.com/riordanpawley/overlaykit/internal/types"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestToastLevel(t *testing.T) {
	s := New()

	tests := []struct {
		level types.ToastLevel
		name  string
	}{
		{types.ToastInfo, "info"},
		{types.ToastSuccess, "success"},
		{types.ToastWarning, "warning"},
		{types.ToastError, "error"},
		{types.ToastLevel(42), "out of range falls back to info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := s.ToastLevel(tt.level).Render("msg")
			if len(rendered) == 0 {
				t.Error("ToastLevel rendered empty string")
			}
		})
	}
}

func TestThemeColors(t *testing.T) {
	// Verify colors are defined
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Blue", string(Blue)},
		{"Red", string(Red)},
		{"Green", string(Green)},
		{"Yellow", string(Yellow)},
		{"Lavender", string(Lavender)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			// Catppuccin colors start with #
			if c.color[0] != '#' {
				t.Errorf("%s color doesn't start with #: %s", c.name, c.color)
			}
		})
	}
}
