package statusbar

import "github.com/riordanpawley/overlaykit/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "p: popup  t: toast  c: confirm  i: prompt  m: progress  X: close all  q: quit"
	case types.ModePopup:
		return "Esc: close top  p: another popup  t: toast  X: close all  q: quit"
	case types.ModeModal:
		return "Esc: cancel  t: toast  X: close all  q: quit"
	case types.ModeDialog:
		return "y/n: answer  ←/→: switch  Enter: confirm  Esc: cancel"
	case types.ModePrompt:
		return "Type to edit  Enter: submit  Esc: cancel"
	default:
		return ""
	}
}
