package types

// Mode describes which overlay currently owns the keyboard
type Mode int

const (
	ModeNormal Mode = iota
	ModePopup
	ModeModal
	ModeDialog
	ModePrompt
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModePopup:
		return "POPUP"
	case ModeModal:
		return "MODAL"
	case ModeDialog:
		return "DIALOG"
	case ModePrompt:
		return "PROMPT"
	default:
		return "UNKNOWN"
	}
}
