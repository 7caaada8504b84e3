package overlay

import "fmt"

// Kind is the fixed category of an overlay
type Kind int

const (
	KindPopup Kind = iota
	KindToast
	KindModal
	KindDialog
)

var kindNames = map[Kind]string{
	KindPopup:  "popup",
	KindToast:  "toast",
	KindModal:  "modal",
	KindDialog: "dialog",
}

// String returns the lowercase kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts a kind name back to a Kind
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown overlay kind %q", s)
}
