package overlay

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the facades. The registry itself never fails.
var (
	ErrNotFound      = errors.New("overlay not found")
	ErrKindMismatch  = errors.New("overlay kind mismatch")
	ErrNoDataContext = errors.New("no overlay data context")
)

// AccessError describes a facade accessor that could not resolve the overlay it
// was asked for
type AccessError struct {
	Op       string // Accessor: "ContextOf", "ContextFor", ...
	ID       string // Optional: overlay ID when one was bound
	Expected Kind
	Found    Kind // Only meaningful for ErrKindMismatch
	Err      error
}

func (e *AccessError) Error() string {
	prefix := "overlay " + e.Op
	if e.ID != "" {
		prefix = fmt.Sprintf("overlay %s [%s]", e.Op, e.ID)
	}

	switch {
	case errors.Is(e.Err, ErrKindMismatch):
		return fmt.Sprintf("%s: expected an active %s overlay, found %s; use the %s accessor or open it with a %s controller",
			prefix, e.Expected, e.Found, e.Found, e.Expected)
	case errors.Is(e.Err, ErrNoDataContext):
		return fmt.Sprintf("%s: expected to run inside an active %s overlay; pass the context from DataContext.Context in the render callback",
			prefix, e.Expected)
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("%s: no active %s overlay with this ID; it was probably closed already",
			prefix, e.Expected)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix + " failed"
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
