package overlay

import "time"

// RenderFunc produces the visible content of an overlay from its bound DataContext.
// The registry stores and forwards it but never calls it.
type RenderFunc func(dc *DataContext) string

// Record describes one active overlay. Records are values: the registry replaces
// them on update instead of mutating them, so a Record obtained from Get or List
// is a stable snapshot.
type Record struct {
	ID        string
	Kind      Kind
	Render    RenderFunc
	Data      any
	CreatedAt time.Time

	OnDataChange func(data any)
	OnClose      func(data any)
}

// Options is the per-creation bundle passed to Create and Controller.Open
type Options struct {
	// Data is the initial payload. nil becomes an empty map[string]any.
	Data any
	// OnDataChange is called with the merged data after every Update
	OnDataChange func(data any)
	// OnClose is called with the current data right before the record is removed
	OnClose func(data any)
}

// withData returns a copy of r carrying new data
func (r Record) withData(data any) Record {
	r.Data = data
	return r
}
