// Package overlay tracks the transient surfaces (popups, toasts, modals, dialogs)
// drawn above an application's main view.
//
// A Registry owns the ordered list of active overlay records. Insertion order is
// the stacking order: the last record is drawn on top. Every change is pushed to
// a Renderer, which only ever mounts, re-paints or unmounts what the registry
// tells it to.
//
// All methods are meant to be called from a single goroutine (the bubbletea
// update loop). Lifecycle callbacks may call back into the registry.
package overlay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// entry is the registry's bookkeeping around one record
type entry struct {
	rec     Record
	handle  Handle
	closing bool // OnClose is running or has run
}

// Registry is the authoritative list of active overlays
type Registry struct {
	entries  []*entry
	renderer Renderer
	logger   *slog.Logger
	newID    func(Kind) string
	now      func() time.Time
	seq      int
}

// Option configures a Registry
type Option func(*Registry)

// WithRenderer sets the renderer records are mounted on
func WithRenderer(r Renderer) Option {
	return func(reg *Registry) {
		reg.renderer = r
	}
}

// WithLogger sets the logger used for lifecycle debug output
func WithLogger(logger *slog.Logger) Option {
	return func(reg *Registry) {
		reg.logger = logger
	}
}

// WithIDGenerator overrides how record IDs are produced. Collisions with active
// records are resolved by the registry.
func WithIDGenerator(gen func(Kind) string) Option {
	return func(reg *Registry) {
		reg.newID = gen
	}
}

// WithClock overrides the CreatedAt time source
func WithClock(now func() time.Time) Option {
	return func(reg *Registry) {
		reg.now = now
	}
}

// NewID returns "<kind>-<8 hex chars>"
func NewID(kind Kind) string {
	return kind.String() + "-" + uuid.NewString()[:8]
}

// New creates an empty registry. Without WithRenderer records are mounted on a
// NopRenderer until SetRenderer attaches a real one.
func New(opts ...Option) *Registry {
	reg := &Registry{
		entries: make([]*entry, 0),
		newID:   NewID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(reg)
	}
	if reg.renderer == nil {
		reg.renderer = &NopRenderer{}
	}
	if reg.logger == nil {
		reg.logger = slog.Default()
	}
	return reg
}

// SetRenderer moves every active record onto r, in stacking order
func (r *Registry) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = &NopRenderer{}
	}
	old := r.renderer
	r.renderer = renderer
	for _, e := range r.entries {
		if e.handle != 0 {
			old.Unmount(e.handle)
		}
		e.handle = renderer.Mount(e.rec)
	}
}

// Create appends a new record on top of the stack, mounts it and returns its ID
func (r *Registry) Create(kind Kind, render RenderFunc, opts Options) string {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}

	id := r.uniqueID(kind)
	e := &entry{
		rec: Record{
			ID:           id,
			Kind:         kind,
			Render:       render,
			Data:         data,
			CreatedAt:    r.now(),
			OnDataChange: opts.OnDataChange,
			OnClose:      opts.OnClose,
		},
	}
	r.entries = append(r.entries, e)
	e.handle = r.renderer.Mount(e.rec)

	r.logger.Debug("overlay created", "id", id, "kind", kind.String(), "depth", len(r.entries))
	return id
}

func (r *Registry) uniqueID(kind Kind) string {
	id := r.newID(kind)
	for r.index(id) >= 0 {
		r.seq++
		id = fmt.Sprintf("%s-%d", r.newID(kind), r.seq)
	}
	return id
}

// Update merges partial into the record's data (see Merge), keeps the record's
// stacking position, fires OnDataChange and marks only that surface dirty.
// Unknown or closing IDs are ignored: async updates may race a close.
func (r *Registry) Update(id string, partial any) {
	i := r.index(id)
	if i < 0 || r.entries[i].closing {
		r.logger.Debug("overlay update ignored", "id", id)
		return
	}

	e := r.entries[i]
	merged := Merge(e.rec.Data, partial)
	e.rec = e.rec.withData(merged)

	if e.rec.OnDataChange != nil {
		e.rec.OnDataChange(merged)
	}
	// OnDataChange may have closed it
	if !e.closing && r.index(id) >= 0 {
		r.renderer.MarkDirty(e.handle)
	}

	r.logger.Debug("overlay updated", "id", id)
}

// Remove fires OnClose with the record's current data, then drops and unmounts
// it. Unknown IDs are ignored.
func (r *Registry) Remove(id string) {
	i := r.index(id)
	if i < 0 || r.entries[i].closing {
		return
	}

	e := r.entries[i]
	e.closing = true
	if e.rec.OnClose != nil {
		e.rec.OnClose(e.rec.Data)
	}
	r.detach(e)

	r.logger.Debug("overlay removed", "id", id, "kind", e.rec.Kind.String())
}

// RemoveAll fires OnClose for every active record in stacking order, then clears
// the list and unmounts everything. A callback may remove other records; each
// record still gets exactly one OnClose. Records created by a callback during
// the sweep survive it.
func (r *Registry) RemoveAll() {
	snapshot := make([]*entry, len(r.entries))
	copy(snapshot, r.entries)

	for _, e := range snapshot {
		if e.closing || !r.contains(e) {
			continue
		}
		e.closing = true
		if e.rec.OnClose != nil {
			e.rec.OnClose(e.rec.Data)
		}
	}

	for _, e := range snapshot {
		r.detach(e)
	}

	r.logger.Debug("overlays cleared", "count", len(snapshot), "remaining", len(r.entries))
}

// detach removes e from the list and unmounts it if it is still there
func (r *Registry) detach(e *entry) {
	for i, cur := range r.entries {
		if cur != e {
			continue
		}
		r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
		if e.handle != 0 {
			r.renderer.Unmount(e.handle)
			e.handle = 0
		}
		return
	}
}

func (r *Registry) contains(e *entry) bool {
	for _, cur := range r.entries {
		if cur == e {
			return true
		}
	}
	return false
}

func (r *Registry) index(id string) int {
	for i, e := range r.entries {
		if e.rec.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the current record for id
func (r *Registry) Get(id string) (Record, bool) {
	i := r.index(id)
	if i < 0 {
		return Record{}, false
	}
	return r.entries[i].rec, true
}

// GetByKind returns the records of one kind in stacking order
func (r *Registry) GetByKind(kind Kind) []Record {
	out := make([]Record, 0)
	for _, e := range r.entries {
		if e.rec.Kind == kind {
			out = append(out, e.rec)
		}
	}
	return out
}

// Top returns the most recently created record of kind
func (r *Registry) Top(kind Kind) (Record, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].rec.Kind == kind {
			return r.entries[i].rec, true
		}
	}
	return Record{}, false
}

// List returns a snapshot of all records in stacking order (bottom first)
func (r *Registry) List() []Record {
	out := make([]Record, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.rec
	}
	return out
}

// Len returns the number of active records
func (r *Registry) Len() int {
	return len(r.entries)
}

// IsEmpty returns true if no overlay is active
func (r *Registry) IsEmpty() bool {
	return len(r.entries) == 0
}
