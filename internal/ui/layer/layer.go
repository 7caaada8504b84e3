// Package layer is the bubbletea side of the overlay registry: it mounts
// overlay records as surfaces and composites them over the application's
// base view.
package layer

import (
	"github.com/riordanpawley/overlaykit/internal/overlay"
	"github.com/riordanpawley/overlaykit/internal/ui/styles"
	"github.com/riordanpawley/overlaykit/internal/ui/toast"
)

// surface is one mounted overlay
type surface struct {
	handle  overlay.Handle
	id      string
	kind    overlay.Kind
	content string
	dirty   bool
}

// Layer implements overlay.Renderer for a bubbletea program. Surfaces are
// painted lazily: Mount and MarkDirty only flag a surface, View re-renders the
// flagged ones.
type Layer struct {
	reg           *overlay.Registry
	styles        *styles.Styles
	surfaces      []*surface
	next          overlay.Handle
	renders       int
	popupWidth    int
	toastMaxWidth int
	toasts        *toast.ToastRenderer
}

// Option configures a Layer
type Option func(*Layer)

// WithPopupWidth fixes the inner width of popup surfaces. 0 sizes to content.
func WithPopupWidth(width int) Option {
	return func(l *Layer) {
		l.popupWidth = width
	}
}

// WithToastMaxWidth caps the width of toast surfaces
func WithToastMaxWidth(width int) Option {
	return func(l *Layer) {
		l.toastMaxWidth = width
	}
}

// New creates a Layer and attaches it to reg as its renderer
func New(reg *overlay.Registry, st *styles.Styles, opts ...Option) *Layer {
	if st == nil {
		st = styles.New()
	}
	l := &Layer{
		reg:           reg,
		styles:        st,
		surfaces:      make([]*surface, 0),
		toastMaxWidth: 40,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.toasts = toast.New(st, l.toastMaxWidth)
	reg.SetRenderer(l)
	return l
}

// Mount adds a surface for rec on top of the existing ones
func (l *Layer) Mount(rec overlay.Record) overlay.Handle {
	l.next++
	l.surfaces = append(l.surfaces, &surface{
		handle: l.next,
		id:     rec.ID,
		kind:   rec.Kind,
		dirty:  true,
	})
	return l.next
}

// MarkDirty flags one surface for re-render
func (l *Layer) MarkDirty(h overlay.Handle) {
	if s := l.find(h); s != nil {
		s.dirty = true
	}
}

// Unmount drops a surface. Unknown handles are ignored.
func (l *Layer) Unmount(h overlay.Handle) {
	for i, s := range l.surfaces {
		if s.handle == h {
			l.surfaces = append(l.surfaces[:i], l.surfaces[i+1:]...)
			return
		}
	}
}

func (l *Layer) find(h overlay.Handle) *surface {
	for _, s := range l.surfaces {
		if s.handle == h {
			return s
		}
	}
	return nil
}

// paint returns the surface content, calling the record's render callback only
// if the surface is dirty
func (l *Layer) paint(s *surface) string {
	if !s.dirty {
		return s.content
	}
	rec, ok := l.reg.Get(s.id)
	if !ok || rec.Render == nil {
		return ""
	}
	dc, _ := l.reg.DataContext(s.id)
	s.content = rec.Render(dc)
	s.dirty = false
	l.renders++
	return s.content
}

// Mounted returns the number of mounted surfaces
func (l *Layer) Mounted() int {
	return len(l.surfaces)
}

// Renders returns how many times a render callback has been called
func (l *Layer) Renders() int {
	return l.renders
}

// Registry returns the registry this layer renders
func (l *Layer) Registry() *overlay.Registry {
	return l.reg
}
