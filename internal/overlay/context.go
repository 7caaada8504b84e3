package overlay

import (
	"context"
	"errors"
)

// DataContext is the instance-scoped view of one overlay handed to its render
// callback. Data is a snapshot taken when the context was built; Update and
// Close route back into the registry.
type DataContext struct {
	reg  *Registry
	id   string
	kind Kind
	data any
}

func newDataContext(reg *Registry, rec Record) *DataContext {
	return &DataContext{
		reg:  reg,
		id:   rec.ID,
		kind: rec.Kind,
		data: rec.Data,
	}
}

// ID returns the overlay ID
func (dc *DataContext) ID() string { return dc.id }

// Kind returns the overlay kind
func (dc *DataContext) Kind() Kind { return dc.kind }

// Data returns the payload as it was when this context was built
func (dc *DataContext) Data() any { return dc.data }

// Update merges data into the overlay
func (dc *DataContext) Update(data any) {
	dc.reg.Update(dc.id, data)
}

// Close removes the overlay; OnClose receives its current data
func (dc *DataContext) Close() {
	dc.reg.Remove(dc.id)
}

// CloseWith applies final as an update and then removes the overlay, so
// OnDataChange sees the final data right before OnClose sees the same data.
func (dc *DataContext) CloseWith(final any) {
	dc.reg.Update(dc.id, final)
	dc.reg.Remove(dc.id)
}

// Context returns a child of parent carrying dc, for helpers that resolve their
// overlay through ContextOf
func (dc *DataContext) Context(parent context.Context) context.Context {
	return WithDataContext(parent, dc)
}

type dataContextKey struct{}

// WithDataContext attaches dc to ctx
func WithDataContext(ctx context.Context, dc *DataContext) context.Context {
	return context.WithValue(ctx, dataContextKey{}, dc)
}

// ContextFor builds a DataContext for an active overlay of the expected kind
func (r *Registry) ContextFor(id string, kind Kind) (*DataContext, error) {
	return r.contextFor("ContextFor", id, kind)
}

func (r *Registry) contextFor(op, id string, kind Kind) (*DataContext, error) {
	rec, ok := r.Get(id)
	if !ok {
		return nil, &AccessError{Op: op, ID: id, Expected: kind, Err: ErrNotFound}
	}
	if rec.Kind != kind {
		return nil, &AccessError{Op: op, ID: id, Expected: kind, Found: rec.Kind, Err: ErrKindMismatch}
	}
	return newDataContext(r, rec), nil
}

// DataContext builds a DataContext for id without a kind check
func (r *Registry) DataContext(id string) (*DataContext, bool) {
	rec, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	return newDataContext(r, rec), true
}

// ContextOf resolves the overlay bound to ctx and checks its kind. It fails
// when ctx carries no DataContext, when the overlay is gone, or when its kind
// differs from kind. The returned context holds fresh data.
func ContextOf(ctx context.Context, kind Kind) (*DataContext, error) {
	dc, _ := ctx.Value(dataContextKey{}).(*DataContext)
	if dc == nil {
		return nil, &AccessError{Op: "ContextOf", Expected: kind, Err: ErrNoDataContext}
	}
	return dc.reg.contextFor("ContextOf", dc.id, kind)
}

// MaybeContextOf is the optional variant of ContextOf: a missing binding or a
// closed overlay yields nil, nil. A kind mismatch is still an error.
func MaybeContextOf(ctx context.Context, kind Kind) (*DataContext, error) {
	dc, err := ContextOf(ctx, kind)
	if errors.Is(err, ErrNoDataContext) || errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return dc, err
}

// PopupContext is ContextOf for popups
func PopupContext(ctx context.Context) (*DataContext, error) {
	return ContextOf(ctx, KindPopup)
}

// MaybePopupContext is MaybeContextOf for popups
func MaybePopupContext(ctx context.Context) (*DataContext, error) {
	return MaybeContextOf(ctx, KindPopup)
}
