package overlay

// Controller is a kind-scoped facade over a Registry
type Controller struct {
	reg  *Registry
	kind Kind
}

// NewController returns a controller for one kind of overlay
func NewController(reg *Registry, kind Kind) *Controller {
	return &Controller{reg: reg, kind: kind}
}

// NewPopupController returns a controller for popups
func NewPopupController(reg *Registry) *Controller {
	return NewController(reg, KindPopup)
}

// Kind returns the kind this controller manages
func (c *Controller) Kind() Kind {
	return c.kind
}

// Registry returns the underlying registry
func (c *Controller) Registry() *Registry {
	return c.reg
}

// Open creates an overlay of the controller's kind and returns its ID
func (c *Controller) Open(render RenderFunc, opts Options) string {
	return c.reg.Create(c.kind, render, opts)
}

// Close removes the overlay with the given ID
func (c *Controller) Close(id string) {
	c.reg.Remove(id)
}

// CloseTop removes the most recently opened overlay of this kind.
// Returns false if there was none.
func (c *Controller) CloseTop() bool {
	top, ok := c.reg.Top(c.kind)
	if !ok {
		return false
	}
	c.reg.Remove(top.ID)
	return true
}

// CloseAll removes every overlay of this kind, leaving other kinds in place
func (c *Controller) CloseAll() {
	for _, rec := range c.reg.GetByKind(c.kind) {
		c.reg.Remove(rec.ID)
	}
}

// UpdateData merges data into the overlay with the given ID
func (c *Controller) UpdateData(id string, data any) {
	c.reg.Update(id, data)
}

// Active returns the open overlays of this kind in stacking order
func (c *Controller) Active() []Record {
	return c.reg.GetByKind(c.kind)
}

// IsOpen reports whether id is an open overlay of this kind
func (c *Controller) IsOpen(id string) bool {
	rec, ok := c.reg.Get(id)
	return ok && rec.Kind == c.kind
}
