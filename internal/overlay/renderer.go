package overlay

// Handle identifies a mounted surface inside a Renderer. The zero Handle means
// the record is not mounted.
type Handle uint64

// Renderer is the host layering primitive the registry drives. The registry is
// the only caller: records enter and leave the render tree exclusively through
// these three calls.
type Renderer interface {
	// Mount inserts a paintable surface for rec and returns its handle
	Mount(rec Record) Handle
	// MarkDirty requests a re-paint of exactly one surface
	MarkDirty(h Handle)
	// Unmount removes the surface. Unknown or already unmounted handles are ignored.
	Unmount(h Handle)
}

// NopRenderer is a headless Renderer that hands out handles and paints nothing
type NopRenderer struct {
	next Handle
}

// Mount returns a fresh handle
func (n *NopRenderer) Mount(Record) Handle {
	n.next++
	return n.next
}

// MarkDirty does nothing
func (n *NopRenderer) MarkDirty(Handle) {}

// Unmount does nothing
func (n *NopRenderer) Unmount(Handle) {}
