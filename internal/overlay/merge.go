package overlay

// MapLike is implemented by payload types that want map merge semantics on update
// without being a plain map[string]any.
type MapLike interface {
	AsMap() map[string]any
}

// asMap reports whether v has map shape and returns its map view
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case MapLike:
		out := m.AsMap()
		return out, out != nil
	}
	return nil, false
}

// MergeMaps performs a shallow merge into a new map. Keys in partial overwrite keys
// in existing, keys only in existing are kept, nested values are replaced wholesale.
func MergeMaps(existing, partial map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// Merge combines the current payload of a record with a partial update.
// When both sides are map-like the result is MergeMaps of the two; otherwise
// partial replaces existing entirely.
func Merge(existing, partial any) any {
	base, ok := asMap(existing)
	if !ok {
		return partial
	}
	patch, ok := asMap(partial)
	if !ok {
		return partial
	}
	return MergeMaps(base, patch)
}

// DataAs returns the DataContext payload as T
func DataAs[T any](dc *DataContext) (T, bool) {
	var zero T
	if dc == nil {
		return zero, false
	}
	v, ok := dc.Data().(T)
	return v, ok
}

// Field reads a single key from a map-shaped payload
func Field[T any](dc *DataContext, key string) (T, bool) {
	var zero T
	if dc == nil {
		return zero, false
	}
	m, ok := asMap(dc.Data())
	if !ok {
		return zero, false
	}
	v, ok := m[key].(T)
	return v, ok
}
