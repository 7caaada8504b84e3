package overlay

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer records every call the registry makes
type recordingRenderer struct {
	next      Handle
	mounted   map[Handle]string
	calls     []string
	unmounted []Handle
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{mounted: make(map[Handle]string)}
}

func (r *recordingRenderer) Mount(rec Record) Handle {
	r.next++
	r.mounted[r.next] = rec.ID
	r.calls = append(r.calls, "mount:"+rec.ID)
	return r.next
}

func (r *recordingRenderer) MarkDirty(h Handle) {
	r.calls = append(r.calls, "dirty:"+r.mounted[h])
}

func (r *recordingRenderer) Unmount(h Handle) {
	id, ok := r.mounted[h]
	if !ok {
		return
	}
	delete(r.mounted, h)
	r.unmounted = append(r.unmounted, h)
	r.calls = append(r.calls, "unmount:"+id)
}

func noRender(*DataContext) string { return "" }

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func TestCreate_AppendsAndMounts(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))

	id := reg.Create(KindPopup, noRender, Options{})

	require.Equal(t, 1, reg.Len())
	rec, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, KindPopup, rec.Kind)
	assert.Equal(t, map[string]any{}, rec.Data, "nil initial data should default to an empty map")
	assert.Equal(t, []string{"mount:" + id}, renderer.calls)
}

func TestCreate_KeepsNonMapInitialData(t *testing.T) {
	reg := New()

	id := reg.Create(KindToast, noRender, Options{Data: "hello"})

	rec, _ := reg.Get(id)
	assert.Equal(t, "hello", rec.Data)
}

func TestCreate_UsesClock(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	reg := New(WithClock(func() time.Time { return at }))

	id := reg.Create(KindPopup, noRender, Options{})

	rec, _ := reg.Get(id)
	assert.Equal(t, at, rec.CreatedAt)
}

func TestCreate_UniqueIDs(t *testing.T) {
	reg := New()
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		id := reg.Create(KindPopup, noRender, Options{})
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCreate_ResolvesGeneratorCollisions(t *testing.T) {
	reg := New(WithIDGenerator(func(Kind) string { return "same" }))

	a := reg.Create(KindPopup, noRender, Options{})
	b := reg.Create(KindPopup, noRender, Options{})
	c := reg.Create(KindPopup, noRender, Options{})

	assert.Equal(t, "same", a)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.NotEqual(t, a, c)
}

func TestNewID_Format(t *testing.T) {
	id := NewID(KindModal)
	assert.Regexp(t, `^modal-[0-9a-f]{8}$`, id)
}

func TestList_StackingOrder(t *testing.T) {
	reg := New()
	var created []string
	for i := 0; i < 5; i++ {
		created = append(created, reg.Create(KindPopup, noRender, Options{}))
	}

	assert.Equal(t, created, ids(reg.List()))

	reg.Remove(created[2])
	assert.Equal(t, []string{created[0], created[1], created[3], created[4]}, ids(reg.List()))
}

func TestList_IsSnapshot(t *testing.T) {
	reg := New()
	id := reg.Create(KindPopup, noRender, Options{Data: map[string]any{"n": 1}})

	snapshot := reg.List()
	reg.Update(id, map[string]any{"n": 2})
	reg.Create(KindPopup, noRender, Options{})

	require.Len(t, snapshot, 1)
	assert.Equal(t, map[string]any{"n": 1}, snapshot[0].Data)
}

func TestUpdate_MergesMaps(t *testing.T) {
	reg := New()
	id := reg.Create(KindPopup, noRender, Options{Data: map[string]any{"a": 1, "b": 2}})

	reg.Update(id, map[string]any{"b": 3, "c": 4})

	rec, _ := reg.Get(id)
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, rec.Data)
}

func TestUpdate_ReplacesNonMaps(t *testing.T) {
	reg := New()
	id := reg.Create(KindPopup, noRender, Options{Data: "x"})

	reg.Update(id, "y")

	rec, _ := reg.Get(id)
	assert.Equal(t, "y", rec.Data)
}

func TestUpdate_KeepsPosition(t *testing.T) {
	reg := New()
	a := reg.Create(KindPopup, noRender, Options{})
	b := reg.Create(KindPopup, noRender, Options{})
	c := reg.Create(KindPopup, noRender, Options{})

	reg.Update(a, map[string]any{"k": "v"})

	assert.Equal(t, []string{a, b, c}, ids(reg.List()))
}

func TestUpdate_FiresOnDataChangeAndMarksOnlyThatSurfaceDirty(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))
	var changes []any
	a := reg.Create(KindPopup, noRender, Options{OnDataChange: func(d any) { changes = append(changes, d) }})
	reg.Create(KindPopup, noRender, Options{})
	renderer.calls = nil

	reg.Update(a, map[string]any{"k": 1})

	assert.Equal(t, []any{map[string]any{"k": 1}}, changes)
	assert.Equal(t, []string{"dirty:" + a}, renderer.calls)
}

func TestUpdate_MissingIsNoop(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))
	id := reg.Create(KindPopup, noRender, Options{Data: map[string]any{"a": 1}})
	before := ids(reg.List())
	renderer.calls = nil

	assert.NotPanics(t, func() {
		reg.Update("nonexistent-id", map[string]any{"a": 2})
	})

	assert.Equal(t, before, ids(reg.List()))
	assert.Empty(t, renderer.calls)
	rec, _ := reg.Get(id)
	assert.Equal(t, map[string]any{"a": 1}, rec.Data)
}

func TestRemove_FiresOnCloseOnceWithMergedData(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))
	var closed []any
	id := reg.Create(KindPopup, noRender, Options{
		Data:    map[string]any{"a": 1},
		OnClose: func(d any) { closed = append(closed, d) },
	})

	reg.Update(id, map[string]any{"b": 2})
	reg.Remove(id)
	reg.Remove(id)

	require.Len(t, closed, 1)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, closed[0])
	assert.Equal(t, 0, reg.Len())
	assert.Len(t, renderer.unmounted, 1)
}

func TestRemove_OnCloseRunsBeforeUnmount(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))
	var id string
	id = reg.Create(KindPopup, noRender, Options{OnClose: func(any) {
		renderer.calls = append(renderer.calls, "close:"+id)
		_, stillListed := reg.Get(id)
		assert.True(t, stillListed, "record should still be listed while OnClose runs")
	}})

	reg.Remove(id)

	assert.Equal(t, []string{"mount:" + id, "close:" + id, "unmount:" + id}, renderer.calls)
}

func TestRemove_WithoutOnClose(t *testing.T) {
	reg := New()
	id := reg.Create(KindPopup, noRender, Options{})

	reg.Remove(id)

	assert.True(t, reg.IsEmpty())
}

func TestRemove_MissingIsNoop(t *testing.T) {
	reg := New()
	reg.Create(KindPopup, noRender, Options{})

	assert.NotPanics(t, func() { reg.Remove("nope") })
	assert.Equal(t, 1, reg.Len())
}

func TestRemove_OnCloseIgnoresUpdatesToItself(t *testing.T) {
	reg := New()
	var id string
	var changes int
	id = reg.Create(KindPopup, noRender, Options{
		OnDataChange: func(any) { changes++ },
		OnClose:      func(any) { reg.Update(id, map[string]any{"late": true}) },
	})

	reg.Remove(id)

	assert.Equal(t, 0, changes)
	assert.True(t, reg.IsEmpty())
}

func TestRemoveAll_ClosesEverythingInOrder(t *testing.T) {
	renderer := newRecordingRenderer()
	reg := New(WithRenderer(renderer))
	var order []string
	var created []string
	for i := 0; i < 3; i++ {
		n := i
		created = append(created, reg.Create(KindPopup, noRender, Options{
			Data:    map[string]any{"n": n},
			OnClose: func(d any) { order = append(order, fmt.Sprint(d.(map[string]any)["n"])) },
		}))
	}

	reg.RemoveAll()

	assert.Equal(t, []string{"0", "1", "2"}, order)
	assert.True(t, reg.IsEmpty())
	assert.Empty(t, renderer.mounted)
}

func TestRemoveAll_ReentrantRemove(t *testing.T) {
	reg := New()
	counts := make(map[string]int)
	var second string

	first := reg.Create(KindPopup, noRender, Options{OnClose: func(any) {
		counts["first"]++
		reg.Remove(second)
	}})
	second = reg.Create(KindPopup, noRender, Options{OnClose: func(any) { counts["second"]++ }})
	reg.Create(KindToast, noRender, Options{OnClose: func(any) { counts["third"]++ }})
	require.NotEmpty(t, first)

	reg.RemoveAll()

	assert.Equal(t, map[string]int{"first": 1, "second": 1, "third": 1}, counts)
	assert.True(t, reg.IsEmpty())
}

func TestRemoveAll_ReentrantRemoveOfAlreadyClosed(t *testing.T) {
	reg := New()
	counts := make(map[string]int)
	var first string

	first = reg.Create(KindPopup, noRender, Options{OnClose: func(any) { counts["first"]++ }})
	reg.Create(KindPopup, noRender, Options{OnClose: func(any) {
		counts["second"]++
		reg.Remove(first)
	}})

	reg.RemoveAll()

	assert.Equal(t, map[string]int{"first": 1, "second": 1}, counts)
	assert.True(t, reg.IsEmpty())
}

func TestRemoveAll_CreatedDuringSweepSurvives(t *testing.T) {
	reg := New()
	var spawned string
	reg.Create(KindPopup, noRender, Options{OnClose: func(any) {
		spawned = reg.Create(KindToast, noRender, Options{})
	}})

	reg.RemoveAll()

	assert.Equal(t, []string{spawned}, ids(reg.List()))
}

func TestGetByKind_And_Top(t *testing.T) {
	reg := New()
	p1 := reg.Create(KindPopup, noRender, Options{})
	reg.Create(KindToast, noRender, Options{})
	p2 := reg.Create(KindPopup, noRender, Options{})

	assert.Equal(t, []string{p1, p2}, ids(reg.GetByKind(KindPopup)))
	assert.Empty(t, reg.GetByKind(KindDialog))

	top, ok := reg.Top(KindPopup)
	require.True(t, ok)
	assert.Equal(t, p2, top.ID)

	_, ok = reg.Top(KindModal)
	assert.False(t, ok)
}

func TestGet_Missing(t *testing.T) {
	reg := New()
	_, ok := reg.Get("missing")
	assert.False(t, ok)
}

func TestSetRenderer_RemountsActiveRecords(t *testing.T) {
	first := newRecordingRenderer()
	reg := New(WithRenderer(first))
	a := reg.Create(KindPopup, noRender, Options{})
	b := reg.Create(KindToast, noRender, Options{})

	second := newRecordingRenderer()
	reg.SetRenderer(second)

	assert.Empty(t, first.mounted)
	assert.Equal(t, []string{"mount:" + a, "mount:" + b}, second.calls)

	reg.Remove(a)
	assert.Equal(t, "unmount:"+a, second.calls[len(second.calls)-1])
}
