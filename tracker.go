package layel

import (
	"github.com/npillmayer/layel/maybe"
	orderedmap "github.com/pb33f/ordered-map/v2"
)

// tracker maintains, per (property, breakpoint-alias) key, a
// reference-counted multiset of the attribute values currently present
// across the host and its children. Count maps preserve insertion order;
// host-scoped synthesis later picks the first value still present.
type tracker struct {
	counts map[string]*orderedmap.OrderedMap[string, int]
}

func newTracker() *tracker {
	return &tracker{counts: make(map[string]*orderedmap.OrderedMap[string, int])}
}

func trackKey(prop, alias string) string {
	if alias == "" {
		return prop
	}
	return prop + "." + alias
}

// record updates reference counts for an attribute transition. Nothing
// as old or new value means the attribute was absent on that side. The
// count map for the key is created lazily and returned by reference.
//
// Decrements are clamped: an old value that is not tracked is ignored
// rather than driving a count negative; a count reaching zero removes
// the value entirely.
func (t *tracker) record(prop, alias string, old, nu maybe.Maybe[string]) *orderedmap.OrderedMap[string, int] {
	key := trackKey(prop, alias)
	m, ok := t.counts[key]
	if !ok {
		m = orderedmap.New[string, int]()
		t.counts[key] = m
	}
	if v, present := old.Value(); present {
		if c, tracked := m.Get(v); tracked {
			if c <= 1 {
				m.Delete(v)
			} else {
				m.Set(v, c-1)
			}
		}
	}
	if v, present := nu.Value(); present {
		c, _ := m.Get(v)
		m.Set(v, c+1)
	}
	return m
}

// lookup returns the count map for a key, or nil if the key has never
// been tracked.
func (t *tracker) lookup(prop, alias string) *orderedmap.OrderedMap[string, int] {
	return t.counts[trackKey(prop, alias)]
}

// first returns the first tracked value in iteration order, i.e. the
// winner for host-scoped properties.
func (t *tracker) first(prop, alias string) maybe.Maybe[string] {
	m := t.lookup(prop, alias)
	if m == nil || m.Len() == 0 {
		return maybe.Nothing[string]()
	}
	return maybe.Just(m.Oldest().Key)
}

// present reports whether any value is currently tracked for a key.
func (t *tracker) present(prop, alias string) bool {
	m := t.lookup(prop, alias)
	return m != nil && m.Len() > 0
}
