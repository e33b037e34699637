package props

import (
	"strings"

	"github.com/npillmayer/layel/cssom"
	"github.com/npillmayer/layel/maybe"
	"github.com/npillmayer/layel/media"
)

// Context gives update functions read access to the owning element's
// state. It replaces implicit closure capture with explicit dependency
// injection.
type Context interface {
	Layout() string                       // layout type name, e.g. "flex"
	Attr(name string) maybe.Maybe[string] // host attribute lookup
}

// UpdateFunc converts an attribute value into CSS fragments: declarations
// for the host element and declarations for its direct children. For
// child-scoped properties the host fragment is the declaration bucket of
// the per-value selector, and the child fragment is ignored.
type UpdateFunc func(ctx Context, value, alias string) (host, child cssom.DeclList)

// Descriptor describes one trackable layout property. Descriptors are
// shared, read-only configuration.
type Descriptor struct {
	Name   string // attribute name, without breakpoint suffix
	Child  bool   // attribute is expected on direct children, not the host
	Update UpdateFunc
}

// Registry is the ordered property list for one layout type.
type Registry struct {
	layout string
	list   []Descriptor
}

// NewRegistry builds a registry for a layout type. Descriptor order is
// significant: on colliding declaration keys, later descriptors win.
func NewRegistry(layout string, descriptors ...Descriptor) *Registry {
	return &Registry{layout: layout, list: descriptors}
}

// Layout returns the layout type name, e.g. "flex".
func (r *Registry) Layout() string {
	return r.layout
}

// Descriptors returns the registry's property descriptors, in order.
func (r *Registry) Descriptors() []Descriptor {
	return r.list
}

// ByName finds a descriptor by property name.
func (r *Registry) ByName(name string) (Descriptor, bool) {
	for _, d := range r.list {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ChildAttributeNames returns the literal attribute names to watch on
// direct children: every child-scoped property crossed with every
// breakpoint alias of the set.
func (r *Registry) ChildAttributeNames(bps *media.Set) []string {
	var names []string
	for _, d := range r.list {
		if !d.Child {
			continue
		}
		for _, bp := range bps.Breakpoints() {
			names = append(names, AttrName(d.Name, bp.Alias))
		}
	}
	tracer().Debugf("watching %d child attribute(s) for layout %q", len(names), r.layout)
	return names
}

// HostPropertyNames returns the property names expected on the host
// element itself, plus the "inline" display-variant toggle.
func (r *Registry) HostPropertyNames() []string {
	names := []string{"inline"}
	for _, d := range r.list {
		if !d.Child {
			names = append(names, d.Name)
		}
	}
	return names
}

// AttrName builds the attribute name for a property at a breakpoint:
// the bare property name for the "all" breakpoint, name-alias otherwise.
func AttrName(prop, alias string) string {
	if alias == "" {
		return prop
	}
	return prop + "-" + alias
}

// SplitAttr decodes an attribute name into property name and breakpoint
// alias. The name is split at the first dash only; aliases may themselves
// contain dashes. Property names are dash-free by convention.
func SplitAttr(name string) (prop, alias string) {
	if i := strings.IndexByte(name, '-'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
