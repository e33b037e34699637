package layel

import (
	"errors"

	"github.com/npillmayer/layel/maybe"
	"github.com/npillmayer/layel/media"
	"github.com/npillmayer/layel/props"
	"github.com/npillmayer/layel/scope"
	"golang.org/x/net/html"
)

// ErrNotAnElement is returned when a layout element is constructed over
// a node that is not a DOM element node.
var ErrNotAnElement = errors.New("host node is not an element")

// State is the lifecycle state of an element.
type State uint8

// Lifecycle states. A detached element may be re-attached, re-entering
// Attached; setup is idempotent per occurrence.
const (
	Unattached State = iota
	Attached
	Detached
)

// bpState is the per-instance, per-breakpoint bookkeeping: the
// breakpoint descriptor plus the list of properties seen at this
// breakpoint so far. The list grows monotonically and is never pruned,
// even if all of a property's values are removed again; it is bounded
// by the registry size.
type bpState struct {
	bp    media.Breakpoint
	props []props.Descriptor
}

// Element is a responsive layout element over an x/net/html host node.
// One Element owns its value tracker and style scope exclusively.
type Element struct {
	node   *html.Node
	layout string
	reg    *props.Registry
	set    *media.Set
	bps    []*bpState
	sc     *scope.Scope
	track  *tracker
	obs    Observer
	state  State
}

// Option configures an Element during construction.
type Option func(*Element)

// WithBreakpoints overrides the default breakpoint set.
func WithBreakpoints(set *media.Set) Option {
	return func(el *Element) { el.set = set }
}

// WithObserver installs a platform change-notification adapter in place
// of the default AttrObserver.
func WithObserver(obs Observer) Option {
	return func(el *Element) { el.obs = obs }
}

// New constructs a layout element over a host node, with the property
// registry determining the layout type. The style scope, base display
// rule and content-projection point are established here; layout
// attributes already present on the host are replayed into the pipeline,
// mirroring the platform's attribute-change notification being active
// from construction.
//
// Construction is the only place that fails fast; steady-state updates
// never error.
func New(node *html.Node, reg *props.Registry, opts ...Option) (*Element, error) {
	if node == nil || node.Type != html.ElementNode {
		return nil, ErrNotAnElement
	}
	el := &Element{
		node:   node,
		layout: reg.Layout(),
		reg:    reg,
		sc:     scope.New(),
		track:  newTracker(),
	}
	for _, opt := range opts {
		opt(el)
	}
	if el.set == nil {
		el.set = media.Defaults()
	}
	if el.obs == nil {
		el.obs = NewAttrObserver()
	}
	for _, bp := range el.set.Breakpoints() {
		el.bps = append(el.bps, &bpState{bp: bp})
	}
	el.sc.SetBase(":host { display: " + el.layout + "; }")
	el.replayHostAttributes()
	return el, nil
}

// replayHostAttributes delivers (name, Nothing, Just(value)) for every
// observed layout attribute already set on the host node.
func (el *Element) replayHostAttributes() {
	for _, a := range el.node.Attr {
		if el.observesHost(a.Key) {
			el.AttributeChanged(a.Key, maybe.Nothing[string](), maybe.Just(a.Val))
		}
	}
}

// observesHost reports whether an attribute name matches one of the
// host-level observed prefixes: the registry's host-scoped property
// names plus the "inline" toggle.
func (el *Element) observesHost(name string) bool {
	prop, _ := props.SplitAttr(name)
	for _, p := range el.reg.HostPropertyNames() {
		if prop == p {
			return true
		}
	}
	return false
}

// Layout returns the layout type name, e.g. "flex". Part of interface
// props.Context.
func (el *Element) Layout() string {
	return el.layout
}

// Attr returns a host attribute value. Part of interface props.Context.
func (el *Element) Attr(name string) maybe.Maybe[string] {
	return getAttr(el.node, name)
}

// Node returns the host node.
func (el *Element) Node() *html.Node {
	return el.node
}

// Scope returns the element's encapsulated style scope.
func (el *Element) Scope() *scope.Scope {
	return el.sc
}

// State returns the element's lifecycle state.
func (el *Element) State() State {
	return el.state
}

// CSSFor returns the current text of the style block for a breakpoint
// alias ("" for the all-breakpoint), or "" if none was synthesized yet.
func (el *Element) CSSFor(alias string) string {
	return el.sc.CSSFor(styleID(el.layout, alias))
}

// SetAttr sets an attribute on the host element and runs the update
// pipeline if the attribute is an observed layout attribute.
func (el *Element) SetAttr(name, value string) {
	old := getAttr(el.node, name)
	setAttr(el.node, name, value)
	if el.observesHost(name) {
		el.AttributeChanged(name, old, maybe.Just(value))
	}
}

// RemoveAttr removes an attribute from the host element and runs the
// update pipeline if the attribute was an observed layout attribute.
func (el *Element) RemoveAttr(name string) {
	old := getAttr(el.node, name)
	if !old.Present() {
		return
	}
	removeAttr(el.node, name)
	if el.observesHost(name) {
		el.AttributeChanged(name, old, maybe.Nothing[string]())
	}
}

// SetChildAttr mutates an attribute on a direct child so that the change
// is delivered through the element's observer. Platform adapters other
// than AttrObserver deliver mutations themselves; in that case the
// attribute is only written.
func (el *Element) SetChildAttr(child *html.Node, name, value string) {
	if o, ok := el.obs.(*AttrObserver); ok {
		o.SetAttr(child, name, value)
		return
	}
	setAttr(child, name, value)
}

// RemoveChildAttr removes an attribute from a direct child, delivering
// the change like SetChildAttr does.
func (el *Element) RemoveChildAttr(child *html.Node, name string) {
	if o, ok := el.obs.(*AttrObserver); ok {
		o.RemoveAttr(child, name)
		return
	}
	removeAttr(child, name)
}

func styleID(layout, alias string) string {
	if alias == "" {
		return layout + "-all"
	}
	return layout + "-" + alias
}
