package layel

import (
	"github.com/npillmayer/layel/maybe"
	"golang.org/x/net/html"
)

// OnAttach wires the element up after insertion into a document: the
// observer starts watching every direct child for the child-scoped
// attribute names, and attributes already present on children are
// replayed as (name, Nothing, Just(value)) changes to seed the tracked
// state. Children may carry attributes before the observer exists, so
// the replay is required for correctness, and it is idempotent in effect:
// re-attaching without intervening changes reproduces the same CSS.
func (el *Element) OnAttach() {
	names := el.reg.ChildAttributeNames(el.set)
	children := childElements(el.node)
	el.obs.Observe(children, names, el.childChanged)
	el.state = Attached
	tracer().P("layout", el.layout).Debugf("attached, observing %d child(ren)", len(children))
	for _, ch := range children {
		for _, name := range names {
			if v, ok := getAttr(ch, name).Value(); ok {
				el.childChanged(ch, name, maybe.Nothing[string](), maybe.Just(v))
			}
		}
	}
}

// OnDetach cancels child observation. Tracked state and style blocks
// stay intact; re-attachment resumes from whatever is currently tracked.
func (el *Element) OnDetach() {
	el.obs.Disconnect()
	el.state = Detached
	tracer().P("layout", el.layout).Debugf("detached")
}

// childChanged funnels child-attribute mutations into the same update
// routine used for host attributes.
func (el *Element) childChanged(_ *html.Node, name string, old, nu maybe.Maybe[string]) {
	el.AttributeChanged(name, old, nu)
}
