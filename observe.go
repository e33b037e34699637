package layel

import (
	"github.com/npillmayer/layel/maybe"
	"golang.org/x/net/html"
)

// ChangeFunc receives one attribute mutation: the mutated node, the
// attribute name, and the old and new values, where Nothing means the
// attribute was absent.
type ChangeFunc func(target *html.Node, name string, old, nu maybe.Maybe[string])

// Observer is the change-notification capability the mutation pipeline
// consumes: observe a set of nodes for changes to a named attribute
// subset, delivering old and new values per change. Platform adapters
// with native mutation events implement this interface themselves;
// library-only use gets an AttrObserver.
type Observer interface {
	Observe(targets []*html.Node, attrNames []string, deliver ChangeFunc)
	Disconnect()
}

// AttrObserver is an Observer for plain x/net/html trees, which have no
// native mutation events. Mutations must go through SetAttr/RemoveAttr,
// which capture the old value and deliver the change synchronously while
// the observer is connected.
type AttrObserver struct {
	targets map[*html.Node]bool
	names   map[string]bool
	deliver ChangeFunc
	active  bool
}

// NewAttrObserver creates a disconnected observer.
func NewAttrObserver() *AttrObserver {
	return &AttrObserver{}
}

// Observe connects the observer to a set of nodes and attribute names.
// A second call replaces the previous observation set.
func (o *AttrObserver) Observe(targets []*html.Node, attrNames []string, deliver ChangeFunc) {
	o.targets = make(map[*html.Node]bool, len(targets))
	for _, t := range targets {
		o.targets[t] = true
	}
	o.names = make(map[string]bool, len(attrNames))
	for _, n := range attrNames {
		o.names[n] = true
	}
	o.deliver = deliver
	o.active = true
}

// Disconnect stops delivery. The observation set is kept, so a later
// Observe call may simply re-activate with fresh targets.
func (o *AttrObserver) Disconnect() {
	o.active = false
}

// SetAttr sets an attribute on a node and delivers the change if the
// node and name are under observation.
func (o *AttrObserver) SetAttr(n *html.Node, name, value string) {
	old := getAttr(n, name)
	setAttr(n, name, value)
	o.notify(n, name, old, maybe.Just(value))
}

// RemoveAttr removes an attribute from a node and delivers the change if
// the attribute was present and under observation.
func (o *AttrObserver) RemoveAttr(n *html.Node, name string) {
	old := getAttr(n, name)
	if !old.Present() {
		return
	}
	removeAttr(n, name)
	o.notify(n, name, old, maybe.Nothing[string]())
}

func (o *AttrObserver) notify(n *html.Node, name string, old, nu maybe.Maybe[string]) {
	if !o.active || !o.targets[n] || !o.names[name] {
		return
	}
	o.deliver(n, name, old, nu)
}
