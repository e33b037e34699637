package layel

import (
	"github.com/npillmayer/layel/cssom"
	"github.com/npillmayer/layel/maybe"
	"github.com/npillmayer/layel/props"
)

// AttributeChanged is the single update routine for host and child
// attribute mutations alike. It decodes the attribute name into
// (property, breakpoint alias), updates reference counts, and
// regenerates the stylesheet of the affected breakpoint only.
//
// Unknown breakpoint aliases fall back to the "all" breakpoint; unknown
// property names are logged and skipped. Nothing here ever fails.
func (el *Element) AttributeChanged(name string, old, nu maybe.Maybe[string]) {
	prop, alias := props.SplitAttr(name)
	b := el.resolveBreakpoint(alias)
	if prop == "inline" {
		el.track.record("inline", b.bp.Alias, old, nu)
		el.synthesize(b)
		return
	}
	d, fresh, ok := el.resolveProperty(b, prop)
	if !ok {
		tracer().P("attr", name).Infof("no layout property for attribute, skipping")
		return
	}
	if fresh {
		b.props = append(b.props, d)
	}
	el.track.record(prop, b.bp.Alias, old, nu)
	el.synthesize(b)
}

// resolveBreakpoint finds the per-instance state for an alias, falling
// back to the synthetic "all" breakpoint for aliases the set does not
// know. Attributes with an unknown alias thus behave like attributes
// without a suffix. The fallback is host-attribute-oriented: a
// child-scoped change delivered with an unknown alias synthesizes a
// selector under the resolved alias, which cannot match the literal
// attribute name on the child. The observer only watches child
// attributes with known aliases, so this stays out of reach in normal
// operation.
func (el *Element) resolveBreakpoint(alias string) *bpState {
	for _, b := range el.bps {
		if b.bp.Alias == alias {
			return b
		}
	}
	return el.bps[0]
}

// resolveProperty searches the breakpoint's active-property list first
// and falls back to the full registry, reporting fresh=true so the
// caller appends the descriptor to the active list. ok=false means the
// name matches no descriptor anywhere.
func (el *Element) resolveProperty(b *bpState, name string) (d props.Descriptor, fresh, ok bool) {
	for _, d := range b.props {
		if d.Name == name {
			return d, false, true
		}
	}
	d, ok = el.reg.ByName(name)
	return d, ok, ok
}

// synthesize rebuilds the CSS tree for one breakpoint from the current
// tracked state and writes it into the scope's style block for that
// breakpoint. The tree is rebuilt from scratch every time; with the
// small property counts involved, correctness beats incrementality.
func (el *Element) synthesize(b *bpState) {
	alias := b.bp.Alias
	tree := cssom.Rules()
	host := tree.Sel(":host")
	slotted := tree.Sel("::slotted(*)")
	for _, d := range b.props {
		counts := el.track.lookup(d.Name, alias)
		if counts == nil || counts.Len() == 0 {
			continue
		}
		if !d.Child {
			// first value still present wins
			h, c := d.Update(el, counts.Oldest().Key, alias)
			host.PutAll(h)
			slotted.PutAll(c)
			continue
		}
		// one rule per distinct tracked value, so concurrent child
		// variants coexist
		for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
			sel := `::slotted([` + props.AttrName(d.Name, alias) + `="` + pair.Key + `"])`
			bucket, _ := d.Update(el, pair.Key, alias)
			tree.Sel(sel).PutAll(bucket)
		}
	}
	inline := el.track.present("inline", alias)
	applyDefaults := alias != "" || len(b.props) > 0 || inline
	if !host.Empty() || applyDefaults {
		display := el.layout
		if inline {
			display = "inline-" + el.layout
		}
		host.Put("display", display)
	}
	el.sc.AttachCSS(styleID(el.layout, alias), b.bp.MediaQuery, tree.CSS())
}
