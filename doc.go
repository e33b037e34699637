/*
Package layel implements a responsive layout element: a DOM element that
styles itself and its direct children with CSS computed from declarative
attributes, re-evaluated per named breakpoint.

Consumers set attributes like "gap", "gap-sm" or "self-lg" on the element
or on its direct children. The element keeps reference-counted track of
every observed (property, breakpoint) value, synthesizes one stylesheet
per breakpoint from the tracked state, and injects each stylesheet into
its encapsulated style scope, wrapped in the breakpoint's media query.

The element is single-threaded and callback-driven: attribute mutations
are processed synchronously and serially, each change running tracker
update, CSS rebuild and stylesheet write to completion before the next
one. Only the stylesheet of the affected breakpoint is regenerated.

Breakpoints come from package media, property registries from package
props, the CSS object model from package cssom, and the style scope from
package scope.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layel.dom'.
func tracer() tracing.Trace {
	return tracing.Select("layel.dom")
}
