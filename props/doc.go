/*
Package props describes the trackable layout properties of a responsive
layout element.

A property descriptor names an attribute ("gap", "self", …), says whether
the attribute lives on the host element or on its direct children, and
carries an update function translating an attribute value into CSS
fragments. Descriptors are grouped into per-layout-type registries; the
built-in registries cover the "flex" and "grid" layout types.

Update functions are pure: the same value and alias always produce the
same fragments. Ambient element state is handed in through an explicit
Context instead of closure capture.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layel.props'.
func tracer() tracing.Trace {
	return tracing.Select("layel.props")
}
