/*
Package media manages named responsive breakpoints.

A breakpoint couples a short alias, as used in attribute suffixes like
"gap-sm", with a CSS media query. Breakpoints live in an ordered Set,
which always contains a synthetic "all" breakpoint (empty alias, media
query "all") as the fallback target for attributes without a suffix and
for aliases the set does not know.

Sets may be constructed in code, loaded from a YAML configuration, or
taken from Defaults().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package media

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layel.media'.
func tracer() tracing.Trace {
	return tracing.Select("layel.media")
}
