/*
Package cssom implements a small object model for CSS text generation.

A CSS tree is built from two kinds of nodes: rule nodes, which map
selectors to further nodes, and declaration nodes, which map property
keys to value strings. The distinction is an explicit tag, not a
structural convention, so serialization never has to guess what a
nested mapping means.

Both node kinds preserve insertion order, and re-serializing an
unchanged tree produces byte-identical text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layel.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("layel.cssom")
}
