/*
Package scope implements the encapsulated style area of a layout element.

A Scope is a detached DOM fragment, modeled with golang.org/x/net/html
nodes, holding one persistent <style> node per breakpoint alias plus a
<slot> node as the content-projection point. Style nodes are created
before the slot on first use and have their text replaced in place on
every later update, so the cascade order of the scope never changes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layel.scope'.
func tracer() tracing.Trace {
	return tracing.Select("layel.scope")
}
