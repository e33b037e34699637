package props

import (
	"strconv"
	"strings"

	"github.com/npillmayer/layel/css"
	"github.com/npillmayer/layel/cssom"
)

// Flex returns the property registry for the "flex" layout type.
//
// Host-scoped: flow (flex-flow), align (main/cross axis alignment),
// gap. Child-scoped: self (align-self), flex (flex shorthand or basis),
// order.
func Flex() *Registry {
	return NewRegistry("flex",
		Descriptor{Name: "flow", Update: flexFlow},
		Descriptor{Name: "align", Update: alignAxes},
		Descriptor{Name: "gap", Update: gap},
		Descriptor{Name: "self", Child: true, Update: flexSelf},
		Descriptor{Name: "flex", Child: true, Update: flexChild},
		Descriptor{Name: "order", Child: true, Update: childOrder},
	)
}

// flexFlow maps e.g. flow="row wrap" to flex-flow.
func flexFlow(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "flex-flow", Value: value}}
	return
}

// alignAxes maps align="<main> <cross>" to main- and cross-axis
// alignment. A "-" placeholder skips an axis. The keyword dialect depends
// on the layout type: flex containers want flex-start/flex-end, grid
// containers plain start/end.
func alignAxes(ctx Context, value, _ string) (host, child cssom.DeclList) {
	fields := strings.Fields(value)
	grid := ctx.Layout() == "grid"
	if len(fields) > 0 && fields[0] != "-" {
		host = append(host, cssom.Decl{Key: "justify-content", Value: axisKeyword(fields[0], grid)})
	}
	if len(fields) > 1 && fields[1] != "-" {
		host = append(host, cssom.Decl{Key: "align-items", Value: axisKeyword(fields[1], grid)})
	}
	return
}

func axisKeyword(kw string, grid bool) string {
	if grid {
		return kw
	}
	switch kw {
	case "start":
		return "flex-start"
	case "end":
		return "flex-end"
	}
	return kw
}

// gap normalizes bare numeric values to pixel lengths.
func gap(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "gap", Value: css.Normalize(value)}}
	return
}

func flexSelf(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "align-self", Value: axisKeyword(value, false)}}
	return
}

// flexChild accepts either a full flex shorthand ("0 1 auto"), a bare
// grow factor ("2"), or a basis dimension ("200px", "33%"), which is
// expanded to a grow/shrink pair with that basis.
func flexChild(_ Context, value, _ string) (host, child cssom.DeclList) {
	v := strings.TrimSpace(value)
	if len(strings.Fields(v)) == 1 {
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			// bare number: a grow factor
			host = cssom.DeclList{{Key: "flex", Value: v + " 1 0%"}}
			return
		}
		if d, ok := css.Parse(v); ok && d.Keyword() == "" {
			// a basis dimension like "200px" or "33%"
			host = cssom.DeclList{{Key: "flex", Value: "1 1 " + v}}
			return
		}
	}
	host = cssom.DeclList{{Key: "flex", Value: v}}
	return
}

func childOrder(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "order", Value: value}}
	return
}
