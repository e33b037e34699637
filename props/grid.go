package props

import (
	"strings"

	"github.com/npillmayer/layel/cssom"
)

// Grid returns the property registry for the "grid" layout type.
//
// Host-scoped: columns, rows, areas, gap, align. Child-scoped: span
// (column/row spans), area (grid-area name).
func Grid() *Registry {
	return NewRegistry("grid",
		Descriptor{Name: "columns", Update: gridColumns},
		Descriptor{Name: "rows", Update: gridRows},
		Descriptor{Name: "areas", Update: gridAreas},
		Descriptor{Name: "gap", Update: gap},
		Descriptor{Name: "align", Update: alignAxes},
		Descriptor{Name: "span", Child: true, Update: gridSpan},
		Descriptor{Name: "area", Child: true, Update: gridArea},
	)
}

func gridColumns(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "grid-template-columns", Value: value}}
	return
}

func gridRows(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "grid-template-rows", Value: value}}
	return
}

// gridAreas expects rows separated by "/", e.g.
// areas="nav main / nav foot", and emits each row as a quoted string.
func gridAreas(_ Context, value, _ string) (host, child cssom.DeclList) {
	rows := strings.Split(value, "/")
	quoted := make([]string, len(rows))
	for i, row := range rows {
		quoted[i] = `"` + strings.TrimSpace(row) + `"`
	}
	host = cssom.DeclList{{Key: "grid-template-areas", Value: strings.Join(quoted, " ")}}
	return
}

// gridSpan maps span="2" to a column span and span="2 3" to column and
// row spans.
func gridSpan(_ Context, value, _ string) (host, child cssom.DeclList) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return
	}
	host = cssom.DeclList{{Key: "grid-column", Value: "span " + fields[0]}}
	if len(fields) > 1 {
		host = append(host, cssom.Decl{Key: "grid-row", Value: "span " + fields[1]})
	}
	return
}

func gridArea(_ Context, value, _ string) (host, child cssom.DeclList) {
	host = cssom.DeclList{{Key: "grid-area", Value: value}}
	return
}
