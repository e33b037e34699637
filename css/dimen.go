package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// PX is the CSS reference pixel: 1/96 inch, i.e. 3/4 of a printer's point.
var PX = dimen.PT * 3 / 4

const (
	kindNone uint8 = iota
	kindAuto
	kindInherit
	kindInitial
	kindFixed
	kindPercent
)

// DimenT is an option type for CSS dimension values.
//
//	type DimenT
//	    = Auto
//	    | Inherit
//	    | Initial
//	    | JustDimen dimen
//	    | Percentage Percent
type DimenT struct {
	d    dimen.DU
	p    percent.Percent
	kind uint8
}

// Auto returns the CSS keyword dimension "auto".
func Auto() DimenT {
	return DimenT{kind: kindAuto}
}

// Inherit returns the CSS keyword dimension "inherit".
func Inherit() DimenT {
	return DimenT{kind: kindInherit}
}

// Initial returns the CSS keyword dimension "initial".
func Initial() DimenT {
	return DimenT{kind: kindInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, kind: kindFixed}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(p percent.Percent) DimenT {
	return DimenT{p: p, kind: kindPercent}
}

// IsNone is true for the zero value, i.e. a non-dimension.
func (d DimenT) IsNone() bool {
	return d.kind == kindNone
}

// Just returns the fixed value of a dimension, with an ok-flag.
func (d DimenT) Just() (dimen.DU, bool) {
	return d.d, d.kind == kindFixed
}

// Percent returns the %-relative value of a dimension, with an ok-flag.
func (d DimenT) Percent() (percent.Percent, bool) {
	return d.p, d.kind == kindPercent
}

// Keyword returns the CSS keyword for keyword dimensions, "" otherwise.
func (d DimenT) Keyword() string {
	switch d.kind {
	case kindAuto:
		return "auto"
	case kindInherit:
		return "inherit"
	case kindInitial:
		return "initial"
	}
	return ""
}

// Parse interprets an attribute value as a CSS dimension. Recognized are
// the keywords auto/inherit/initial, integer percentages, and px/pt
// values; a bare number counts as pixels. Anything else yields a
// none-dimension and ok=false: the value is opaque to us and will be
// passed through to CSS verbatim.
func Parse(value string) (DimenT, bool) {
	v := strings.TrimSpace(value)
	switch v {
	case "auto":
		return Auto(), true
	case "inherit":
		return Inherit(), true
	case "initial":
		return Initial(), true
	}
	if n, ok := strings.CutSuffix(v, "%"); ok {
		if i, err := strconv.Atoi(n); err == nil {
			return Percentage(percent.FromInt(i)), true
		}
		return DimenT{}, false
	}
	unit := PX
	num := v
	if n, ok := strings.CutSuffix(v, "px"); ok {
		num = n
	} else if n, ok := strings.CutSuffix(v, "pt"); ok {
		num, unit = n, dimen.PT
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return JustDimen(dimen.DU(f * float64(unit))), true
	}
	return DimenT{}, false
}

// Normalize rewrites a bare numeric attribute value as a pixel length
// ("8" becomes "8px"). Values that already carry a unit, and values we
// cannot interpret, pass through unchanged.
func Normalize(value string) string {
	v := strings.TrimSpace(value)
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v + "px"
	}
	return value
}
