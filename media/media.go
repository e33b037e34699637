package media

import "fmt"

// Breakpoint describes a named responsive condition. Breakpoints are
// immutable value types; per-element state is kept elsewhere.
type Breakpoint struct {
	Alias       string // suffix used in attribute names, e.g. "sm"
	MediaQuery  string // CSS media condition, e.g. "(min-width: 640px)"
	Overlapping bool   // query has no upper bound, larger breakpoints stack on top
}

// All returns the synthetic fallback breakpoint. It matches every medium
// and is addressed by attributes without an alias suffix.
func All() Breakpoint {
	return Breakpoint{Alias: "", MediaQuery: "all", Overlapping: true}
}

// Query builds a min/max-width media query. A zero max leaves the query
// open-ended (overlapping); a zero min with zero max yields "all".
func Query(min, max int) string {
	switch {
	case min == 0 && max == 0:
		return "all"
	case max == 0:
		return fmt.Sprintf("(min-width: %dpx)", min)
	case min == 0:
		return fmt.Sprintf("(max-width: %dpx)", max)
	}
	return fmt.Sprintf("(min-width: %dpx) and (max-width: %dpx)", min, max)
}

// Set is an ordered collection of breakpoints. The synthetic "all"
// breakpoint is always present at position 0.
type Set struct {
	bps []Breakpoint
}

// NewSet builds a Set from the given breakpoints, in order. An entry with
// an empty alias is ignored; the synthetic "all" breakpoint is supplied by
// the Set itself.
func NewSet(bps ...Breakpoint) *Set {
	s := &Set{bps: []Breakpoint{All()}}
	for _, bp := range bps {
		if bp.Alias == "" {
			tracer().Infof("media: dropping breakpoint with empty alias (reserved for 'all')")
			continue
		}
		s.bps = append(s.bps, bp)
	}
	return s
}

// Defaults returns a set with the customary device-width tiers:
// sm ≥640px, md ≥768px, lg ≥1024px, xl ≥1280px, 2xl ≥1536px.
// All tiers are overlapping (min-width only).
func Defaults() *Set {
	return NewSet(
		Breakpoint{Alias: "sm", MediaQuery: Query(640, 0), Overlapping: true},
		Breakpoint{Alias: "md", MediaQuery: Query(768, 0), Overlapping: true},
		Breakpoint{Alias: "lg", MediaQuery: Query(1024, 0), Overlapping: true},
		Breakpoint{Alias: "xl", MediaQuery: Query(1280, 0), Overlapping: true},
		Breakpoint{Alias: "2xl", MediaQuery: Query(1536, 0), Overlapping: true},
	)
}

// Resolve finds a breakpoint by exact alias match. Unknown aliases fall
// back to the synthetic "all" breakpoint; this is a fallback, not an error.
func (s *Set) Resolve(alias string) Breakpoint {
	for _, bp := range s.bps {
		if bp.Alias == alias {
			return bp
		}
	}
	return s.bps[0]
}

// Breakpoints returns the breakpoints of the set, "all" first.
func (s *Set) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(s.bps))
	copy(out, s.bps)
	return out
}

// Len returns the number of breakpoints, including the synthetic "all".
func (s *Set) Len() int {
	return len(s.bps)
}
