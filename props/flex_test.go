package props_test

import (
	"testing"

	"github.com/npillmayer/layel/cssom"
	"github.com/npillmayer/layel/maybe"
	"github.com/npillmayer/layel/props"
)

type fakeContext struct {
	layout string
	attrs  map[string]string
}

func (c fakeContext) Layout() string { return c.layout }

func (c fakeContext) Attr(name string) maybe.Maybe[string] {
	if v, ok := c.attrs[name]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[string]()
}

func update(t *testing.T, reg *props.Registry, name, value string) cssom.DeclList {
	t.Helper()
	d, ok := reg.ByName(name)
	if !ok {
		t.Fatalf("property %q not in registry %q", name, reg.Layout())
	}
	host, _ := d.Update(fakeContext{layout: reg.Layout()}, value, "")
	return host
}

func declMap(decls cssom.DeclList) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Key] = d.Value
	}
	return m
}

func TestFlexFlow(t *testing.T) {
	host := declMap(update(t, props.Flex(), "flow", "row wrap"))
	if host["flex-flow"] != "row wrap" {
		t.Errorf("unexpected flow fragment: %v", host)
	}
}

func TestFlexAlignMapsAxisKeywords(t *testing.T) {
	host := declMap(update(t, props.Flex(), "align", "start center"))
	if host["justify-content"] != "flex-start" {
		t.Errorf("expected main axis flex-start, is %q", host["justify-content"])
	}
	if host["align-items"] != "center" {
		t.Errorf("expected cross axis center, is %q", host["align-items"])
	}
}

func TestFlexAlignSkipsPlaceholderAxis(t *testing.T) {
	host := declMap(update(t, props.Flex(), "align", "- end"))
	if _, ok := host["justify-content"]; ok {
		t.Error("expected '-' to skip the main axis, doesn't")
	}
	if host["align-items"] != "flex-end" {
		t.Errorf("expected cross axis flex-end, is %q", host["align-items"])
	}
}

func TestGridAlignKeepsPlainKeywords(t *testing.T) {
	host := declMap(update(t, props.Grid(), "align", "start end"))
	if host["justify-content"] != "start" || host["align-items"] != "end" {
		t.Errorf("expected grid dialect start/end, is %v", host)
	}
}

func TestGapNormalizesBareNumbers(t *testing.T) {
	host := declMap(update(t, props.Flex(), "gap", "8"))
	if host["gap"] != "8px" {
		t.Errorf("expected gap 8px, is %q", host["gap"])
	}
	host = declMap(update(t, props.Flex(), "gap", "1.5rem"))
	if host["gap"] != "1.5rem" {
		t.Errorf("expected unit value to pass through, is %q", host["gap"])
	}
}

func TestFlexChildShorthand(t *testing.T) {
	cases := [][2]string{
		{"2", "2 1 0%"},
		{"200px", "1 1 200px"},
		{"33%", "1 1 33%"},
		{"auto", "auto"},
		{"0 1 auto", "0 1 auto"},
	}
	for _, c := range cases {
		host := declMap(update(t, props.Flex(), "flex", c[0]))
		if host["flex"] != c[1] {
			t.Errorf("flex=%q: expected %q, is %q", c[0], c[1], host["flex"])
		}
	}
}

func TestFlexSelf(t *testing.T) {
	host := declMap(update(t, props.Flex(), "self", "end"))
	if host["align-self"] != "flex-end" {
		t.Errorf("expected align-self flex-end, is %q", host["align-self"])
	}
}

func TestGridSpan(t *testing.T) {
	host := declMap(update(t, props.Grid(), "span", "2"))
	if host["grid-column"] != "span 2" {
		t.Errorf("unexpected span fragment: %v", host)
	}
	host = declMap(update(t, props.Grid(), "span", "2 3"))
	if host["grid-column"] != "span 2" || host["grid-row"] != "span 3" {
		t.Errorf("unexpected two-axis span fragment: %v", host)
	}
}

func TestGridAreas(t *testing.T) {
	host := declMap(update(t, props.Grid(), "areas", "nav main / nav foot"))
	if host["grid-template-areas"] != `"nav main" "nav foot"` {
		t.Errorf("unexpected areas fragment: %q", host["grid-template-areas"])
	}
}
