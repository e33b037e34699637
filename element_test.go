package layel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/layel"
	"github.com/npillmayer/layel/cssom"
	"github.com/npillmayer/layel/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

// hostFromHTML parses a fragment and returns its first element as the
// layout element's host node.
func hostFromHTML(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	var body *html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			find(ch)
		}
	}
	find(doc)
	if body == nil || body.FirstChild == nil {
		t.Fatal("fragment has no body element")
	}
	return body.FirstChild
}

func TestNewRejectsNonElement(t *testing.T) {
	_, err := layel.New(nil, props.Flex())
	if !errors.Is(err, layel.ErrNotAnElement) {
		t.Errorf("expected ErrNotAnElement, have %v", err)
	}
	text := &html.Node{Type: html.TextNode, Data: "hello"}
	if _, err := layel.New(text, props.Flex()); err == nil {
		t.Error("expected text node to be rejected, isn't")
	}
}

func TestBaseDisplayRule(t *testing.T) {
	host := hostFromHTML(t, `<layel-flex></layel-flex>`)
	el, err := layel.New(host, props.Flex())
	if err != nil {
		t.Fatal(err)
	}
	if base := el.Scope().CSSFor("base"); base != ":host { display: flex; }" {
		t.Errorf("unexpected base rule: %q", base)
	}
}

func TestHostAttributeReplayAtConstruction(t *testing.T) {
	host := hostFromHTML(t, `<layel-grid gap="8px"></layel-grid>`)
	el, err := layel.New(host, props.Grid())
	if err != nil {
		t.Fatal(err)
	}
	want := "@media all {\n:host { gap: 8px; display: grid; }\n}"
	if css := el.CSSFor(""); css != want {
		t.Errorf("expected construction replay to synthesize %q, have %q", want, css)
	}
}

func TestGapScenario(t *testing.T) {
	// host attribute gap="8px" with layout type grid, then removal
	host := hostFromHTML(t, `<layel-grid></layel-grid>`)
	el, err := layel.New(host, props.Grid())
	if err != nil {
		t.Fatal(err)
	}
	el.SetAttr("gap", "8px")
	if css := el.CSSFor(""); css != "@media all {\n:host { gap: 8px; display: grid; }\n}" {
		t.Errorf("unexpected CSS after set: %q", css)
	}
	el.RemoveAttr("gap")
	// gap is gone, but the once-seen breakpoint keeps its display default
	if css := el.CSSFor(""); css != "@media all {\n:host { display: grid; }\n}" {
		t.Errorf("unexpected CSS after removal: %q", css)
	}
}

func TestBreakpointIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layel.dom")
	defer teardown()
	//
	host := hostFromHTML(t, `<layel-flex></layel-flex>`)
	el, err := layel.New(host, props.Flex())
	if err != nil {
		t.Fatal(err)
	}
	el.SetAttr("gap", "8px")
	allBefore := el.CSSFor("")
	el.SetAttr("gap-sm", "4px")
	if el.CSSFor("") != allBefore {
		t.Error("expected sm change to leave the all block untouched, didn't")
	}
	want := "@media (min-width: 640px) {\n:host { gap: 4px; display: flex; }\n}"
	if css := el.CSSFor("sm"); css != want {
		t.Errorf("unexpected sm block: %q", css)
	}
	el.SetAttr("gap-sm", "16px")
	if el.CSSFor("") != allBefore {
		t.Error("expected second sm change to leave the all block untouched, didn't")
	}
}

func TestInlineDisplayVariant(t *testing.T) {
	host := hostFromHTML(t, `<layel-flex></layel-flex>`)
	el, err := layel.New(host, props.Flex())
	if err != nil {
		t.Fatal(err)
	}
	el.SetAttr("inline", "")
	if css := el.CSSFor(""); css != "@media all {\n:host { display: inline-flex; }\n}" {
		t.Errorf("expected inline-flex display, have %q", css)
	}
	el.RemoveAttr("inline")
	// nothing tracked and nothing ever registered: the block clears and
	// the base rule's display: flex takes over again
	if css := el.CSSFor(""); css != "" {
		t.Errorf("expected cleared all block, have %q", css)
	}
}

func TestInlinePerBreakpoint(t *testing.T) {
	host := hostFromHTML(t, `<layel-grid inline-md=""></layel-grid>`)
	el, err := layel.New(host, props.Grid())
	if err != nil {
		t.Fatal(err)
	}
	want := "@media (min-width: 768px) {\n:host { display: inline-grid; }\n}"
	if css := el.CSSFor("md"); css != want {
		t.Errorf("unexpected md block: %q", css)
	}
	if css := el.CSSFor(""); css != "" {
		t.Errorf("expected untouched all block, have %q", css)
	}
}

func TestSynthesizedCSSValidates(t *testing.T) {
	host := hostFromHTML(t, `<layel-flex gap="8" align="start center"></layel-flex>`)
	el, err := layel.New(host, props.Flex())
	if err != nil {
		t.Fatal(err)
	}
	el.SetAttr("gap-lg", "24px")
	for _, alias := range []string{"", "lg"} {
		if css := el.CSSFor(alias); css != "" {
			if err := cssom.Validate(css); err != nil {
				t.Errorf("breakpoint %q: %v", alias, err)
			}
		}
	}
}
