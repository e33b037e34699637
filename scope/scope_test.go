package scope_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/layel/scope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAttachCreatesOneStylePerID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layel.scope")
	defer teardown()
	//
	s := scope.New()
	s.AttachCSS("flex-all", "all", ":host { display: flex; }")
	s.AttachCSS("flex-sm", "(min-width: 640px)", ":host { gap: 8px; }")
	s.AttachCSS("flex-all", "all", ":host { display: inline-flex; }")
	if n := s.StyleCount(); n != 2 {
		t.Fatalf("expected 2 style nodes, have %d", n)
	}
	if css := s.CSSFor("flex-all"); !strings.Contains(css, "inline-flex") {
		t.Errorf("expected re-attach to replace text, have %q", css)
	}
}

func TestAttachWrapsInMediaBlock(t *testing.T) {
	s := scope.New()
	s.AttachCSS("grid-md", "(min-width: 768px)", ":host { gap: 16px; }")
	css := s.CSSFor("grid-md")
	if !strings.HasPrefix(css, "@media (min-width: 768px) {") {
		t.Errorf("expected @media wrapper, have %q", css)
	}
}

func TestAttachEmptyClearsBlock(t *testing.T) {
	s := scope.New()
	s.AttachCSS("flex-sm", "(min-width: 640px)", ":host { gap: 8px; }")
	s.AttachCSS("flex-sm", "(min-width: 640px)", "")
	if css := s.CSSFor("flex-sm"); css != "" {
		t.Errorf("expected cleared style block, have %q", css)
	}
	if n := s.StyleCount(); n != 1 {
		t.Errorf("expected the node itself to persist, count is %d", n)
	}
}

func TestStylesPrecedeSlot(t *testing.T) {
	s := scope.New()
	s.SetBase(":host { display: flex; }")
	s.AttachCSS("flex-sm", "(min-width: 640px)", ":host { gap: 8px; }")
	var b strings.Builder
	if err := s.Render(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("scope =\n%s", out)
	slotPos := strings.Index(out, "<slot")
	for _, id := range s.StyleIDs() {
		stylePos := strings.Index(out, `id="`+id+`"`)
		if stylePos < 0 || stylePos > slotPos {
			t.Errorf("expected style %q to be rendered before the slot", id)
		}
	}
}

func TestStyleIDsInCreationOrder(t *testing.T) {
	s := scope.New()
	s.AttachCSS("b", "all", "x { y: z; }")
	s.AttachCSS("a", "all", "x { y: z; }")
	s.AttachCSS("b", "all", "x { y: w; }") // replaces, does not reorder
	ids := s.StyleIDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Errorf("unexpected style order: %v", ids)
	}
}
