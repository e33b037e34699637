package scope

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Scope is the encapsulated style area of one element instance. It owns
// its style nodes exclusively; no cross-instance sharing.
type Scope struct {
	root   *html.Node
	slot   *html.Node
	styles map[string]*html.Node
	ids    []string
}

// New creates an empty scope: a <template> fragment containing only the
// <slot> content-projection point.
func New() *Scope {
	root := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
	slot := &html.Node{Type: html.ElementNode, Data: "slot", DataAtom: atom.Slot}
	root.AppendChild(slot)
	return &Scope{
		root:   root,
		slot:   slot,
		styles: make(map[string]*html.Node),
	}
}

// AttachCSS writes a breakpoint's stylesheet into the scope. The style
// node for id is created before the slot on first use; afterwards only
// its text is replaced, preserving position in the cascade. CSS text is
// wrapped in an @media block for the given query; empty text clears the
// block without removing the node.
func (s *Scope) AttachCSS(id, mediaQuery, cssText string) {
	text := ""
	if cssText != "" {
		text = fmt.Sprintf("@media %s {\n%s\n}", mediaQuery, cssText)
	}
	st := s.ensureStyle(id)
	setText(st, text)
	tracer().P("style", id).Debugf("attached %d byte(s) of CSS", len(text))
}

// SetBase writes the construction-time base stylesheet of the scope,
// without a media wrapper. The base style node is subject to the same
// create-once/replace-text rule as breakpoint styles.
func (s *Scope) SetBase(cssText string) {
	setText(s.ensureStyle("base"), cssText)
}

func (s *Scope) ensureStyle(id string) *html.Node {
	if st, ok := s.styles[id]; ok {
		return st
	}
	st := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	s.root.InsertBefore(st, s.slot)
	s.styles[id] = st
	s.ids = append(s.ids, id)
	return st
}

func setText(st *html.Node, text string) {
	for ch := st.FirstChild; ch != nil; {
		next := ch.NextSibling
		st.RemoveChild(ch)
		ch = next
	}
	st.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// CSSFor returns the current text of the style node for id, or "" if no
// such node exists yet.
func (s *Scope) CSSFor(id string) string {
	st, ok := s.styles[id]
	if !ok {
		return ""
	}
	text := ""
	for ch := st.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			text += ch.Data
		}
	}
	return text
}

// StyleIDs returns the identifiers of all style nodes, in creation order.
func (s *Scope) StyleIDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// StyleCount returns the number of style nodes in the scope.
func (s *Scope) StyleCount() int {
	return len(s.ids)
}

// Render serializes the scope fragment as HTML.
func (s *Scope) Render(w io.Writer) error {
	return html.Render(w, s.root)
}
