package scope

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// MatchingChildren resolves a synthesized selector against the actual
// direct children of a host node. Selectors of the form
// ::slotted(<inner>) match every direct child element that <inner>
// selects; ":host" yields the host itself. Other selector forms are not
// produced by the synthesizer and are rejected.
func MatchingChildren(host *html.Node, selector string) ([]*html.Node, error) {
	if selector == ":host" {
		return []*html.Node{host}, nil
	}
	inner, ok := strings.CutPrefix(selector, "::slotted(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return nil, fmt.Errorf("scope: unsupported selector form %q", selector)
	}
	inner = strings.TrimSuffix(inner, ")")
	if inner == "*" {
		return elementChildren(host), nil
	}
	sel, err := cascadia.Compile(inner)
	if err != nil {
		return nil, fmt.Errorf("scope: cannot compile selector %q: %w", inner, err)
	}
	var matched []*html.Node
	for _, ch := range elementChildren(host) {
		if sel.Match(ch) {
			matched = append(matched, ch)
		}
	}
	return matched, nil
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			out = append(out, ch)
		}
	}
	return out
}
