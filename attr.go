package layel

import (
	"github.com/npillmayer/layel/maybe"
	"golang.org/x/net/html"
)

func getAttr(n *html.Node, name string) maybe.Maybe[string] {
	for _, a := range n.Attr {
		if a.Key == name {
			return maybe.Just(a.Val)
		}
	}
	return maybe.Nothing[string]()
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func childElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			out = append(out, ch)
		}
	}
	return out
}
