package cssom

import (
	"strings"

	orderedmap "github.com/pb33f/ordered-map/v2"
)

// Decl is a single CSS declaration, e.g. {"gap", "8px"}.
type Decl struct {
	Key   string
	Value string
}

// DeclList is an ordered list of declarations. Update functions of layout
// properties return their CSS fragments as DeclLists.
type DeclList []Decl

// Node is a node of a CSS tree: either a rule node, mapping selectors to
// sub-nodes, or a declaration node, mapping property keys to values.
// Use Rules() or Decls() to create one; the zero value is not usable.
type Node struct {
	rules *orderedmap.OrderedMap[string, *Node]
	decls *orderedmap.OrderedMap[string, string]
}

// Rules creates an empty rule node.
func Rules() *Node {
	return &Node{rules: orderedmap.New[string, *Node]()}
}

// Decls creates an empty declaration node.
func Decls() *Node {
	return &Node{decls: orderedmap.New[string, string]()}
}

// IsRules returns true for rule nodes.
func (n *Node) IsRules() bool {
	return n != nil && n.rules != nil
}

// Sel returns the sub-node for a selector, creating an empty declaration
// node on first use. Selectors are emitted verbatim; values containing
// CSS metacharacters are the caller's responsibility.
//
// Calling Sel on a declaration node is a programming error and panics.
func (n *Node) Sel(selector string) *Node {
	if n.rules == nil {
		panic("cssom: Sel called on a declaration node")
	}
	if sub, ok := n.rules.Get(selector); ok {
		return sub
	}
	sub := Decls()
	n.rules.Set(selector, sub)
	return sub
}

// Nest inserts a rule node for a selector, for nested rules such as
// @media blocks. An existing sub-node for the selector is replaced.
func (n *Node) Nest(selector string) *Node {
	if n.rules == nil {
		panic("cssom: Nest called on a declaration node")
	}
	sub := Rules()
	n.rules.Set(selector, sub)
	return sub
}

// Put sets a declaration. A key already present keeps its position but
// receives the new value, i.e. later writers overwrite earlier ones.
//
// Calling Put on a rule node is a programming error and panics.
func (n *Node) Put(key, value string) {
	if n.decls == nil {
		panic("cssom: Put called on a rule node")
	}
	n.decls.Set(key, value)
}

// PutAll sets all declarations of a fragment, in order.
func (n *Node) PutAll(decls DeclList) {
	for _, d := range decls {
		n.Put(d.Key, d.Value)
	}
}

// Empty returns true if the node contributes no CSS text: a declaration
// node without declarations, or a rule node whose sub-nodes are all empty.
func (n *Node) Empty() bool {
	if n == nil {
		return true
	}
	if n.decls != nil {
		return n.decls.Len() == 0
	}
	for pair := n.rules.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Empty() {
			return false
		}
	}
	return true
}

// EachRule calls f for every selector of a rule node, in insertion order.
// It is a no-op on declaration nodes.
func (n *Node) EachRule(f func(selector string, sub *Node)) {
	if n == nil || n.rules == nil {
		return
	}
	for pair := n.rules.Oldest(); pair != nil; pair = pair.Next() {
		f(pair.Key, pair.Value)
	}
}

// EachDecl calls f for every declaration of a declaration node, in
// insertion order. It is a no-op on rule nodes.
func (n *Node) EachDecl(f func(key, value string)) {
	if n == nil || n.decls == nil {
		return
	}
	for pair := n.decls.Oldest(); pair != nil; pair = pair.Next() {
		f(pair.Key, pair.Value)
	}
}

// CSS serializes the tree. Empty sub-nodes contribute nothing. Output is
// deterministic: nodes serialize in insertion order.
func (n *Node) CSS() string {
	var b strings.Builder
	n.css(&b)
	return b.String()
}

func (n *Node) css(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.decls != nil {
		first := true
		for pair := n.decls.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(pair.Key)
			b.WriteString(": ")
			b.WriteString(pair.Value)
			b.WriteString(";")
		}
		return
	}
	first := true
	for pair := n.rules.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Empty() {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(pair.Key)
		b.WriteString(" { ")
		pair.Value.css(b)
		b.WriteString(" }")
	}
}
