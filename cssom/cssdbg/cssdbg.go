/*
Package cssdbg implements helpers to debug a CSS tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssdbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/layel/cssom"
	"github.com/xlab/treeprint"
)

// Dump writes a tree diagram for a CSS tree to w. Rule nodes become
// branches labeled with their selector, declarations become leaves.
func Dump(n *cssom.Node, w io.Writer) {
	tree := treeprint.New()
	addNode(tree, n)
	fmt.Fprint(w, tree.String())
}

// String returns the tree diagram for a CSS tree.
func String(n *cssom.Node) string {
	tree := treeprint.New()
	addNode(tree, n)
	return tree.String()
}

func addNode(branch treeprint.Tree, n *cssom.Node) {
	if n.IsRules() {
		n.EachRule(func(selector string, sub *cssom.Node) {
			addNode(branch.AddBranch(selector), sub)
		})
		return
	}
	n.EachDecl(func(key, value string) {
		branch.AddNode(fmt.Sprintf("%s: %s", key, value))
	})
}
