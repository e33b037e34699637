/*
Command layel synthesizes responsive CSS for layout elements embedded in
an HTML file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/npillmayer/layel"
	"github.com/npillmayer/layel/cssom"
	"github.com/npillmayer/layel/media"
	"github.com/npillmayer/layel/props"
	"github.com/npillmayer/layel/scope"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "layel",
		Short:        "layel synthesizes responsive CSS for layout elements",
		SilenceUsage: true,
	}
	root.AddCommand(renderCmd())
	return root
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	breakpoints string // YAML file overriding the default breakpoint tiers
	check       bool   // re-parse every synthesized block
	flatten     bool   // fold declarations into style attributes, emit HTML
}

func renderCmd() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Synthesize style blocks for the layout elements in an HTML file",
		Long: `Render parses an HTML file, wraps every <layel-flex> and <layel-grid>
element in a responsive layout element, replays the layout attributes
found in the markup, and prints the synthesized per-breakpoint style
blocks. With --flatten the declarations of the all-breakpoint block are
folded into style attributes of the matching nodes instead, and the
rewritten document is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), args[0], &opts)
		},
	}
	cmd.Flags().StringVar(&opts.breakpoints, "breakpoints", "", "YAML file with custom breakpoint tiers")
	cmd.Flags().BoolVar(&opts.check, "check", false, "run every synthesized block through a CSS parser")
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "write declarations into style attributes and print the document")
	return cmd
}

// hostSelector matches the custom-element names the CLI knows how to
// wrap. The element name determines the property registry.
var hostSelector = cascadia.MustCompile("layel-flex, layel-grid")

func runRender(w io.Writer, path string, opts *renderOpts) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", path, err)
	}
	set := media.Defaults()
	if opts.breakpoints != "" {
		if set, err = media.LoadFile(opts.breakpoints); err != nil {
			return err
		}
	}
	hosts := hostSelector.MatchAll(doc)
	if len(hosts) == 0 {
		return fmt.Errorf("no layout elements found in %s", path)
	}
	for _, host := range hosts {
		el, err := layel.New(host, registryFor(host.Data), layel.WithBreakpoints(set))
		if err != nil {
			return err
		}
		el.OnAttach()
		if opts.flatten {
			if err := flatten(el); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(w, "/* <%s> */\n", host.Data)
		for _, id := range el.Scope().StyleIDs() {
			css := el.Scope().CSSFor(id)
			if css == "" {
				continue
			}
			if opts.check {
				if err := cssom.Validate(css); err != nil {
					return fmt.Errorf("<%s> style %q: %w", host.Data, id, err)
				}
			}
			fmt.Fprintln(w, css)
		}
	}
	if opts.flatten {
		return html.Render(w, doc)
	}
	return nil
}

func registryFor(name string) *props.Registry {
	if name == "layel-grid" {
		return props.Grid()
	}
	return props.Flex()
}

// flatten folds the declarations of the element's all-breakpoint style
// block into the style attributes of the matching nodes. Breakpoint
// blocks are skipped; inline styles cannot be responsive.
func flatten(el *layel.Element) error {
	blocks := []string{el.Scope().CSSFor("base")}
	blocks = append(blocks, el.CSSFor(""))
	for _, block := range blocks {
		if block == "" {
			continue
		}
		sheet, err := parser.Parse(block)
		if err != nil {
			return err
		}
		for _, rule := range sheet.Rules {
			rules := []*cssRule{}
			if len(rule.Rules) > 0 { // the block is wrapped in @media all
				for _, r := range rule.Rules {
					rules = append(rules, (*cssRule)(r))
				}
			} else {
				rules = append(rules, (*cssRule)(rule))
			}
			for _, r := range rules {
				if err := r.inline(el.Node()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// cssRule adapts a parsed rule, in the manner of a stylesheet adapter
// wrapping a foreign CSS AST.
type cssRule css.Rule

// inline appends the rule's declarations to the style attribute of every
// node the rule's selector matches, relative to the given host.
func (r *cssRule) inline(host *html.Node) error {
	targets, err := scope.MatchingChildren(host, strings.TrimSpace(r.Prelude))
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, d := range r.Declarations {
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString("; ")
	}
	decls := strings.TrimSpace(b.String())
	for _, t := range targets {
		appendStyle(t, decls)
	}
	return nil
}

func appendStyle(n *html.Node, decls string) {
	for i, a := range n.Attr {
		if a.Key == "style" {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + decls)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: decls})
}
