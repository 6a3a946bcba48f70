package overview

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var md = goldmark.New()

// Render writes the page as an HTML fragment. Headings and card link lists
// go through the markdown renderer; the version select is built directly as
// an HTML node tree.
func Render(w io.Writer, p Page) error {
	root := element(atom.Div, "class", "docs-overview")

	header := element(atom.Div, "class", "docs-overview-header")
	if p.VersionSelect != nil {
		header.AppendChild(versionSelectNode(*p.VersionSelect))
	}
	heading, err := markdownNodes("# " + escapeMarkdown(p.Title) + "\n")
	if err != nil {
		return err
	}
	appendAll(header, heading)
	root.AppendChild(header)

	grid := element(atom.Div, "class", "docs-overview-cards")
	for _, card := range p.Cards {
		nodes, err := markdownNodes(cardMarkdown(card))
		if err != nil {
			return fmt.Errorf("render card %q: %w", card.Title, err)
		}
		c := element(atom.Div, "class", "docs-overview-card")
		appendAll(c, nodes)
		grid.AppendChild(c)
	}
	root.AppendChild(grid)

	return html.Render(w, root)
}

func cardMarkdown(card catalog.Card) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(escapeMarkdown(card.Title))
	b.WriteString("\n\n")
	for _, l := range card.Links {
		fmt.Fprintf(&b, "- [%s](<%s>)\n", escapeMarkdown(l.Text), l.Href)
	}
	return b.String()
}

// markdownNodes converts markdown to HTML with goldmark and parses the result
// back into nodes that can be attached to the page tree.
func markdownNodes(src string) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(&buf, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}
	return nodes, nil
}

func versionSelectNode(vs VersionSelect) *html.Node {
	form := element(atom.Form,
		"class", "version-select",
		"method", "post",
		"action", vs.Action,
	)
	form.AppendChild(element(atom.Input,
		"type", "hidden",
		"name", "route",
		"value", vs.Route,
	))

	sel := element(atom.Select,
		"name", "version",
		"aria-label", "Documentation version",
		"onchange", "this.form.submit()",
	)
	for _, v := range vs.Available {
		opt := element(atom.Option, "value", v)
		if v == vs.Current {
			opt.Attr = append(opt.Attr, html.Attribute{Key: "selected"})
		}
		opt.AppendChild(&html.Node{Type: html.TextNode, Data: v})
		sel.AppendChild(opt)
	}
	form.AppendChild(sel)

	btn := element(atom.Button, "type", "submit")
	btn.AppendChild(&html.Node{Type: html.TextNode, Data: "Go"})
	form.AppendChild(btn)
	return form
}

func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func appendAll(parent *html.Node, nodes []*html.Node) {
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`<`, `\<`,
	`#`, `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
