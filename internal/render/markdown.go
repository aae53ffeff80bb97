// Package render converts parsed CRFCF trees into presentation formats:
// Markdown for downstream tooling and HTML for previews.
package render

import (
	"strings"

	"github.com/dgallion1/crfcf/internal/ast"
)

// Markdown renders a document tree to Markdown. Markers are structural and
// produce no output; disclaimer and footer become blockquotes; sections
// become headings with their bodies beneath them.
func Markdown(doc *ast.Node) string {
	var b strings.Builder
	for _, child := range doc.Children {
		writeNode(&b, child)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeNode(b *strings.Builder, n *ast.Node) {
	switch n.Type {
	case ast.Document:
		for _, c := range n.Children {
			writeNode(b, c)
		}

	case ast.BeginMarker, ast.EndMarker:
		// Structural only.

	case ast.Disclaimer, ast.FooterNotes:
		if n.Value != nil && *n.Value != "" {
			writeBlockquote(b, *n.Value)
		}

	case ast.MainSection:
		writeSection(b, n, 1)
	case ast.Subsection:
		writeSection(b, n, 2)
	case ast.SpecificSection:
		depth := 3
		if n.Level != nil {
			depth += *n.Level
		}
		if depth > 6 {
			depth = 6
		}
		writeSection(b, n, depth)

	case ast.SectionHeader:
		if n.Value != nil {
			b.WriteString("### " + *n.Value + "\n\n")
		}

	case ast.SectionBody:
		for _, c := range n.Children {
			writeNode(b, c)
		}

	case ast.Paragraph:
		if n.Value != nil {
			b.WriteString(*n.Value + "\n\n")
		}

	case ast.UnorderedList:
		for _, item := range n.Children {
			b.WriteString(listIndent(item) + "- " + itemValue(item) + "\n")
		}
		b.WriteString("\n")

	case ast.OrderedList:
		for _, item := range n.Children {
			label := item.Metadata["number"]
			if label == "" {
				label = "1"
			}
			b.WriteString(listIndent(item) + label + ". " + itemValue(item) + "\n")
		}
		b.WriteString("\n")

	case ast.ListItem:
		b.WriteString("- " + itemValue(n) + "\n")
	}
}

// writeSection emits the section's header line as a heading of the given
// depth, then its body.
func writeSection(b *strings.Builder, section *ast.Node, depth int) {
	for _, c := range section.Children {
		if c.Type == ast.SectionHeader {
			title := ""
			if c.Value != nil {
				title = *c.Value
			}
			b.WriteString(strings.Repeat("#", depth) + " " + title + "\n\n")
			continue
		}
		writeNode(b, c)
	}
}

func writeBlockquote(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("> " + line + "\n")
	}
	b.WriteString("\n")
}

// listIndent nests list items two spaces per level beyond the list's own
// base level. Items at the base level get no indent.
func listIndent(item *ast.Node) string {
	if item.Level == nil || *item.Level == 0 {
		return ""
	}
	return strings.Repeat("  ", *item.Level)
}

func itemValue(item *ast.Node) string {
	if item.Value == nil {
		return ""
	}
	return *item.Value
}
