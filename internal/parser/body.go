package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/crfcf/internal/ast"
)

// Lookahead patterns for the body loop. The stop patterns are looser than
// the full header patterns: a quick digits-dot-spacing-word-colon check is
// enough to know a new header begins, without consuming it.
var (
	mainStopRe     = regexp.MustCompile(`^\d+\.\s\s\w+:`)
	subStopRe      = regexp.MustCompile(`^\d+\.\d+\s\w+:`)
	orderedItemRe  = regexp.MustCompile(`^(\s*)([A-Za-z0-9]+)\.\s+(.+)$`)
	orderedStartRe = regexp.MustCompile(`^\s*[A-Za-z0-9]+\.\s+`)
	digitOrdinalRe = regexp.MustCompile(`^\d+\.`)
)

// parseSectionBody accumulates paragraphs and lists at the given nesting
// level until a new main/subsection header, the end marker, or end of
// input. Blank lines are consumed and discarded. Construct priority:
// unordered list, ordered list, paragraph.
func (p *parser) parseSectionBody(level int) *ast.Node {
	var children []*ast.Node

	for {
		line, ok := p.cur.peek(0)
		if !ok {
			break
		}
		if mainStopRe.MatchString(line) || subStopRe.MatchString(line) {
			break
		}
		if isMarkerLine(line) {
			break
		}
		if line == "" {
			p.cur.consume()
			continue
		}

		if strings.HasPrefix(leftTrim(line), "- ") {
			if node := p.parseUnorderedList(); node != nil {
				children = append(children, node)
			}
			continue
		}
		if orderedStartRe.MatchString(line) {
			if node := p.parseOrderedList(); node != nil {
				children = append(children, node)
			}
			continue
		}

		if para := p.parseParagraph(); para != nil {
			children = append(children, para)
		} else {
			// The line matched no construct (e.g. a bare "3." with no
			// content). Consume it so the loop always makes progress.
			p.cur.consume()
		}
	}

	return &ast.Node{Type: ast.SectionBody, Level: ast.Int(level), Children: children}
}

// parseParagraph accumulates consecutive lines, stopping before a blank
// line, a list marker, or a digit-led ordinal. The level is taken from the
// first line's indent. Returns nil when no line was accumulated.
func (p *parser) parseParagraph() *ast.Node {
	start := p.cur.lineNo()
	var lines []string
	indent := -1

	for {
		line, ok := p.cur.peek(0)
		if !ok {
			break
		}
		if line == "" {
			break
		}
		if strings.HasPrefix(leftTrim(line), "- ") {
			break
		}
		if digitOrdinalRe.MatchString(line) {
			break
		}
		if isMarkerLine(line) {
			break
		}

		if indent < 0 {
			indent = indentLevel(line)
		}
		p.cur.consume()
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil
	}
	return &ast.Node{
		Type:  ast.Paragraph,
		Value: ast.Str(strings.Join(lines, "\n")),
		Level: ast.Int(indent),
		Line:  start,
	}
}

// parseUnorderedList accumulates consecutive "- " lines into list items.
// Item values carry the text after the marker; item levels come from the
// raw line's indent. Returns nil when no item matched.
func (p *parser) parseUnorderedList() *ast.Node {
	start := p.cur.lineNo()
	var items []*ast.Node

	for {
		line, ok := p.cur.peek(0)
		if !ok || !strings.HasPrefix(leftTrim(line), "- ") {
			break
		}

		// A bare "- " marker trims to "-"; its item value is empty.
		trimmed := strings.TrimSpace(line)
		value := ""
		if len(trimmed) > 2 {
			value = trimmed[2:]
		}

		itemLine := p.cur.lineNo()
		p.cur.consume()
		items = append(items, &ast.Node{
			Type:  ast.ListItem,
			Value: ast.Str(value),
			Level: ast.Int(indentLevel(line)),
			Line:  itemLine,
		})
	}

	if len(items) == 0 {
		return nil
	}
	return &ast.Node{Type: ast.UnorderedList, Children: items, Line: start}
}

// parseOrderedList accumulates consecutive ordinal lines ("1. step",
// "a. step"). The ordinal label is kept verbatim in item metadata; labels
// are not required to be numeric or sequential. Returns nil when no item
// matched.
func (p *parser) parseOrderedList() *ast.Node {
	start := p.cur.lineNo()
	var items []*ast.Node

	for {
		line, ok := p.cur.peek(0)
		if !ok {
			break
		}
		m := orderedItemRe.FindStringSubmatch(line)
		if m == nil {
			break
		}

		itemLine := p.cur.lineNo()
		p.cur.consume()
		items = append(items, &ast.Node{
			Type:     ast.ListItem,
			Value:    ast.Str(m[3]),
			Level:    ast.Int(len(m[1]) / indentSize),
			Metadata: map[string]string{"number": m[2]},
			Line:     itemLine,
		})
	}

	if len(items) == 0 {
		return nil
	}
	return &ast.Node{Type: ast.OrderedList, Children: items, Line: start}
}
