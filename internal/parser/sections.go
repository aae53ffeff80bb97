package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/crfcf/internal/ast"
)

// Header patterns. Main section headers take exactly two spaces after the
// number ("1.  Overview:"); subsections take exactly one ("1.1 Details:").
// That spacing difference is the disambiguator between the two, so the
// dispatcher must try main before subsection.
var (
	mainHeaderRe = regexp.MustCompile(`^(\d+)\.\s\s(.+):$`)
	subHeaderRe  = regexp.MustCompile(`^(\d+\.\d+)\s(.+):$`)
)

// parseSections parses sections until the dispatcher finds no further
// header or the end marker line is reached. Blank lines between sections
// are consumed silently.
func (p *parser) parseSections() []*ast.Node {
	var sections []*ast.Node

	for {
		line, ok := p.cur.peek(0)
		if !ok {
			break
		}
		if isMarkerLine(line) {
			break
		}
		if line == "" {
			p.cur.consume()
			continue
		}

		section := p.parseSection()
		if section == nil {
			break
		}
		sections = append(sections, section)
	}

	return sections
}

// parseSection dispatches on the current line: main section, subsection,
// or specific section, tried in that priority order. Returns nil when the
// line starts none of the three.
func (p *parser) parseSection() *ast.Node {
	line, ok := p.cur.peek(0)
	if !ok || line == "" {
		return nil
	}

	if mainHeaderRe.MatchString(line) {
		return p.parseMainSection()
	}
	if subHeaderRe.MatchString(line) {
		return p.parseSubsection()
	}

	stripped := leftTrim(line)
	if strings.HasPrefix(stripped, "- ") && strings.HasSuffix(stripped[2:], ":") {
		return p.parseSpecificSection()
	}

	return nil
}

// parseMainSection parses a numbered main section ("1.  Title:").
func (p *parser) parseMainSection() *ast.Node {
	start := p.cur.lineNo()
	headerLine, _ := p.cur.consume()

	m := mainHeaderRe.FindStringSubmatch(headerLine)
	num, title := m[1], m[2]

	if next, ok := p.cur.peek(0); ok && next == "" {
		p.cur.consume()
	}
	body := p.parseSectionBody(1)

	header := &ast.Node{
		Type:     ast.SectionHeader,
		Value:    ast.Str(num + ".  " + title),
		Metadata: map[string]string{"number": num, "title": title},
		Line:     start,
	}
	return &ast.Node{
		Type:     ast.MainSection,
		Children: []*ast.Node{header, body},
		Line:     start,
	}
}

// parseSubsection parses a dotted subsection ("1.1 Title:").
func (p *parser) parseSubsection() *ast.Node {
	start := p.cur.lineNo()
	headerLine, _ := p.cur.consume()

	m := subHeaderRe.FindStringSubmatch(headerLine)
	num, title := m[1], m[2]

	if next, ok := p.cur.peek(0); ok && next == "" {
		p.cur.consume()
	}
	body := p.parseSectionBody(1)

	header := &ast.Node{
		Type:     ast.SectionHeader,
		Value:    ast.Str(num + " " + title),
		Metadata: map[string]string{"number": num, "title": title},
		Line:     start,
	}
	return &ast.Node{
		Type:     ast.Subsection,
		Children: []*ast.Node{header, body},
		Line:     start,
	}
}

// parseSpecificSection parses a dash-indented specific section
// ("    - Title:"). Its nesting level comes from the raw line's indent;
// the body parses one level deeper.
func (p *parser) parseSpecificSection() *ast.Node {
	start := p.cur.lineNo()
	headerLine, _ := p.cur.consume()
	indent := indentLevel(headerLine)

	trimmed := strings.TrimSpace(headerLine)
	title := trimmed[2 : len(trimmed)-1] // drop "- " and ":"

	if next, ok := p.cur.peek(0); ok && next == "" {
		p.cur.consume()
	}
	body := p.parseSectionBody(indent + 1)

	header := &ast.Node{
		Type:  ast.SectionHeader,
		Value: ast.Str(title),
		Level: ast.Int(indent),
		Line:  start,
	}
	return &ast.Node{
		Type:     ast.SpecificSection,
		Children: []*ast.Node{header, body},
		Level:    ast.Int(indent),
		Line:     start,
	}
}
