// Package parser implements the CRFCF grammar: a recursive-descent parse
// over raw text lines with single-line (occasionally two-line) lookahead
// and no backtracking. A document is a begin marker, a disclaimer, nested
// sections (main, subsection, specific), an optional footer, and an end
// marker.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/crfcf/internal/ast"
)

// indentSize is the fixed indent unit. Nesting depth is always
// leading-space count divided by indentSize.
const indentSize = 4

const markerRule = "-------------------------------" // 31 dashes

const (
	beginMarker = "|" + markerRule + "[ BEGIN-CRFCF ]" + markerRule + "|"
	endMarker   = "|" + markerRule + "[ ENDED-CRFCF ]" + markerRule + "|"
)

// markerPrefix is the lookahead trigger for "this line starts a marker".
// Both marker literals share it.
const markerPrefix = "|----"

// Parse parses a CRFCF document into its AST. It returns a *SyntaxError
// when the begin marker is missing or either marker line is malformed.
func Parse(src string) (*ast.Node, error) {
	p := &parser{cur: newCursor(splitLines(src))}
	return p.parseDocument()
}

// ParseReader reads all of r and parses it. Line splitting matches Parse:
// blank lines are preserved and no synthetic empty line is appended for a
// trailing newline.
func ParseReader(r io.Reader) (*ast.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(string(src))
}

// splitLines splits src on newlines, dropping the synthetic empty entry a
// trailing newline would produce. Carriage returns from CRLF input are
// stripped.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// indentLevel is the sole source of nesting depth: leading spaces / 4.
func indentLevel(line string) int {
	return (len(line) - len(strings.TrimLeft(line, " "))) / indentSize
}

// leftTrim strips leading whitespace only.
func leftTrim(line string) string {
	return strings.TrimLeft(line, " \t")
}

// isMarkerLine reports whether line begins a begin/end marker.
func isMarkerLine(line string) bool {
	return strings.HasPrefix(line, markerPrefix)
}

// parser holds the cursor for one parse invocation. A parser is not safe
// for concurrent use; each document gets its own instance.
type parser struct {
	cur *cursor
}

// parseDocument runs the fixed top-level sequence: begin marker,
// disclaimer, sections, optional footer, end marker.
func (p *parser) parseDocument() (*ast.Node, error) {
	begin, err := p.parseBeginMarker()
	if err != nil {
		return nil, err
	}
	disclaimer := p.parseDisclaimer()
	sections := p.parseSections()
	footer := p.parseFooterNotes()
	end, err := p.parseEndMarker()
	if err != nil {
		return nil, err
	}

	children := make([]*ast.Node, 0, len(sections)+4)
	children = append(children, begin, disclaimer)
	children = append(children, sections...)
	if footer != nil {
		children = append(children, footer)
	}
	children = append(children, end)

	return &ast.Node{Type: ast.Document, Children: children}, nil
}

// parseBeginMarker consumes the first line, which must match the begin
// marker literal exactly. Any mismatch, including end of input, is fatal.
func (p *parser) parseBeginMarker() (*ast.Node, error) {
	start := p.cur.lineNo()
	line, _ := p.cur.consume()
	if line != beginMarker {
		return nil, &SyntaxError{Line: start, Msg: "invalid begin marker"}
	}
	return &ast.Node{Type: ast.BeginMarker, Line: start}, nil
}

// parseEndMarker consumes the trailing line and checks it against the end
// marker literal. A present-but-wrong line is fatal; exhausted input is
// accepted silently. The asymmetry is deliberate: a document that simply
// ends after its sections is valid, a wrong trailing line is not.
func (p *parser) parseEndMarker() (*ast.Node, error) {
	start := p.cur.lineNo()
	line, ok := p.cur.consume()
	if ok && line != endMarker {
		return nil, &SyntaxError{Line: start, Msg: "invalid end marker"}
	}
	return &ast.Node{Type: ast.EndMarker, Line: start}, nil
}
