package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/crfcf/internal/ast"
)

// disclaimerStopRe is the lookahead trigger ending the disclaimer: a line
// that begins like a main section header. Looser than the full header
// pattern on purpose; it only has to signal "sections start here".
var disclaimerStopRe = regexp.MustCompile(`^\d+\.\s+\w+:`)

// parseDisclaimer consumes the free-text block between the begin marker
// and the first section. Leading blank lines are skipped; accumulation
// stops at a main-header-shaped line or at two consecutive blank lines.
// The disclaimer node is always produced, even when the block is empty.
func (p *parser) parseDisclaimer() *ast.Node {
	for {
		line, ok := p.cur.peek(0)
		if !ok || line != "" {
			break
		}
		p.cur.consume()
	}

	start := p.cur.lineNo()
	var lines []string

	for {
		line, ok := p.cur.peek(0)
		if !ok {
			break
		}
		if disclaimerStopRe.MatchString(line) {
			break
		}
		if next, nextOK := p.cur.peek(1); line == "" && nextOK && next == "" {
			break
		}
		p.cur.consume()
		lines = append(lines, line)
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))
	return &ast.Node{Type: ast.Disclaimer, Value: ast.Str(content), Line: start}
}

// parseFooterNotes consumes the optional free-text block between the last
// section and the end marker. Blank lines before the block are skipped;
// trailing blank lines inside it are trimmed. Returns nil when nothing
// remains.
func (p *parser) parseFooterNotes() *ast.Node {
	for {
		line, ok := p.cur.peek(0)
		if !ok {
			return nil
		}
		if isMarkerLine(line) {
			return nil
		}

		if strings.TrimSpace(line) != "" {
			start := p.cur.lineNo()
			var footer []string

			for {
				line, ok := p.cur.peek(0)
				if !ok || isMarkerLine(line) {
					break
				}
				p.cur.consume()
				footer = append(footer, line)
			}

			for len(footer) > 0 && footer[len(footer)-1] == "" {
				footer = footer[:len(footer)-1]
			}
			if len(footer) == 0 {
				return nil
			}
			content := strings.TrimSpace(strings.Join(footer, "\n"))
			return &ast.Node{Type: ast.FooterNotes, Value: ast.Str(content), Line: start}
		}

		p.cur.consume()
	}
}
