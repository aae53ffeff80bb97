package render

import (
	"bytes"
	"fmt"

	"github.com/dgallion1/crfcf/internal/ast"
	"github.com/yuin/goldmark"
)

// HTML renders a document tree to an HTML fragment by converting the
// Markdown rendition with goldmark.
func HTML(doc *ast.Node) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
