// Package ast defines the node model for parsed CRFCF documents.
package ast

// NodeType tags a Node with the document construct it represents.
type NodeType string

const (
	Document        NodeType = "document"
	BeginMarker     NodeType = "begin_marker"
	EndMarker       NodeType = "end_marker"
	Disclaimer      NodeType = "disclaimer"
	MainSection     NodeType = "main_section"
	Subsection      NodeType = "subsection"
	SpecificSection NodeType = "specific_section"
	SectionHeader   NodeType = "section_header"
	SectionBody     NodeType = "section_body"
	Paragraph       NodeType = "paragraph"
	OrderedList     NodeType = "ordered_list"
	UnorderedList   NodeType = "unordered_list"
	ListItem        NodeType = "list_item"
	FooterNotes     NodeType = "footer_notes"
)

// Types lists every valid NodeType.
var Types = []NodeType{
	Document, BeginMarker, EndMarker, Disclaimer,
	MainSection, Subsection, SpecificSection,
	SectionHeader, SectionBody,
	Paragraph, OrderedList, UnorderedList, ListItem,
	FooterNotes,
}

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Node is a single node in the parsed document tree. Value, Level and
// Metadata are optional; a nil pointer means "absent", which is distinct
// from an empty value (an empty disclaimer still carries Value "").
// Line is the 1-based source line where the construct began, 0 if not
// recorded. Children are exclusively owned by their parent; nodes are
// never mutated once returned by a parser.
type Node struct {
	Type     NodeType          `json:"type" yaml:"type"`
	Value    *string           `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty"`
	Line     int               `json:"line,omitempty" yaml:"line,omitempty"`
	Level    *int              `json:"level,omitempty" yaml:"level,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Str returns a pointer to s, for populating Node.Value.
func Str(s string) *string { return &s }

// Int returns a pointer to n, for populating Node.Level.
func Int(n int) *int { return &n }

// ToMap projects the node to the canonical interchange form: a nested map
// with keys present only when set, children projected recursively. This is
// the serialization contract for emitting the tree as a structured document.
func (n *Node) ToMap() map[string]any {
	m := map[string]any{"type": string(n.Type)}
	if n.Value != nil {
		m["value"] = *n.Value
	}
	if len(n.Children) > 0 {
		children := make([]map[string]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.ToMap()
		}
		m["children"] = children
	}
	if n.Line != 0 {
		m["line"] = n.Line
	}
	if n.Level != nil {
		m["level"] = *n.Level
	}
	if len(n.Metadata) > 0 {
		m["metadata"] = n.Metadata
	}
	return m
}

// Walk visits n and its descendants in document order. It stops early if
// fn returns false for any node.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
