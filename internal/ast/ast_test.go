package ast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestToMap_KeyPresenceRules(t *testing.T) {
	node := &Node{
		Type:  Disclaimer,
		Value: Str(""),
		Line:  3,
	}
	m := node.ToMap()

	if m["type"] != "disclaimer" {
		t.Errorf("expected type disclaimer, got %v", m["type"])
	}
	// An empty-but-present value must survive the projection.
	if v, ok := m["value"]; !ok || v != "" {
		t.Errorf("expected empty value key to be present, got %v (present=%v)", v, ok)
	}
	if _, ok := m["children"]; ok {
		t.Error("expected children key to be absent for leaf node")
	}
	if _, ok := m["level"]; ok {
		t.Error("expected level key to be absent when unset")
	}
	if _, ok := m["metadata"]; ok {
		t.Error("expected metadata key to be absent when empty")
	}
	if m["line"] != 3 {
		t.Errorf("expected line 3, got %v", m["line"])
	}
}

func TestToMap_LevelZeroIsPresent(t *testing.T) {
	node := &Node{Type: ListItem, Value: Str("first item"), Level: Int(0), Line: 5}
	m := node.ToMap()
	if v, ok := m["level"]; !ok || v != 0 {
		t.Errorf("expected level 0 to be present, got %v (present=%v)", v, ok)
	}
}

func TestToMap_Recursive(t *testing.T) {
	root := &Node{
		Type: Document,
		Children: []*Node{
			{Type: BeginMarker, Line: 1},
			{
				Type: MainSection,
				Line: 4,
				Children: []*Node{
					{
						Type:     SectionHeader,
						Value:    Str("1.  Intro"),
						Metadata: map[string]string{"number": "1", "title": "Intro"},
						Line:     4,
					},
				},
			},
		},
	}

	m := root.ToMap()
	children, ok := m["children"].([]map[string]any)
	if !ok || len(children) != 2 {
		t.Fatalf("expected 2 projected children, got %v", m["children"])
	}
	section := children[1]
	header := section["children"].([]map[string]any)[0]
	meta, ok := header["metadata"].(map[string]string)
	if !ok || meta["number"] != "1" {
		t.Errorf("expected nested metadata to survive projection, got %v", header["metadata"])
	}
}

func TestNode_JSONKeyOrder(t *testing.T) {
	node := &Node{
		Type:     ListItem,
		Value:    Str("step"),
		Line:     7,
		Level:    Int(1),
		Metadata: map[string]string{"number": "a"},
	}
	raw, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(raw)

	// Keys appear in the canonical order: type, value, children, line,
	// level, metadata (children omitted here since empty).
	order := []string{`"type"`, `"value"`, `"line"`, `"level"`, `"metadata"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, key)
		if idx < 0 {
			t.Fatalf("expected key %s in %s", key, got)
		}
		if idx < last {
			t.Errorf("key %s out of order in %s", key, got)
		}
		last = idx
	}
}

func TestNode_JSONOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(&Node{Type: BeginMarker, Line: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"type":"begin_marker","line":1}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}
}

func TestNode_YAMLKeyOrder(t *testing.T) {
	node := &Node{
		Type:  ListItem,
		Value: Str("step"),
		Children: []*Node{
			{Type: Paragraph, Value: Str("detail")},
		},
		Line:     7,
		Level:    Int(1),
		Metadata: map[string]string{"number": "a"},
	}
	raw, err := yaml.Marshal(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(raw)

	// Same canonical order as the JSON projection, not the sorted order a
	// map marshal would produce.
	order := []string{"type:", "value:", "children:", "line:", "level:", "metadata:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, key)
		if idx < 0 {
			t.Fatalf("expected key %s in %s", key, got)
		}
		if idx < last {
			t.Errorf("key %s out of order in %s", key, got)
		}
		last = idx
	}
}

func TestNode_YAMLOmitsAbsentFields(t *testing.T) {
	raw, err := yaml.Marshal(&Node{Type: BeginMarker, Line: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "type: begin_marker\nline: 1\n"
	if string(raw) != want {
		t.Errorf("expected %q, got %q", want, raw)
	}
}

func TestNodeType_Valid(t *testing.T) {
	for _, known := range Types {
		if !known.Valid() {
			t.Errorf("expected %s to be valid", known)
		}
	}
	if NodeType("heading").Valid() {
		t.Error("expected unknown type to be invalid")
	}
	if len(Types) != 14 {
		t.Errorf("expected 14 node types, got %d", len(Types))
	}
}

func TestWalk_DocumentOrder(t *testing.T) {
	root := &Node{
		Type: Document,
		Children: []*Node{
			{Type: BeginMarker},
			{Type: Disclaimer, Children: nil},
			{Type: MainSection, Children: []*Node{
				{Type: SectionHeader},
				{Type: SectionBody, Children: []*Node{{Type: Paragraph}}},
			}},
			{Type: EndMarker},
		},
	}

	var visited []NodeType
	Walk(root, func(n *Node) bool {
		visited = append(visited, n.Type)
		return true
	})

	want := []NodeType{
		Document, BeginMarker, Disclaimer,
		MainSection, SectionHeader, SectionBody, Paragraph,
		EndMarker,
	}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("unexpected walk order: %v", visited)
	}
}

func TestWalk_EarlyStop(t *testing.T) {
	root := &Node{Type: Document, Children: []*Node{{Type: BeginMarker}, {Type: EndMarker}}}
	count := 0
	Walk(root, func(n *Node) bool {
		count++
		return n.Type != BeginMarker
	})
	if count != 2 {
		t.Errorf("expected walk to stop after begin_marker, visited %d nodes", count)
	}
}
