package model

import (
	"testing"

	"github.com/mcheemaa/axpilot/internal/ax"
)

func TestNodeID(t *testing.T) {
	if got := NodeID("save-button", RoleButton, "Save"); got != "save-button" {
		t.Errorf("expected toolkit identifier to win, got %q", got)
	}
	if got := NodeID("", RoleButton, "Save"); got != "btn:Save" {
		t.Errorf("expected role:label composite, got %q", got)
	}
	if got := NodeID("", RoleText, ""); got != "txt:" {
		t.Errorf("expected composite with empty label, got %q", got)
	}
}

func TestNodeCenter(t *testing.T) {
	n := Node{
		Pos:  &ax.Point{X: 100, Y: 200},
		Size: &ax.Size{W: 40, H: 20},
	}
	c, ok := n.Center()
	if !ok {
		t.Fatal("expected geometry")
	}
	if c.X != 120 || c.Y != 210 {
		t.Errorf("center = (%d,%d), want (120,210)", c.X, c.Y)
	}
}

func TestNodeCenter_NoGeometry(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"no pos", Node{Size: &ax.Size{W: 40, H: 20}}},
		{"no size", Node{Pos: &ax.Point{X: 1, Y: 2}}},
		{"zero size", Node{Pos: &ax.Point{X: 1, Y: 2}, Size: &ax.Size{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.node.Center(); ok {
				t.Error("expected no usable center")
			}
		})
	}
}

func testTree() *Node {
	return &Node{
		ID: "window:Mail", Role: RoleWindow, Label: "Mail", Enabled: true,
		Children: []Node{
			{ID: "btn:Send", Role: RoleButton, Label: "Send", Enabled: true, Interactive: true},
			{ID: "txt:Send later", Role: RoleText, Label: "Send later", Enabled: true},
			{ID: "input:To", Role: RoleInput, Label: "To", Value: "bob@example.com", Enabled: true, Interactive: true,
				Children: []Node{
					{ID: "txt:inner", Role: RoleText, Label: "bob@example.com", Enabled: true},
				}},
		},
	}
}

func TestFindInTree_SubstringAndRoleFilter(t *testing.T) {
	root := testTree()

	found := FindInTree(root, "send", "")
	if len(found) != 2 {
		t.Fatalf("expected 2 matches for 'send', got %d", len(found))
	}

	found = FindInTree(root, "send", RoleButton)
	if len(found) != 1 || found[0].ID != "btn:Send" {
		t.Fatalf("expected only the button, got %v", found)
	}
}

func TestFindInTree_MatchesValue(t *testing.T) {
	found := FindInTree(testTree(), "bob@", RoleInput)
	if len(found) != 1 || found[0].ID != "input:To" {
		t.Fatalf("expected the To field via its value, got %v", found)
	}
}

func TestFindInTree_NilRoot(t *testing.T) {
	if found := FindInTree(nil, "x", ""); found != nil {
		t.Errorf("expected nil, got %v", found)
	}
}

func TestCountNodesAndMaxDepth(t *testing.T) {
	root := testTree()
	if n := CountNodes(root); n != 5 {
		t.Errorf("CountNodes = %d, want 5", n)
	}
	if d := MaxDepth(root); d != 3 {
		t.Errorf("MaxDepth = %d, want 3", d)
	}
	if d := MaxDepth(nil); d != 0 {
		t.Errorf("MaxDepth(nil) = %d, want 0", d)
	}
}

func TestFlatten_Paths(t *testing.T) {
	flat := Flatten(testTree())
	if len(flat) != 5 {
		t.Fatalf("expected 5 flat nodes, got %d", len(flat))
	}
	if flat[0].Path != "window" {
		t.Errorf("root path = %q, want %q", flat[0].Path, "window")
	}
	if flat[1].Path != "window > btn" {
		t.Errorf("button path = %q, want %q", flat[1].Path, "window > btn")
	}
	if flat[4].Path != "window > input > txt" {
		t.Errorf("inner text path = %q, want %q", flat[4].Path, "window > input > txt")
	}
}
