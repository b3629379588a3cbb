package tree

import (
	"strings"
	"testing"

	"github.com/mcheemaa/axpilot/internal/ax/axtest"
	"github.com/mcheemaa/axpilot/internal/model"
)

func TestBuild_BasicTree(t *testing.T) {
	root := &axtest.Element{
		AXRole: "AXWindow", AXTitle: "Mail",
		Kids: []*axtest.Element{
			{AXRole: "AXButton", AXTitle: "Send", Acts: []string{"press"}, X: 10, Y: 20, W: 80, H: 30},
			{AXRole: "AXTextField", AXTitle: "To", AXValue: "bob@example.com"},
		},
	}

	node := Build(root, 0, 0)
	if node == nil {
		t.Fatal("expected a snapshot")
	}
	if node.Role != model.RoleWindow || node.Label != "Mail" {
		t.Errorf("root = %q %q, want window Mail", node.Role, node.Label)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Children))
	}

	btn := node.Children[0]
	if btn.Role != model.RoleButton || !btn.Interactive {
		t.Errorf("button should be interactive, got %+v", btn)
	}
	if btn.Pos == nil || btn.Size == nil || btn.Pos.X != 10 || btn.Size.W != 80 {
		t.Errorf("button geometry not captured: %+v %+v", btn.Pos, btn.Size)
	}

	field := node.Children[1]
	if field.Value != "bob@example.com" {
		t.Errorf("field value = %q", field.Value)
	}
}

func TestBuild_CycleTerminates(t *testing.T) {
	root := &axtest.Element{AXRole: "AXWindow", AXTitle: "Loop"}
	child := &axtest.Element{AXRole: "AXGroup"}
	root.Kids = []*axtest.Element{child}
	child.Kids = []*axtest.Element{root} // back-reference to an ancestor

	node := Build(root, 0, 0)
	if node == nil {
		t.Fatal("expected a snapshot")
	}
	if model.CountNodes(node) != 2 {
		t.Errorf("expected the cycle edge to be dropped, got %d nodes", model.CountNodes(node))
	}
	if len(node.Children[0].Children) != 0 {
		t.Error("back-reference must not produce a child")
	}
}

func TestBuild_SharedSubtreeAppearsOnce(t *testing.T) {
	shared := &axtest.Element{AXRole: "AXStaticText", AXTitle: "shared"}
	root := &axtest.Element{
		AXRole: "AXWindow",
		Kids: []*axtest.Element{
			{AXRole: "AXGroup", Kids: []*axtest.Element{shared}},
			{AXRole: "AXGroup", Kids: []*axtest.Element{shared}},
		},
	}

	node := Build(root, 0, 0)
	if got := model.CountNodes(node); got != 4 {
		t.Errorf("shared element should be snapshotted once, got %d nodes", got)
	}
}

func TestBuild_DepthBound(t *testing.T) {
	leaf := &axtest.Element{AXRole: "AXStaticText", AXTitle: "deep"}
	el := leaf
	for i := 0; i < 10; i++ {
		el = &axtest.Element{AXRole: "AXGroup", Kids: []*axtest.Element{el}}
	}

	node := Build(el, 3, 0)
	if got := model.MaxDepth(node); got != 4 {
		t.Errorf("MaxDepth = %d, want 4 (root + 3 levels)", got)
	}
}

func TestBuild_MaxChildrenBound(t *testing.T) {
	root := &axtest.Element{AXRole: "AXList"}
	for i := 0; i < 20; i++ {
		root.Kids = append(root.Kids, &axtest.Element{AXRole: "AXRow"})
	}

	node := Build(root, 0, 5)
	if len(node.Children) != 5 {
		t.Errorf("expected 5 children, got %d", len(node.Children))
	}
}

func TestLabel_Precedence(t *testing.T) {
	tests := []struct {
		name string
		el   *axtest.Element
		want string
	}{
		{"title wins", &axtest.Element{AXTitle: "Send", AXDesc: "desc", AXValue: "val"}, "Send"},
		{"description next", &axtest.Element{AXDesc: "Close tab", AXValue: "val"}, "Close tab"},
		{"value last", &axtest.Element{AXValue: "  raw text  "}, "raw text"},
		{"empty", &axtest.Element{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.el); got != tt.want {
				t.Errorf("Label = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_TruncatesLongValue(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Label(&axtest.Element{AXValue: long})
	if len(got) >= 200 {
		t.Errorf("expected truncation, got %d chars", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("expected ellipsis suffix")
	}
}

func TestFilterValue(t *testing.T) {
	tests := []struct {
		role model.Role
		in   string
		want string
	}{
		{model.RoleText, "", ""},
		{model.RoleText, "nil", ""},
		{model.RoleText, "0", ""},
		{model.RoleSlider, "0", "0"},
		{model.RoleText, "42", "42"},
	}
	for _, tt := range tests {
		if got := filterValue(tt.role, tt.in); got != tt.want {
			t.Errorf("filterValue(%q, %q) = %q, want %q", tt.role, tt.in, got, tt.want)
		}
	}
}

func TestIsInteractive_PressActionWithoutRole(t *testing.T) {
	sets := model.DefaultRoleSets()
	el := &axtest.Element{AXRole: "AXGroup", Acts: []string{"press"}}
	if !IsInteractive(el, model.RoleGroup, sets) {
		t.Error("a pressable group is interactive")
	}
	plain := &axtest.Element{AXRole: "AXGroup"}
	if IsInteractive(plain, model.RoleGroup, sets) {
		t.Error("a plain group is not interactive")
	}
}
