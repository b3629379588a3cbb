package resolve

import (
	"testing"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/ax/axtest"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/tree"
)

func mailSnapshot() *model.Node {
	return &model.Node{
		ID: "window:Mail", Role: model.RoleWindow, Label: "Mail", Enabled: true,
		Children: []model.Node{
			{ID: "btn:Send", Role: model.RoleButton, Label: "Send", Enabled: true, Interactive: true,
				Pos: &ax.Point{X: 10, Y: 10}, Size: &ax.Size{W: 80, H: 30}},
			{ID: "txt:Send", Role: model.RoleText, Label: "Send", Enabled: true,
				Pos: &ax.Point{X: 10, Y: 50}, Size: &ax.Size{W: 80, H: 20}},
			{ID: "btn:Send later", Role: model.RoleButton, Label: "Send later", Enabled: true, Interactive: true},
		},
	}
}

func TestResolve_Ordering(t *testing.T) {
	matches := New(nil).Resolve("send", "button", mailSnapshot(), 0)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Node.ID != "btn:Send" {
		t.Errorf("best match = %s, want btn:Send (%s)", matches[0].Node.ID, matches[0].Reason)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches out of order at %d: %d > %d", i, matches[i].Score, matches[i-1].Score)
		}
	}
}

func TestResolve_Limit(t *testing.T) {
	matches := New(nil).Resolve("send", "", mailSnapshot(), 1)
	if len(matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(matches))
	}
}

func TestResolve_NoiseFloorEmptyResult(t *testing.T) {
	matches := New(nil).Resolve("zzgarbagezz", "", mailSnapshot(), 0)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d: %v", len(matches), matches)
	}
}

func TestResolve_EmptyInputs(t *testing.T) {
	r := New(nil)
	if got := r.Resolve("", "", mailSnapshot(), 0); got != nil {
		t.Error("empty query must resolve to nothing")
	}
	if got := r.Resolve("send", "", nil, 0); got != nil {
		t.Error("nil root must resolve to nothing")
	}
}

func TestLive_FindsBestElement(t *testing.T) {
	root := &axtest.Element{
		AXRole: "AXWindow",
		Kids: []*axtest.Element{
			{AXRole: "AXGroup", Kids: []*axtest.Element{
				{AXRole: "AXStaticText", AXTitle: "Send", X: 0, Y: 0, W: 10, H: 10},
				{AXRole: "AXButton", AXTitle: "Send", Acts: []string{"press"}, X: 20, Y: 0, W: 80, H: 30},
			}},
		},
	}

	match, ok := New(nil).Live(root, "send", "button", tree.WalkOptions{})
	if !ok {
		t.Fatal("expected a live match")
	}
	if match.Role != model.RoleButton {
		t.Errorf("best live match role = %q, want btn (%s)", match.Role, match.Reason)
	}
}

func TestLive_NothingAboveFloor(t *testing.T) {
	root := &axtest.Element{AXRole: "AXWindow", Kids: []*axtest.Element{
		{AXRole: "AXStaticText", AXTitle: "unrelated"},
	}}
	if _, ok := New(nil).Live(root, "zzgarbagezz", "", tree.WalkOptions{}); ok {
		t.Error("expected no live match")
	}
}
