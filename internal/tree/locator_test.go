package tree

import (
	"testing"

	"github.com/mcheemaa/axpilot/internal/ax/axtest"
)

func TestContentRoot_PrefersWebArea(t *testing.T) {
	web := &axtest.Element{AXRole: "AXWebArea", DocURL: "https://example.com"}
	app := &axtest.App{
		RootEl: &axtest.Element{
			AXRole: "AXApplication",
			Kids: []*axtest.Element{
				{AXRole: "AXWindow", Kids: []*axtest.Element{
					{AXRole: "AXGroup", Kids: []*axtest.Element{web}},
				}},
			},
		},
	}

	got := ContentRoot(app)
	if got != web {
		t.Errorf("expected the web area, got %v", got)
	}
}

func TestContentRoot_SkipsMenuSubtrees(t *testing.T) {
	// A web area hidden inside a menu must not be picked up.
	menuWeb := &axtest.Element{AXRole: "AXWebArea"}
	win := &axtest.Element{AXRole: "AXWindow"}
	app := &axtest.App{
		RootEl: &axtest.Element{
			AXRole: "AXApplication",
			Kids: []*axtest.Element{
				{AXRole: "AXMenuBar", Kids: []*axtest.Element{menuWeb}},
				win,
			},
		},
		FocusedWin: win,
	}

	if got := ContentRoot(app); got != win {
		t.Errorf("expected the focused window, got %v", got)
	}
}

func TestContentRoot_FallbackOrder(t *testing.T) {
	win1 := &axtest.Element{AXRole: "AXWindow", AXTitle: "first"}
	win2 := &axtest.Element{AXRole: "AXWindow", AXTitle: "second"}
	root := &axtest.Element{AXRole: "AXApplication"}

	app := &axtest.App{RootEl: root, Wins: []*axtest.Element{win1, win2}, FocusedWin: win2}
	if got := ContentRoot(app); got != win2 {
		t.Error("focused window should win over the window list")
	}

	app = &axtest.App{RootEl: root, Wins: []*axtest.Element{win1, win2}}
	if got := ContentRoot(app); got != win1 {
		t.Error("first window should win when nothing is focused")
	}

	app = &axtest.App{RootEl: root}
	if got := ContentRoot(app); got != root {
		t.Error("application root is the last resort")
	}
}

func TestContentRoot_CyclicTreeTerminates(t *testing.T) {
	root := &axtest.Element{AXRole: "AXApplication"}
	group := &axtest.Element{AXRole: "AXGroup"}
	root.Kids = []*axtest.Element{group}
	group.Kids = []*axtest.Element{root}

	app := &axtest.App{RootEl: root}
	if got := ContentRoot(app); got != root {
		t.Errorf("expected the root fallback, got %v", got)
	}
}

func TestContentRoot_NilApp(t *testing.T) {
	if got := ContentRoot(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
