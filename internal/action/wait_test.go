package action

import (
	"strings"
	"testing"
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/ax/axtest"
)

func newWaitFixture() (*Dispatcher, *axtest.App, *axtest.Element) {
	win := &axtest.Element{
		AXRole: "AXWindow", AXTitle: "Checkout", DocURL: "https://shop.example.com/cart",
		Kids: []*axtest.Element{
			{AXRole: "AXButton", AXTitle: "Pay now", Acts: []string{"press"}},
		},
	}
	app := &axtest.App{
		AppName: "Browser", Pid: 9,
		RootEl:      win,
		Wins:        []*axtest.Element{win},
		FocusedWin:  win,
		IsFrontmost: true,
	}
	d := NewDispatcher(&ax.Provider{Driver: &axtest.Driver{Front: app}, Input: &axtest.Input{}})
	d.sleep = func(time.Duration) {}
	return d, app, win
}

func shortWait() WaitOptions {
	return WaitOptions{Timeout: 50 * time.Millisecond, Interval: time.Millisecond}
}

func TestWait_ElementExists(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(ElementExists, "Pay now", shortWait())
	if !result.Success {
		t.Fatalf("expected success: %s", result.Description)
	}
	if result.Method != MethodWait {
		t.Errorf("method = %q, want wait", result.Method)
	}
	if !strings.Contains(result.Description, "satisfied") {
		t.Errorf("description = %q", result.Description)
	}
}

func TestWait_ElementGone(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(ElementGone, "Loading", shortWait())
	if !result.Success {
		t.Errorf("an absent element satisfies element-gone immediately: %s", result.Description)
	}
}

func TestWait_TimeoutIsOrdinaryFailure(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(ElementExists, "Never appears", shortWait())
	if result.Success {
		t.Fatal("expected timeout failure")
	}
	if result.Method != MethodWait {
		t.Errorf("method = %q, want wait", result.Method)
	}
	if !strings.Contains(result.Description, "timed out") {
		t.Errorf("description = %q", result.Description)
	}
	if result.Context == nil {
		t.Error("timeout must still report the final observed context")
	}
}

func TestWait_UnsupportedCondition(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(Condition("becomes-purple"), "x", shortWait())
	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Description, "unsupported wait condition") {
		t.Errorf("description = %q", result.Description)
	}
}

func TestWait_URLContains(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(URLContains, "SHOP.example", shortWait())
	if !result.Success {
		t.Errorf("url-contains should match case-insensitively: %s", result.Description)
	}
}

func TestWait_TitleContains(t *testing.T) {
	d, _, _ := newWaitFixture()

	result := d.Wait(TitleContains, "checkout", shortWait())
	if !result.Success {
		t.Errorf("title-contains failed: %s", result.Description)
	}
}

func TestWait_URLChangedAgainstCallerBaseline(t *testing.T) {
	d, _, _ := newWaitFixture()

	// The transition completed before the wait started. A caller-supplied
	// baseline from before the triggering action still detects it.
	opts := shortWait()
	opts.Baseline = &Context{URL: "https://shop.example.com/checkout"}

	result := d.Wait(URLChanged, "", opts)
	if !result.Success {
		t.Errorf("pre-action baseline should see the change: %s", result.Description)
	}
}

func TestWait_URLChangedWithoutBaselineMissesFastTransition(t *testing.T) {
	d, _, _ := newWaitFixture()

	// Without a baseline the first poll becomes the baseline, so a
	// transition that already finished is invisible and the wait times out.
	result := d.Wait(URLChanged, "", shortWait())
	if result.Success {
		t.Error("expected timeout: the first poll self-baselines")
	}
}

func TestWait_TitleChangedDuringPolling(t *testing.T) {
	d, _, win := newWaitFixture()

	polls := 0
	d.sleep = func(time.Duration) {
		polls++
		if polls == 2 {
			win.AXTitle = "Order complete"
		}
	}

	opts := WaitOptions{Timeout: time.Second, Interval: time.Millisecond}
	result := d.Wait(TitleChanged, "", opts)
	if !result.Success {
		t.Fatalf("expected success once the title moved: %s", result.Description)
	}
	if !strings.Contains(result.Description, "Order complete") {
		t.Errorf("description = %q", result.Description)
	}
}

func TestParseCondition(t *testing.T) {
	for _, ok := range []string{"url-contains", "title-contains", "element-exists", "element-gone", "url-changed", "title-changed"} {
		if _, err := ParseCondition(ok); err != nil {
			t.Errorf("ParseCondition(%q) unexpected error: %v", ok, err)
		}
	}
	if _, err := ParseCondition("element-visible"); err == nil {
		t.Error("expected an error for an unknown condition")
	}
}
