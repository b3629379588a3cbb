package action

import (
	"fmt"
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/resolve"
	"github.com/mcheemaa/axpilot/internal/tree"
)

// Kind selects what to do to the resolved target.
type Kind string

const (
	Click       Kind = "click"
	DoubleClick Kind = "double-click"
	RightClick  Kind = "right-click"
	TypeText    Kind = "type-text"
	SetValue    Kind = "set-value"
	KeyCombo    Kind = "key-combo"
	Scroll      Kind = "scroll"
)

// Target names what to act on: a query for the fuzzy resolver, or an
// explicit screen point. Text/Keys/Scroll carry the action payload.
type Target struct {
	Query    string
	RoleHint string
	Point    *ax.Point
	Text     string
	Keys     []string
	ScrollDX int
	ScrollDY int
}

const (
	// DefaultCommitThreshold is the minimum resolver score the dispatcher
	// will act on. A best match below it is a low-confidence failure,
	// distinct from not-found.
	DefaultCommitThreshold = 40
	// DefaultSettleDelay lets the target app react after an action before
	// the after-Context is captured.
	DefaultSettleDelay = 150 * time.Millisecond
	// DefaultFocusDelay lets a foreground switch complete before synthetic
	// input is dispatched.
	DefaultFocusDelay = 300 * time.Millisecond
	// typeCharDelayMs spaces synthetic keystrokes during fallback typing.
	typeCharDelayMs = 15
)

// Dispatcher performs actions native-first, verifies effect via before/after
// Context comparison, and falls back to synthetic input. Native return
// values are never trusted: a call that "succeeds" without observable effect
// still triggers the fallback.
//
// The underlying binding is not safe for concurrent use; a Dispatcher must
// be driven from a single goroutine or behind a caller-held mutex.
type Dispatcher struct {
	Provider        *ax.Provider
	Sets            *model.RoleSets
	Walk            tree.WalkOptions
	CommitThreshold int
	SettleDelay     time.Duration
	FocusDelay      time.Duration
	Debug           bool

	resolver *resolve.Resolver
	sleep    func(time.Duration)
}

// NewDispatcher returns a Dispatcher with default timings and role sets.
func NewDispatcher(provider *ax.Provider) *Dispatcher {
	sets := model.DefaultRoleSets()
	return &Dispatcher{
		Provider:        provider,
		Sets:            sets,
		CommitThreshold: DefaultCommitThreshold,
		SettleDelay:     DefaultSettleDelay,
		FocusDelay:      DefaultFocusDelay,
		sleep:           time.Sleep,
	}
}

// Dispatch runs the action state machine: Resolving, NativeAttempt,
// Verifying, SyntheticFallback, Done. Every outcome is a Result; binding
// errors are absorbed into failure Results at this boundary.
func (d *Dispatcher) Dispatch(kind Kind, target Target, appHint string) Result {
	if d.Provider == nil || d.Provider.Driver == nil {
		return failure(MethodNone, "no accessibility driver available", nil)
	}
	if d.Sets == nil {
		d.Sets = model.DefaultRoleSets()
	}
	d.resolver = resolve.New(d.Sets)
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	app, err := resolveApp(d.Provider.Driver, appHint)
	if err != nil {
		return failure(MethodNone, err.Error(), nil)
	}

	if kind == KeyCombo {
		return d.keyCombo(app, target)
	}

	x := &dispatch{d: d, kind: kind, target: target, app: app, state: stateResolving}
	return x.run()
}

// dispatchState enumerates the action state machine.
type dispatchState int

const (
	stateResolving dispatchState = iota
	stateNativeAttempt
	stateVerifying
	stateSyntheticFallback
	stateDone
)

type dispatch struct {
	d      *Dispatcher
	kind   Kind
	target Target
	app    ax.App

	el     ax.Element
	match  resolve.LiveMatch
	before *Context

	state  dispatchState
	result Result
}

func (x *dispatch) run() Result {
	for x.state != stateDone {
		switch x.state {
		case stateResolving:
			x.resolveTarget()
		case stateNativeAttempt:
			x.nativeAttempt()
		case stateVerifying:
			x.verify()
		case stateSyntheticFallback:
			x.syntheticFallback()
		}
	}
	if x.result.Context == nil {
		x.result.Context = captureApp(x.app, x.d.Sets)
	}
	if !x.result.Success {
		x.d.attachDebugShot(&x.result)
	}
	return x.result
}

func (x *dispatch) fail(method Method, description string) {
	x.result = failure(method, description, captureApp(x.app, x.d.Sets))
	x.state = stateDone
}

// resolveTarget finds the element to act on. Explicit coordinates have no
// native path and go straight to synthetic input.
func (x *dispatch) resolveTarget() {
	// Before-Context is captured strictly before any action.
	x.before = captureApp(x.app, x.d.Sets)

	if x.target.Point != nil {
		x.state = stateSyntheticFallback
		return
	}
	if x.target.Query == "" {
		if x.kind == TypeText && x.target.Text != "" {
			// No target means type at the current focus.
			x.state = stateSyntheticFallback
			return
		}
		x.fail(MethodNone, "no target: provide a query or a screen point")
		return
	}

	root := tree.ContentRoot(x.app)
	match, ok := x.d.resolver.Live(root, x.target.Query, x.target.RoleHint, x.d.Walk)
	if !ok {
		x.fail(MethodNone, fmt.Sprintf("no element matching %q", x.target.Query))
		return
	}
	if match.Score < x.d.CommitThreshold {
		x.fail(MethodNone, fmt.Sprintf(
			"low confidence: best match for %q scored %d, below commit threshold %d (%s)",
			x.target.Query, match.Score, x.d.CommitThreshold, match.Reason))
		return
	}
	x.match = match
	x.el = match.Element

	switch x.kind {
	case Click:
		if hasAction(x.el, "press") {
			x.state = stateNativeAttempt
		} else {
			x.state = stateSyntheticFallback
		}
	case TypeText, SetValue:
		x.state = stateNativeAttempt
	default:
		// double-click, right-click, scroll have no native equivalent
		x.state = stateSyntheticFallback
	}
}

// nativeAttempt performs the low-cost accessibility action. It requires no
// focus change and works against background windows.
func (x *dispatch) nativeAttempt() {
	switch x.kind {
	case Click:
		if err := x.el.Perform("press"); err != nil {
			x.state = stateSyntheticFallback
			return
		}
		x.d.sleep(x.d.SettleDelay)
		x.state = stateVerifying

	case TypeText, SetValue:
		// Value-set first, then read back: some toolkits report success and
		// silently drop the write.
		if err := x.el.SetValue(x.target.Text); err == nil && x.el.Value() == x.target.Text {
			x.result = success(MethodSetValue,
				fmt.Sprintf("set value on %q", x.target.Query),
				captureApp(x.app, x.d.Sets))
			x.state = stateDone
			return
		}
		x.state = stateSyntheticFallback
	}
}

// verify compares Context before and after the native attempt. Any observed
// difference means the native path worked; the native call's own return
// value is never trusted.
func (x *dispatch) verify() {
	after := captureApp(x.app, x.d.Sets)
	if diff, changed := after.Diff(x.before); changed {
		x.result = success(MethodNative,
			fmt.Sprintf("press on %q verified: %s", x.target.Query, diff), after)
		x.state = stateDone
		return
	}
	x.state = stateSyntheticFallback
}

// syntheticFallback brings the app forward if needed and dispatches emulated
// input at the target's center (or at current focus for typed text).
func (x *dispatch) syntheticFallback() {
	input := x.d.Provider.Input
	if input == nil {
		x.fail(MethodNone, "no synthetic input backend available")
		return
	}

	point, ok := x.targetPoint()
	if !ok && x.kind != TypeText {
		x.fail(MethodNone, fmt.Sprintf("no screen position for %q: element cannot be clicked", x.target.Query))
		return
	}

	if !x.app.Frontmost() {
		if err := x.app.Activate(); err != nil {
			x.fail(MethodNone, fmt.Sprintf("could not foreground %q: %v", x.app.Name(), err))
			return
		}
		x.d.sleep(x.d.FocusDelay)
	}

	var err error
	method := MethodSynthetic
	desc := ""
	switch x.kind {
	case Click:
		err = input.Click(point.X, point.Y, ax.MouseLeft, 1)
		desc = fmt.Sprintf("synthetic click at (%d,%d)", point.X, point.Y)
	case DoubleClick:
		err = input.Click(point.X, point.Y, ax.MouseLeft, 2)
		desc = fmt.Sprintf("synthetic double-click at (%d,%d)", point.X, point.Y)
	case RightClick:
		err = input.Click(point.X, point.Y, ax.MouseRight, 1)
		desc = fmt.Sprintf("synthetic right-click at (%d,%d)", point.X, point.Y)
	case Scroll:
		err = input.Scroll(point.X, point.Y, x.target.ScrollDX, x.target.ScrollDY)
		desc = fmt.Sprintf("synthetic scroll at (%d,%d)", point.X, point.Y)
	case TypeText, SetValue:
		// Focus the element with a click when it has geometry, then type
		// character by character at the focus.
		if ok {
			if err = input.Click(point.X, point.Y, ax.MouseLeft, 1); err == nil {
				x.d.sleep(x.d.SettleDelay)
			}
		}
		if err == nil {
			err = input.TypeText(x.target.Text, typeCharDelayMs)
		}
		method = MethodTypeText
		desc = fmt.Sprintf("typed %d characters", len(x.target.Text))
	}

	x.d.sleep(x.d.SettleDelay)
	after := captureApp(x.app, x.d.Sets)
	if err != nil {
		x.result = failure(method, fmt.Sprintf("synthetic input failed: %v", err), after)
	} else {
		x.result = success(method, desc, after)
	}
	x.state = stateDone
}

// targetPoint picks the explicit point or the resolved element's center.
func (x *dispatch) targetPoint() (ax.Point, bool) {
	if x.target.Point != nil {
		return *x.target.Point, true
	}
	if x.el == nil {
		return ax.Point{}, false
	}
	return ax.Center(x.el)
}

// keyCombo dispatches a modifier combo at the current focus; there is no
// element to resolve or native path to try.
func (d *Dispatcher) keyCombo(app ax.App, target Target) Result {
	if d.Provider.Input == nil {
		return failure(MethodNone, "no synthetic input backend available",
			captureApp(app, d.Sets))
	}
	if len(target.Keys) == 0 {
		return failure(MethodNone, "no keys given for key-combo",
			captureApp(app, d.Sets))
	}
	if !app.Frontmost() {
		if err := app.Activate(); err != nil {
			return failure(MethodNone,
				fmt.Sprintf("could not foreground %q: %v", app.Name(), err),
				captureApp(app, d.Sets))
		}
		d.sleep(d.FocusDelay)
	}

	key := target.Keys[len(target.Keys)-1]
	mods := target.Keys[:len(target.Keys)-1]
	err := d.Provider.Input.KeyTap(key, mods...)
	d.sleep(d.SettleDelay)
	after := captureApp(app, d.Sets)
	if err != nil {
		r := failure(MethodSynthetic, fmt.Sprintf("key combo failed: %v", err), after)
		d.attachDebugShot(&r)
		return r
	}
	return success(MethodSynthetic, fmt.Sprintf("pressed %v", target.Keys), after)
}

func (d *Dispatcher) attachDebugShot(r *Result) {
	if !d.Debug || d.Provider == nil || d.Provider.Screenshotter == nil {
		return
	}
	if shot, err := d.Provider.Screenshotter.CaptureScreen(); err == nil {
		r.Screenshot = shot
	}
}

func hasAction(el ax.Element, action string) bool {
	for _, a := range el.Actions() {
		if a == action {
			return true
		}
	}
	return false
}
