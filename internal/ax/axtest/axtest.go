// Package axtest provides a scriptable in-memory accessibility binding for
// tests. Elements are plain structs whose fields mirror the attributes the
// real binding would expose; cycles are created by pointing Kids at an
// ancestor.
package axtest

import (
	"sync/atomic"

	"github.com/mcheemaa/axpilot/internal/ax"
)

var nextIdentity atomic.Uint64

// Element is a scriptable ax.Element.
type Element struct {
	Identifier string
	AXRole     string
	AXTitle    string
	AXDesc     string
	AXRoleDesc string
	AXValue    string
	DocURL     string

	X, Y, W, H int
	NoGeometry bool // Position/Size report absent
	Disabled   bool
	IsFocused  bool
	Acts       []string
	Kids       []*Element

	// PerformErr, when set, is returned from every Perform call.
	PerformErr error
	// PerformFn, when set, runs on Perform after the call is recorded.
	PerformFn func(action string) error
	// DropSetValue makes SetValue report success without changing AXValue,
	// simulating toolkits whose set call silently no-ops.
	DropSetValue bool
	SetValueErr  error

	Performed []string

	identity uint64
}

var _ ax.Element = (*Element)(nil)

func (e *Element) Identity() uint64 {
	if e.identity == 0 {
		e.identity = nextIdentity.Add(1)
	}
	return e.identity
}

func (e *Element) Ident() string           { return e.Identifier }
func (e *Element) Role() string            { return e.AXRole }
func (e *Element) Title() string           { return e.AXTitle }
func (e *Element) Description() string     { return e.AXDesc }
func (e *Element) RoleDescription() string { return e.AXRoleDesc }
func (e *Element) Value() string           { return e.AXValue }
func (e *Element) URL() string             { return e.DocURL }
func (e *Element) Enabled() bool           { return !e.Disabled }
func (e *Element) Focused() bool           { return e.IsFocused }
func (e *Element) Actions() []string       { return e.Acts }

func (e *Element) Position() (ax.Point, bool) {
	if e.NoGeometry {
		return ax.Point{}, false
	}
	return ax.Point{X: e.X, Y: e.Y}, true
}

func (e *Element) Size() (ax.Size, bool) {
	if e.NoGeometry {
		return ax.Size{}, false
	}
	return ax.Size{W: e.W, H: e.H}, true
}

func (e *Element) Children() []ax.Element {
	out := make([]ax.Element, len(e.Kids))
	for i, k := range e.Kids {
		out[i] = k
	}
	return out
}

func (e *Element) Perform(action string) error {
	e.Performed = append(e.Performed, action)
	if e.PerformErr != nil {
		return e.PerformErr
	}
	if e.PerformFn != nil {
		return e.PerformFn(action)
	}
	return nil
}

func (e *Element) SetValue(value string) error {
	if e.SetValueErr != nil {
		return e.SetValueErr
	}
	if !e.DropSetValue {
		e.AXValue = value
	}
	return nil
}

// App is a scriptable ax.App.
type App struct {
	AppName     string
	Pid         int
	RootEl      *Element
	Wins        []*Element
	FocusedWin  *Element
	FocusedEl   *Element
	IsFrontmost bool
	ActivateErr error

	Activations int
}

var _ ax.App = (*App)(nil)

func (a *App) Name() string { return a.AppName }
func (a *App) PID() int     { return a.Pid }

func (a *App) Root() ax.Element {
	if a.RootEl == nil {
		return nil
	}
	return a.RootEl
}

func (a *App) Windows() []ax.Element {
	out := make([]ax.Element, len(a.Wins))
	for i, w := range a.Wins {
		out[i] = w
	}
	return out
}

func (a *App) FocusedWindow() ax.Element {
	if a.FocusedWin == nil {
		return nil
	}
	return a.FocusedWin
}

func (a *App) FocusedElement() ax.Element {
	if a.FocusedEl == nil {
		return nil
	}
	return a.FocusedEl
}

func (a *App) Frontmost() bool { return a.IsFrontmost }

func (a *App) Activate() error {
	a.Activations++
	if a.ActivateErr != nil {
		return a.ActivateErr
	}
	a.IsFrontmost = true
	return nil
}

// Driver is a scriptable ax.Driver.
type Driver struct {
	Front *App
	Apps  map[string]*App
}

var _ ax.Driver = (*Driver)(nil)

func (d *Driver) FrontmostApp() (ax.App, error) {
	if d.Front == nil {
		return nil, ax.ErrUnsupported
	}
	return d.Front, nil
}

func (d *Driver) AppNamed(name string) (ax.App, error) {
	if a, ok := d.Apps[name]; ok {
		return a, nil
	}
	if d.Front != nil && d.Front.AppName == name {
		return d.Front, nil
	}
	return nil, ax.ErrUnsupported
}

// ClickEvent records one synthetic click.
type ClickEvent struct {
	X, Y   int
	Button ax.MouseButton
	Count  int
}

// KeyEvent records one synthetic key tap.
type KeyEvent struct {
	Key  string
	Mods []string
}

// ScrollEvent records one synthetic scroll.
type ScrollEvent struct {
	X, Y, DX, DY int
}

// Input records synthetic events instead of dispatching them.
type Input struct {
	Clicks  []ClickEvent
	Typed   []string
	Keys    []KeyEvent
	Scrolls []ScrollEvent
	Err     error

	// OnClick, when set, runs after each recorded click so tests can mutate
	// the fake tree in response to synthetic input.
	OnClick func(x, y int)
	// OnType, when set, runs after each recorded TypeText call.
	OnType func(text string)
}

var _ ax.Input = (*Input)(nil)

func (in *Input) Click(x, y int, button ax.MouseButton, count int) error {
	in.Clicks = append(in.Clicks, ClickEvent{X: x, Y: y, Button: button, Count: count})
	if in.Err != nil {
		return in.Err
	}
	if in.OnClick != nil {
		in.OnClick(x, y)
	}
	return nil
}

func (in *Input) TypeText(text string, delayMs int) error {
	in.Typed = append(in.Typed, text)
	if in.Err != nil {
		return in.Err
	}
	if in.OnType != nil {
		in.OnType(text)
	}
	return nil
}

func (in *Input) KeyTap(key string, modifiers ...string) error {
	in.Keys = append(in.Keys, KeyEvent{Key: key, Mods: modifiers})
	return in.Err
}

func (in *Input) Scroll(x, y, dx, dy int) error {
	in.Scrolls = append(in.Scrolls, ScrollEvent{X: x, Y: y, DX: dx, DY: dy})
	return in.Err
}
