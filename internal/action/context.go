// Package action dispatches UI actions native-first with verification and
// synthetic fallback, and polls wait conditions. All soft failures are
// Result values, never errors: the caller always gets a definitive
// before/after state.
package action

import (
	"fmt"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/tree"
)

// maxContextInteractive caps the nearby-interactive-elements list.
const maxContextInteractive = 12

// contextBudget bounds the walk used for context capture; context is a
// compact situational snapshot, not a full tree read.
const contextBudget = 10

// Context is a compact situational snapshot: enough for an agent to decide
// its next step without a follow-up perception call.
type Context struct {
	App         string   `yaml:"app,omitempty"         json:"app,omitempty"`
	PID         int      `yaml:"pid,omitempty"         json:"pid,omitempty"`
	WindowTitle string   `yaml:"window,omitempty"      json:"window,omitempty"`
	URL         string   `yaml:"url,omitempty"         json:"url,omitempty"`
	Focused     string   `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Interactive []string `yaml:"interactive,omitempty" json:"interactive,omitempty"`
	Windows     []string `yaml:"windows,omitempty"     json:"windows,omitempty"`
}

// Capture builds a fresh Context for the named app, or the frontmost app
// when appHint is empty. Attribute reads that fail are absent fields; only
// a missing app is an error.
func Capture(drv ax.Driver, appHint string, sets *model.RoleSets) (*Context, error) {
	app, err := resolveApp(drv, appHint)
	if err != nil {
		return nil, err
	}
	return captureApp(app, sets), nil
}

func resolveApp(drv ax.Driver, appHint string) (ax.App, error) {
	if drv == nil {
		return nil, fmt.Errorf("no accessibility driver")
	}
	if appHint != "" {
		app, err := drv.AppNamed(appHint)
		if err != nil {
			return nil, fmt.Errorf("app %q: %w", appHint, err)
		}
		return app, nil
	}
	app, err := drv.FrontmostApp()
	if err != nil {
		return nil, fmt.Errorf("frontmost app: %w", err)
	}
	return app, nil
}

func captureApp(app ax.App, sets *model.RoleSets) *Context {
	if sets == nil {
		sets = model.DefaultRoleSets()
	}
	ctx := &Context{App: app.Name(), PID: app.PID()}

	if w := app.FocusedWindow(); w != nil {
		ctx.WindowTitle = w.Title()
	}
	for _, w := range app.Windows() {
		if w == nil {
			continue
		}
		if t := w.Title(); t != "" {
			ctx.Windows = append(ctx.Windows, t)
		}
	}
	if ctx.WindowTitle == "" && len(ctx.Windows) > 0 {
		ctx.WindowTitle = ctx.Windows[0]
	}

	root := tree.ContentRoot(app)
	if root != nil {
		ctx.URL = root.URL()
	}

	if focused := app.FocusedElement(); focused != nil {
		ctx.Focused = describeElement(focused, sets)
	}

	// Short list of nearby interactive elements, bounded by a small budget.
	tree.WalkLive(root, tree.WalkOptions{Budget: contextBudget, Sets: sets},
		func(el ax.Element, role model.Role, structural, semantic int) bool {
			if !tree.IsInteractive(el, role, sets) {
				return true
			}
			if label := tree.Label(el); label != "" {
				ctx.Interactive = append(ctx.Interactive, string(role)+" "+label)
			}
			return len(ctx.Interactive) < maxContextInteractive
		})

	return ctx
}

func describeElement(el ax.Element, sets *model.RoleSets) string {
	role := model.MapRole(el.Role())
	label := tree.Label(el)
	if label == "" {
		return string(role)
	}
	return fmt.Sprintf("%s %q", role, label)
}

// Diff returns the first field that differs between two contexts, comparing
// in a fixed order (focused element, then window title, URL, interactive
// count) so verification tie-breaking is deterministic. ok=false means no
// change.
func (c *Context) Diff(prev *Context) (string, bool) {
	if prev == nil {
		return "", false
	}
	if c.Focused != prev.Focused {
		return "focused element changed", true
	}
	if c.WindowTitle != prev.WindowTitle {
		return "window title changed", true
	}
	if c.URL != prev.URL {
		return "url changed", true
	}
	if len(c.Interactive) != len(prev.Interactive) {
		return "interactive elements changed", true
	}
	return "", false
}
