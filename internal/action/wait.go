package action

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/resolve"
	"github.com/mcheemaa/axpilot/internal/tree"
)

// Condition enumerates what the wait engine can poll for.
type Condition string

const (
	URLContains   Condition = "url-contains"
	TitleContains Condition = "title-contains"
	ElementExists Condition = "element-exists"
	ElementGone   Condition = "element-gone"
	URLChanged    Condition = "url-changed"
	TitleChanged  Condition = "title-changed"
)

// ParseCondition validates a wait condition kind.
func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case URLContains, TitleContains, ElementExists, ElementGone, URLChanged, TitleChanged:
		return Condition(s), nil
	}
	return "", fmt.Errorf("unsupported wait condition %q (use url-contains, title-contains, element-exists, element-gone, url-changed, title-changed)", s)
}

const (
	// DefaultWaitTimeout bounds a wait call when the caller passes 0.
	DefaultWaitTimeout = 30 * time.Second
	// DefaultWaitInterval is the poll spacing when the caller passes 0.
	DefaultWaitInterval = 500 * time.Millisecond
)

// WaitOptions configures one wait call.
type WaitOptions struct {
	Timeout  time.Duration
	Interval time.Duration

	// Baseline is the Context captured before the triggering action. The
	// changed conditions compare against it rather than wait-start state,
	// so a transition that completes before polling begins still counts.
	Baseline *Context

	AppHint string
}

// Wait polls the condition until satisfied or the timeout elapses. Timeout
// is reported as an ordinary failure Result with the final observed Context,
// not a distinct error class.
func (d *Dispatcher) Wait(cond Condition, value string, opts WaitOptions) Result {
	if d.Provider == nil || d.Provider.Driver == nil {
		return failure(MethodWait, "no accessibility driver available", nil)
	}
	if d.Sets == nil {
		d.Sets = model.DefaultRoleSets()
	}
	d.resolver = resolve.New(d.Sets)
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if _, err := ParseCondition(string(cond)); err != nil {
		return failure(MethodWait, err.Error(), nil)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultWaitTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultWaitInterval
	}

	start := time.Now()
	deadline := start.Add(opts.Timeout)
	baseline := opts.Baseline

	var ctx *Context
	for {
		app, err := resolveApp(d.Provider.Driver, opts.AppHint)
		if err != nil {
			ctx = nil
		} else {
			ctx = captureApp(app, d.Sets)
		}

		if ctx != nil {
			// Without a caller-supplied baseline the first poll becomes it;
			// this degrades race-safety and callers are expected to pass one.
			if baseline == nil && (cond == URLChanged || cond == TitleChanged) {
				baseline = ctx
			}
			met, detail := d.evaluate(cond, value, ctx, baseline, app)
			if met {
				return success(MethodWait,
					fmt.Sprintf("%s satisfied after %.1fs: %s", cond, time.Since(start).Seconds(), detail),
					ctx)
			}
		}

		if time.Now().After(deadline) {
			return failure(MethodWait,
				fmt.Sprintf("timed out after %.1fs waiting for %s %q", opts.Timeout.Seconds(), cond, value),
				ctx)
		}
		d.sleep(opts.Interval)
	}
}

func (d *Dispatcher) evaluate(cond Condition, value string, ctx, baseline *Context, app ax.App) (bool, string) {
	switch cond {
	case URLContains:
		if strings.Contains(strings.ToLower(ctx.URL), strings.ToLower(value)) {
			return true, fmt.Sprintf("url is %q", ctx.URL)
		}
	case TitleContains:
		if strings.Contains(strings.ToLower(ctx.WindowTitle), strings.ToLower(value)) {
			return true, fmt.Sprintf("title is %q", ctx.WindowTitle)
		}
	case URLChanged:
		if baseline != nil && ctx.URL != baseline.URL {
			return true, fmt.Sprintf("url changed to %q", ctx.URL)
		}
	case TitleChanged:
		if baseline != nil && ctx.WindowTitle != baseline.WindowTitle {
			return true, fmt.Sprintf("title changed to %q", ctx.WindowTitle)
		}
	case ElementExists:
		if d.elementPresent(value, app) {
			return true, fmt.Sprintf("element %q present", value)
		}
	case ElementGone:
		if !d.elementPresent(value, app) {
			return true, fmt.Sprintf("element %q gone", value)
		}
	}
	return false, ""
}

// elementPresent prefers a live targeted search and falls back to a bounded
// content scan.
func (d *Dispatcher) elementPresent(query string, app ax.App) bool {
	root := tree.ContentRoot(app)
	if _, ok := d.resolver.Live(root, query, "", d.Walk); ok {
		return true
	}
	return tree.ContainsText(root, query, tree.ExtractOptions{Walk: d.Walk})
}
