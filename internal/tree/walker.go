package tree

import (
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
)

const (
	// DefaultBudget is the semantic depth budget: the number of meaningful
	// (non-wrapper) levels a walk may descend. Web content commonly nests
	// 30+ structural levels, but most of that is CSS-wrapper noise that
	// tunnels through for free, so a modest budget reaches real content.
	DefaultBudget = 22
	// DefaultMaxStructural is the hard structural-depth ceiling, independent
	// of semantic cost. Guards against pathological nesting.
	DefaultMaxStructural = 60
	// DefaultDeadline bounds wall-clock time spent on slow attribute reads.
	DefaultDeadline = 3 * time.Second
)

// WalkOptions bounds a semantic walk. Zero values select the defaults.
type WalkOptions struct {
	Budget        int
	MaxStructural int
	Deadline      time.Duration
	Sets          *model.RoleSets
}

func (o WalkOptions) withDefaults() WalkOptions {
	if o.Budget <= 0 {
		o.Budget = DefaultBudget
	}
	if o.MaxStructural <= 0 {
		o.MaxStructural = DefaultMaxStructural
	}
	if o.Deadline <= 0 {
		o.Deadline = DefaultDeadline
	}
	if o.Sets == nil {
		o.Sets = model.DefaultRoleSets()
	}
	return o
}

// Visit is called for every meaningful node reached within budget. Empty
// layout wrappers are tunneled through and never reported. Return false to
// stop the walk.
type Visit func(el ax.Element, role model.Role, structural, semantic int) bool

// WalkLive traverses from root under a semantic depth budget and a
// wall-clock deadline. A node is an empty layout container, passed through
// at zero semantic cost, iff its role is in the tunnel set and it carries
// no title, description, or value. Every other node costs one unit. The
// root itself is never charged or reported.
func WalkLive(root ax.Element, opts WalkOptions, visit Visit) {
	if root == nil {
		return
	}
	opts = opts.withDefaults()
	w := &walker{
		opts:     opts,
		deadline: time.Now().Add(opts.Deadline),
		visited:  make(map[uint64]bool),
		visit:    visit,
	}
	w.visited[root.Identity()] = true
	for _, child := range root.Children() {
		if !w.walk(child, 1, 0) {
			return
		}
	}
}

type walker struct {
	opts     WalkOptions
	deadline time.Time
	visited  map[uint64]bool
	visit    Visit
}

// walk returns false when the entire traversal should stop (deadline hit or
// the visitor asked to stop); true means only this subtree is done.
func (w *walker) walk(el ax.Element, structural, semantic int) bool {
	if el == nil {
		return true
	}
	if structural > w.opts.MaxStructural {
		return true
	}
	if time.Now().After(w.deadline) {
		return false
	}
	identity := el.Identity()
	if w.visited[identity] {
		return true
	}
	w.visited[identity] = true

	role := model.MapRole(el.Role())
	cost := 1
	if w.opts.Sets.IsTunnel(role) && el.Title() == "" && el.Description() == "" && el.Value() == "" {
		cost = 0
	}
	semantic += cost
	if semantic > w.opts.Budget {
		return true
	}
	if cost == 1 {
		if !w.visit(el, role, structural, semantic) {
			return false
		}
	}
	for _, child := range el.Children() {
		if !w.walk(child, structural+1, semantic) {
			return false
		}
	}
	return true
}
