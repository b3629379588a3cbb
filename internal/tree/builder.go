// Package tree turns live accessibility element graphs into bounded
// snapshots and provides the semantic-depth-budgeted walker shared by
// content extraction and live element search.
package tree

import (
	"strings"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
)

const (
	// DefaultDepth bounds snapshot recursion when the caller passes 0.
	DefaultDepth = 25
	// DefaultMaxChildren bounds per-node branching when the caller passes 0.
	DefaultMaxChildren = 50
	// maxValueLabel caps labels derived from a raw value attribute.
	maxValueLabel = 60
)

// Builder produces bounded Node snapshots from live element graphs.
type Builder struct {
	MaxDepth    int
	MaxChildren int
	Sets        *model.RoleSets
}

// Build walks the live graph and returns a bounded snapshot, or nil when the
// root handle was already seen within this build. The accessibility graph is
// not guaranteed to be a tree (some toolkits expose back-references), so a
// per-build visited set refuses to re-enter any live identity.
func (b Builder) Build(root ax.Element) *model.Node {
	if root == nil {
		return nil
	}
	depth := b.MaxDepth
	if depth <= 0 {
		depth = DefaultDepth
	}
	maxChildren := b.MaxChildren
	if maxChildren <= 0 {
		maxChildren = DefaultMaxChildren
	}
	sets := b.Sets
	if sets == nil {
		sets = model.DefaultRoleSets()
	}
	visited := make(map[uint64]bool)
	return buildNode(root, depth, maxChildren, sets, visited)
}

// Build is the package-level convenience with default role sets.
func Build(root ax.Element, depth, maxChildren int) *model.Node {
	return Builder{MaxDepth: depth, MaxChildren: maxChildren}.Build(root)
}

func buildNode(el ax.Element, depth, maxChildren int, sets *model.RoleSets, visited map[uint64]bool) *model.Node {
	identity := el.Identity()
	if visited[identity] {
		return nil
	}
	visited[identity] = true

	role := model.MapRole(el.Role())
	label := Label(el)
	value := filterValue(role, el.Value())

	node := &model.Node{
		ID:          model.NodeID(el.Ident(), role, label),
		Role:        role,
		Label:       label,
		Value:       value,
		RoleDesc:    el.RoleDescription(),
		Interactive: IsInteractive(el, role, sets),
		Enabled:     el.Enabled(),
		Focused:     el.Focused(),
		Actions:     el.Actions(),
	}
	if pos, ok := el.Position(); ok {
		p := pos
		node.Pos = &p
	}
	if size, ok := el.Size(); ok {
		s := size
		node.Size = &s
	}

	if depth > 0 {
		children := el.Children()
		if len(children) > maxChildren {
			children = children[:maxChildren]
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if cn := buildNode(child, depth-1, maxChildren, sets, visited); cn != nil {
				node.Children = append(node.Children, *cn)
			}
		}
	}
	return node
}

// Label resolves an element's display label: title, else description, else a
// truncated raw value. Some elements keep their only text in a generic value
// field.
func Label(el ax.Element) string {
	if t := el.Title(); t != "" {
		return t
	}
	if d := el.Description(); d != "" {
		return d
	}
	if v := el.Value(); v != "" {
		return truncate(strings.TrimSpace(v), maxValueLabel)
	}
	return ""
}

// IsInteractive reports whether a live element should be treated as
// interactive: its role is in the interactive set or it supports a
// press-style action.
func IsInteractive(el ax.Element, role model.Role, sets *model.RoleSets) bool {
	if sets.IsInteractive(role) {
		return true
	}
	for _, a := range el.Actions() {
		if a == "press" {
			return true
		}
	}
	return false
}

// filterValue suppresses non-informative values: empty strings, the literal
// "nil" some toolkits return, and "0" on everything except slider-like roles
// where zero is a real reading.
func filterValue(role model.Role, v string) string {
	switch v {
	case "", "nil":
		return ""
	case "0":
		if role != model.RoleSlider {
			return ""
		}
	}
	return v
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
