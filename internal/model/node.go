package model

import (
	"strings"

	"github.com/mcheemaa/axpilot/internal/ax"
)

// Node is an immutable snapshot of one UI element. It carries no live
// handle: everything an agent needs to reason about the element is baked in
// at build time. Children are owned exclusively by their parent, so a Node
// tree is always finite and acyclic.
type Node struct {
	ID          string    `yaml:"id"                    json:"id"`
	Role        Role      `yaml:"role"                  json:"role"`
	Label       string    `yaml:"label,omitempty"       json:"label,omitempty"`
	Value       string    `yaml:"value,omitempty"       json:"value,omitempty"`
	RoleDesc    string    `yaml:"role_desc,omitempty"   json:"role_desc,omitempty"`
	Pos         *ax.Point `yaml:"pos,omitempty"         json:"pos,omitempty"`
	Size        *ax.Size  `yaml:"size,omitempty"        json:"size,omitempty"`
	Interactive bool      `yaml:"interactive,omitempty" json:"interactive,omitempty"`
	Enabled     bool      `yaml:"enabled"               json:"enabled"`
	Focused     bool      `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Actions     []string  `yaml:"actions,omitempty"     json:"actions,omitempty"`
	Children    []Node    `yaml:"children,omitempty"    json:"children,omitempty"`
}

// NodeID derives a snapshot identifier: the toolkit's stable identifier when
// available, else a role:label composite. Not guaranteed globally unique
// across refreshes.
func NodeID(ident string, role Role, label string) string {
	if ident != "" {
		return ident
	}
	return string(role) + ":" + label
}

// HasGeometry reports whether the node has a usable, non-zero screen extent.
func (n *Node) HasGeometry() bool {
	return n.Pos != nil && n.Size != nil && n.Size.W > 0 && n.Size.H > 0
}

// Center returns the midpoint of the node's bounds, or ok=false when the
// node has no usable geometry.
func (n *Node) Center() (ax.Point, bool) {
	if !n.HasGeometry() {
		return ax.Point{}, false
	}
	return ax.Point{X: n.Pos.X + n.Size.W/2, Y: n.Pos.Y + n.Size.H/2}, true
}

// HasAction reports whether the node supports the named accessibility action.
func (n *Node) HasAction(action string) bool {
	for _, a := range n.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// FindInTree returns all nodes whose label or value matches the query
// (case-insensitive exact or substring), optionally filtered by role.
// No scoring: this is the cheap lookup for callers that already know what
// they want; fuzzy ranking lives in the resolve package.
func FindInTree(root *Node, query string, role Role) []*Node {
	if root == nil {
		return nil
	}
	queryLower := strings.ToLower(query)
	var out []*Node
	findRecursive(root, queryLower, role, &out)
	return out
}

func findRecursive(n *Node, queryLower string, role Role, out *[]*Node) {
	if (role == "" || n.Role == role) && nodeTextMatches(n, queryLower) {
		*out = append(*out, n)
	}
	for i := range n.Children {
		findRecursive(&n.Children[i], queryLower, role, out)
	}
}

func nodeTextMatches(n *Node, queryLower string) bool {
	if queryLower == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Label), queryLower) ||
		strings.Contains(strings.ToLower(n.Value), queryLower)
}

// CountNodes returns the total number of nodes in the tree.
func CountNodes(root *Node) int {
	if root == nil {
		return 0
	}
	total := 1
	for i := range root.Children {
		total += CountNodes(&root.Children[i])
	}
	return total
}

// MaxDepth returns the depth of the deepest node; a lone root is depth 1.
func MaxDepth(root *Node) int {
	if root == nil {
		return 0
	}
	deepest := 0
	for i := range root.Children {
		if d := MaxDepth(&root.Children[i]); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
