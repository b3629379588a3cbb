package tree

import (
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
)

// docSearchDepth bounds the shallow search for a document/web-area root.
// Documents live near the top of the tree; anything deeper is content.
const docSearchDepth = 12

// ContentRoot returns the subtree root most likely to hold user-meaningful
// content: a document/web-area node if one exists near the top of the tree,
// else the focused window, else the first window, else the application root.
// Menu subtrees are skipped entirely; menus are chrome, and searching them
// wastes depth budget and produces false matches.
func ContentRoot(app ax.App) ax.Element {
	if app == nil {
		return nil
	}
	root := app.Root()
	if root != nil {
		visited := make(map[uint64]bool)
		if doc := findDocument(root, docSearchDepth, visited); doc != nil {
			return doc
		}
	}
	if w := app.FocusedWindow(); w != nil {
		return w
	}
	if wins := app.Windows(); len(wins) > 0 && wins[0] != nil {
		return wins[0]
	}
	return root
}

func findDocument(el ax.Element, depth int, visited map[uint64]bool) ax.Element {
	if el == nil || depth < 0 {
		return nil
	}
	identity := el.Identity()
	if visited[identity] {
		return nil
	}
	visited[identity] = true

	switch model.MapRole(el.Role()) {
	case model.RoleWeb:
		return el
	case model.RoleMenu, model.RoleMenuItem:
		return nil
	}

	for _, child := range el.Children() {
		if doc := findDocument(child, depth-1, visited); doc != nil {
			return doc
		}
	}
	return nil
}
