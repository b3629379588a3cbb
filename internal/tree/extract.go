package tree

import (
	"strings"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
)

const (
	// DefaultMaxItems caps extracted content lines.
	DefaultMaxItems = 400
	// DefaultMaxTextLen truncates long content strings.
	DefaultMaxTextLen = 200
)

// ExtractOptions bounds content extraction. Zero values select defaults.
type ExtractOptions struct {
	Walk       WalkOptions
	MaxItems   int
	MaxTextLen int
}

// Extract walks the subtree under root and returns a flat reading view of
// its content: each content-bearing node classified by kind, adjacent
// duplicate text collapsed, long strings truncated.
func Extract(root ax.Element, opts ExtractOptions) []model.ContentItem {
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.MaxTextLen <= 0 {
		opts.MaxTextLen = DefaultMaxTextLen
	}
	sets := opts.Walk.Sets
	if sets == nil {
		sets = model.DefaultRoleSets()
		opts.Walk.Sets = sets
	}

	var items []model.ContentItem
	lastText := ""
	WalkLive(root, opts.Walk, func(el ax.Element, role model.Role, structural, semantic int) bool {
		text := Label(el)
		value := filterValue(role, el.Value())
		if text == "" && value == "" {
			return true
		}
		if text == "" {
			text = value
			value = ""
		}
		if text == value {
			value = ""
		}
		text = truncate(strings.TrimSpace(text), opts.MaxTextLen)
		value = truncate(value, opts.MaxTextLen)

		// Collapse adjacent identical text: web trees often repeat the same
		// string on a link and its inner static text.
		if text == lastText && value == "" {
			return true
		}
		lastText = text

		items = append(items, model.ContentItem{
			Kind:  model.ClassifyContent(role, sets),
			Text:  text,
			Value: value,
			Depth: semantic,
		})
		return len(items) < opts.MaxItems
	})
	return items
}

// ContainsText reports whether any extracted content line contains the query
// (case-insensitive). Used as the bounded fallback scan for element-exists
// style checks.
func ContainsText(root ax.Element, query string, opts ExtractOptions) bool {
	queryLower := strings.ToLower(query)
	found := false
	if opts.Walk.Sets == nil {
		opts.Walk.Sets = model.DefaultRoleSets()
	}
	WalkLive(root, opts.Walk, func(el ax.Element, role model.Role, structural, semantic int) bool {
		if strings.Contains(strings.ToLower(Label(el)), queryLower) ||
			strings.Contains(strings.ToLower(el.Value()), queryLower) {
			found = true
			return false
		}
		return true
	})
	return found
}
