// Package resolve scores UI elements against natural-language queries. The
// additive scoring table here is the system's central behavioral contract:
// every point added is attributable to exactly one rule, and the resulting
// reason string lists each contributing rule.
package resolve

import (
	"regexp"
	"strings"

	"github.com/mcheemaa/axpilot/internal/model"
)

// NoiseFloor is the minimum score a match needs to be reported at all.
const NoiseFloor = 30

// Candidate is the scoring view of an element, built either from a Node
// snapshot or from a live handle during action-time search.
type Candidate struct {
	ID          string
	Role        model.Role
	Label       string
	Value       string
	RoleDesc    string
	Interactive bool
	Enabled     bool
	HasGeometry bool
}

// identRe matches queries that look like opaque identifiers.
var identRe = regexp.MustCompile(`^[A-Za-z0-9:_]+$`)

// Score rates a candidate against a query and optional role hint. The score
// is additive: an identity rule, one label rule (first hit wins, by strength),
// value rules, then bonuses that apply only when the base score is positive.
func Score(query, roleHint string, c Candidate, sets *model.RoleSets) (int, string) {
	score := 0
	var reasons []string

	queryLower := strings.ToLower(query)
	labelLower := strings.ToLower(c.Label)

	// Identity match, only for identifier-shaped queries.
	if identRe.MatchString(query) && c.ID != "" && query == c.ID {
		score += 100
		reasons = append(reasons, "id match +100")
	}

	if pts, why := labelScore(queryLower, labelLower); pts > 0 {
		score += pts
		reasons = append(reasons, why)
	}

	// Value match is additive on top of the label score.
	if c.Value != "" {
		valueLower := strings.ToLower(c.Value)
		if valueLower == queryLower {
			score += 30
			reasons = append(reasons, "exact value match +30")
		} else if strings.Contains(valueLower, queryLower) {
			score += 20
			reasons = append(reasons, "value contains query +20")
		}
	}

	// Bonuses only sharpen a real match; they never create one.
	if score > 0 {
		hint := model.NormalizeHint(roleHint)
		if roleHint != "" {
			if hint != "" && hint != model.RoleOther && hint == c.Role {
				score += 20
				reasons = append(reasons, "role hint +20")
			} else if c.RoleDesc != "" &&
				strings.Contains(strings.ToLower(c.RoleDesc), strings.ToLower(roleHint)) {
				score += 15
				reasons = append(reasons, "role description +15")
			}
		}
		if c.Interactive {
			score += 15
			reasons = append(reasons, "interactive +15")
		}
		if c.Enabled {
			score += 10
			reasons = append(reasons, "enabled +10")
		}
		if c.HasGeometry {
			score += 10
			reasons = append(reasons, "geometry +10")
		}
		if c.Label != "" {
			score += 5
			reasons = append(reasons, "has label +5")
		}
		if !sets.IsContainer(c.Role) {
			score += 5
			reasons = append(reasons, "non-container +5")
		}
	}

	return score, strings.Join(reasons, ", ")
}

// labelScore applies the label rule ladder. Exactly one rule fires: the
// strongest that matches. Both inputs are already lowercased.
func labelScore(query, label string) (int, string) {
	if query == "" || label == "" {
		return 0, ""
	}
	switch {
	case label == query:
		return 100, "exact label match +100"
	case strings.TrimSpace(label) == strings.TrimSpace(query):
		return 95, "trimmed label match +95"
	case strings.HasPrefix(label, query):
		return 80, "label starts with query +80"
	case strings.HasPrefix(query, label):
		return 75, "query starts with label +75"
	case containsWord(label, query):
		return 70, "query is a word in label +70"
	case strings.Contains(label, query):
		return 60, "label contains query +60"
	case sharesWord(query, label):
		return 50, "shared word +50"
	}
	if sim := similarity(query, label); sim > 0.8 {
		return 45, "fuzzy match +45"
	} else if sim > 0.6 {
		return 30, "weak fuzzy match +30"
	}
	return 0, ""
}

// containsWord reports whether query appears as a whole word inside label.
func containsWord(label, query string) bool {
	for _, w := range strings.Fields(label) {
		if trimWordPunct(w) == query {
			return true
		}
	}
	return false
}

// sharesWord reports whether a multi-word query and label have any whole
// word in common.
func sharesWord(query, label string) bool {
	queryWords := strings.Fields(query)
	if len(queryWords) < 2 {
		return false
	}
	labelWords := make(map[string]bool)
	for _, w := range strings.Fields(label) {
		labelWords[trimWordPunct(w)] = true
	}
	for _, w := range queryWords {
		if labelWords[trimWordPunct(w)] {
			return true
		}
	}
	return false
}

func trimWordPunct(w string) string {
	return strings.Trim(w, ".,:;!?()[]\"'")
}
