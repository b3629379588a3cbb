package resolve

import (
	"sort"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/tree"
)

// Match is one ranked resolver result against a snapshot tree.
type Match struct {
	Node   *model.Node `yaml:"node"   json:"node"`
	Score  int         `yaml:"score"  json:"score"`
	Reason string      `yaml:"reason" json:"reason"`
}

// Resolver scores elements against queries. The zero value is not usable;
// call New.
type Resolver struct {
	sets *model.RoleSets
}

// New returns a Resolver using the given role sets (nil selects defaults).
func New(sets *model.RoleSets) *Resolver {
	if sets == nil {
		sets = model.DefaultRoleSets()
	}
	return &Resolver{sets: sets}
}

// Resolve scores every node in the snapshot tree against the query and
// optional role hint, returning matches above the noise floor, best first,
// truncated to limit. An empty result is a valid answer.
func (r *Resolver) Resolve(query, roleHint string, root *model.Node, limit int) []Match {
	if root == nil || query == "" {
		return nil
	}
	var matches []Match
	r.resolveNode(root, query, roleHint, &matches)

	// Stable sort keeps traversal order for equal scores, so tie-breaking
	// is deterministic.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (r *Resolver) resolveNode(n *model.Node, query, roleHint string, out *[]Match) {
	score, reason := Score(query, roleHint, Candidate{
		ID:          n.ID,
		Role:        n.Role,
		Label:       n.Label,
		Value:       n.Value,
		RoleDesc:    n.RoleDesc,
		Interactive: n.Interactive,
		Enabled:     n.Enabled,
		HasGeometry: n.HasGeometry(),
	}, r.sets)
	if score >= NoiseFloor {
		*out = append(*out, Match{Node: n, Score: score, Reason: reason})
	}
	for i := range n.Children {
		r.resolveNode(&n.Children[i], query, roleHint, out)
	}
}

// LiveMatch is the best-scoring live element found during action-time search.
type LiveMatch struct {
	Element ax.Element
	Role    model.Role
	Score   int
	Reason  string
}

// Live walks the live subtree under root and accumulates the single
// best-scoring element without materializing a snapshot. Returns ok=false
// when nothing reaches the noise floor.
func (r *Resolver) Live(root ax.Element, query, roleHint string, opts tree.WalkOptions) (LiveMatch, bool) {
	if opts.Sets == nil {
		opts.Sets = r.sets
	}
	var best LiveMatch
	tree.WalkLive(root, opts, func(el ax.Element, role model.Role, structural, semantic int) bool {
		_, hasGeom := ax.Center(el)
		score, reason := Score(query, roleHint, Candidate{
			ID:          model.NodeID(el.Ident(), role, tree.Label(el)),
			Role:        role,
			Label:       tree.Label(el),
			Value:       el.Value(),
			RoleDesc:    el.RoleDescription(),
			Interactive: tree.IsInteractive(el, role, r.sets),
			Enabled:     el.Enabled(),
			HasGeometry: hasGeom,
		}, r.sets)
		if score > best.Score {
			best = LiveMatch{Element: el, Role: role, Score: score, Reason: reason}
		}
		return true
	})
	if best.Score < NoiseFloor {
		return LiveMatch{}, false
	}
	return best, true
}
