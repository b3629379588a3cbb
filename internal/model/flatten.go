package model

// FlatNode is a node with a path breadcrumb instead of children.
type FlatNode struct {
	ID          string `yaml:"id"                    json:"id"`
	Role        Role   `yaml:"role"                  json:"role"`
	Label       string `yaml:"label,omitempty"       json:"label,omitempty"`
	Value       string `yaml:"value,omitempty"       json:"value,omitempty"`
	Interactive bool   `yaml:"interactive,omitempty" json:"interactive,omitempty"`
	Focused     bool   `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Path        string `yaml:"path,omitempty"        json:"path,omitempty"`
}

// Flatten converts a snapshot tree into a flat list. Each node gets a path
// string showing its location in the tree using role codes joined with " > ".
func Flatten(root *Node) []FlatNode {
	var out []FlatNode
	if root == nil {
		return out
	}
	flattenRecursive(root, "", &out)
	return out
}

func flattenRecursive(n *Node, parentPath string, out *[]FlatNode) {
	currentPath := string(n.Role)
	if parentPath != "" {
		currentPath = parentPath + " > " + string(n.Role)
	}

	*out = append(*out, FlatNode{
		ID:          n.ID,
		Role:        n.Role,
		Label:       n.Label,
		Value:       n.Value,
		Interactive: n.Interactive,
		Focused:     n.Focused,
		Path:        currentPath,
	})

	for i := range n.Children {
		flattenRecursive(&n.Children[i], currentPath, out)
	}
}
