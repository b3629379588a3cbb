package model

// ContentKind tags a content-bearing node for rendering.
type ContentKind string

const (
	ContentHeading ContentKind = "heading"
	ContentLink    ContentKind = "link"
	ContentButton  ContentKind = "button"
	ContentInput   ContentKind = "input"
	ContentImage   ContentKind = "image"
	ContentCell    ContentKind = "cell"
	ContentRow     ContentKind = "row"
	ContentControl ContentKind = "control"
	ContentList    ContentKind = "list"
	ContentText    ContentKind = "text"
)

// ClassifyContent maps a role to the content kind used when rendering
// extracted page content.
func ClassifyContent(r Role, sets *RoleSets) ContentKind {
	switch r {
	case RoleHeading:
		return ContentHeading
	case RoleLink:
		return ContentLink
	case RoleButton:
		return ContentButton
	case RoleInput:
		return ContentInput
	case RoleImage:
		return ContentImage
	case RoleCell:
		return ContentCell
	case RoleRow:
		return ContentRow
	case RoleList:
		return ContentList
	case RoleText:
		return ContentText
	}
	if sets.IsInteractive(r) {
		return ContentControl
	}
	return ContentText
}

// ContentItem is one line of extracted content.
type ContentItem struct {
	Kind  ContentKind `yaml:"kind"            json:"kind"`
	Text  string      `yaml:"text"            json:"text"`
	Value string      `yaml:"value,omitempty" json:"value,omitempty"`
	Depth int         `yaml:"depth"           json:"depth"`
}
