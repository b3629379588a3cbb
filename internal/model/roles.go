package model

import "strings"

// Role is a closed, compact role code. Raw toolkit roles are mapped through
// RoleMap; anything unrecognized becomes RoleOther so matching stays
// exhaustive.
type Role string

const (
	RoleButton   Role = "btn"
	RoleText     Role = "txt"
	RoleLink     Role = "lnk"
	RoleImage    Role = "img"
	RoleInput    Role = "input"
	RoleCheckbox Role = "chk"
	RoleToggle   Role = "toggle"
	RoleRadio    Role = "radio"
	RoleSlider   Role = "slider"
	RoleHeading  Role = "heading"
	RoleMenu     Role = "menu"
	RoleMenuItem Role = "menuitem"
	RoleTab      Role = "tab"
	RoleList     Role = "list"
	RoleRow      Role = "row"
	RoleCell     Role = "cell"
	RoleGroup    Role = "group"
	RoleScroll   Role = "scroll"
	RoleToolbar  Role = "toolbar"
	RoleWeb      Role = "web"
	RoleWindow   Role = "window"
	RoleApp      Role = "app"
	RoleOther    Role = "other"
)

// RoleMap maps raw macOS AXRole values to compact role codes.
var RoleMap = map[string]Role{
	"AXButton":            RoleButton,
	"AXStaticText":        RoleText,
	"AXLink":              RoleLink,
	"AXImage":             RoleImage,
	"AXTextField":         RoleInput,
	"AXTextArea":          RoleInput,
	"AXSearchField":       RoleInput,
	"AXCheckBox":          RoleCheckbox,
	"AXSwitch":            RoleToggle,
	"AXRadioButton":       RoleRadio,
	"AXSlider":            RoleSlider,
	"AXIncrementor":       RoleSlider,
	"AXHeading":           RoleHeading,
	"AXMenu":              RoleMenu,
	"AXMenuBar":           RoleMenu,
	"AXMenuItem":          RoleMenuItem,
	"AXMenuBarItem":       RoleMenuItem,
	"AXTabGroup":          RoleTab,
	"AXList":              RoleList,
	"AXTable":             RoleList,
	"AXOutline":           RoleList,
	"AXRow":               RoleRow,
	"AXCell":              RoleCell,
	"AXGroup":             RoleGroup,
	"AXSplitGroup":        RoleGroup,
	"AXLayoutArea":        RoleGroup,
	"AXGenericElement":    RoleGroup,
	"AXScrollArea":        RoleScroll,
	"AXToolbar":           RoleToolbar,
	"AXWebArea":           RoleWeb,
	"AXDocument":          RoleWeb,
	"AXWindow":            RoleWindow,
	"AXSheet":             RoleWindow,
	"AXApplication":       RoleApp,
	"AXProgressIndicator": RoleOther,
}

// MapRole converts a raw accessibility role to a compact code.
func MapRole(axRole string) Role {
	if short, ok := RoleMap[axRole]; ok {
		return short
	}
	return RoleOther
}

// hintAliases maps natural-language role hints to compact codes, beyond the
// identity mapping on the codes themselves.
var hintAliases = map[string]Role{
	"button":       RoleButton,
	"push button":  RoleButton,
	"text":         RoleText,
	"static text":  RoleText,
	"label":        RoleText,
	"link":         RoleLink,
	"image":        RoleImage,
	"field":        RoleInput,
	"text field":   RoleInput,
	"textfield":    RoleInput,
	"text area":    RoleInput,
	"textbox":      RoleInput,
	"checkbox":     RoleCheckbox,
	"check box":    RoleCheckbox,
	"switch":       RoleToggle,
	"radio":        RoleRadio,
	"radio button": RoleRadio,
	"menu item":    RoleMenuItem,
	"table":        RoleList,
	"window":       RoleWindow,
}

// NormalizeHint converts a caller-supplied role hint ("button", "AXButton",
// "btn") to a compact code. Unknown hints map to RoleOther rather than
// erroring; the resolver treats them as a non-matching hint.
func NormalizeHint(hint string) Role {
	h := strings.ToLower(strings.TrimSpace(hint))
	if h == "" {
		return ""
	}
	if r, ok := hintAliases[h]; ok {
		return r
	}
	if r, ok := RoleMap[hint]; ok {
		return r
	}
	// Already a compact code?
	switch Role(h) {
	case RoleButton, RoleText, RoleLink, RoleImage, RoleInput, RoleCheckbox,
		RoleToggle, RoleRadio, RoleSlider, RoleHeading, RoleMenu, RoleMenuItem,
		RoleTab, RoleList, RoleRow, RoleCell, RoleGroup, RoleScroll,
		RoleToolbar, RoleWeb, RoleWindow, RoleApp, RoleOther:
		return Role(h)
	}
	return RoleOther
}
