package model

import "testing"

func TestMapRole_KnownRoles(t *testing.T) {
	tests := []struct {
		axRole string
		want   Role
	}{
		{"AXButton", RoleButton},
		{"AXStaticText", RoleText},
		{"AXLink", RoleLink},
		{"AXTextField", RoleInput},
		{"AXTextArea", RoleInput},
		{"AXSearchField", RoleInput},
		{"AXCheckBox", RoleCheckbox},
		{"AXSwitch", RoleToggle},
		{"AXSlider", RoleSlider},
		{"AXIncrementor", RoleSlider},
		{"AXWebArea", RoleWeb},
		{"AXDocument", RoleWeb},
		{"AXSplitGroup", RoleGroup},
		{"AXScrollArea", RoleScroll},
		{"AXSheet", RoleWindow},
		{"AXApplication", RoleApp},
	}
	for _, tt := range tests {
		t.Run(tt.axRole, func(t *testing.T) {
			if got := MapRole(tt.axRole); got != tt.want {
				t.Errorf("MapRole(%q) = %q, want %q", tt.axRole, got, tt.want)
			}
		})
	}
}

func TestMapRole_UnknownFallsBackToOther(t *testing.T) {
	for _, raw := range []string{"AXBogusRole", "", "NSAccessibilityWeirdThing"} {
		if got := MapRole(raw); got != RoleOther {
			t.Errorf("MapRole(%q) = %q, want %q", raw, got, RoleOther)
		}
	}
}

func TestNormalizeHint(t *testing.T) {
	tests := []struct {
		hint string
		want Role
	}{
		{"button", RoleButton},
		{"Button", RoleButton},
		{"  link ", RoleLink},
		{"text field", RoleInput},
		{"btn", RoleButton},
		{"input", RoleInput},
		{"AXButton", RoleButton},
		{"radio button", RoleRadio},
		{"", ""},
		{"doohickey", RoleOther},
	}
	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := NormalizeHint(tt.hint); got != tt.want {
				t.Errorf("NormalizeHint(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}
