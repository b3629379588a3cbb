package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRoleSets(t *testing.T) {
	sets := DefaultRoleSets()

	if !sets.IsTunnel(RoleGroup) || !sets.IsTunnel(RoleScroll) || !sets.IsTunnel(RoleOther) {
		t.Error("expected group, scroll, other to be tunnel roles")
	}
	if sets.IsTunnel(RoleButton) {
		t.Error("button must never be a tunnel role")
	}
	if !sets.IsInteractive(RoleButton) || !sets.IsInteractive(RoleLink) || !sets.IsInteractive(RoleInput) {
		t.Error("expected button, link, input to be interactive")
	}
	if sets.IsInteractive(RoleText) {
		t.Error("static text is not interactive")
	}
	if !sets.IsContainer(RoleWindow) || !sets.IsContainer(RoleWeb) {
		t.Error("expected window and web to be containers")
	}
	if sets.IsContainer(RoleButton) {
		t.Error("button is not a container")
	}
}

func writeRoleSetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRoleSets_PartialOverride(t *testing.T) {
	path := writeRoleSetFile(t, "tunnel:\n  - group\n")

	sets, err := LoadRoleSets(path)
	if err != nil {
		t.Fatal(err)
	}
	if !sets.IsTunnel(RoleGroup) {
		t.Error("expected group to stay tunnel")
	}
	if sets.IsTunnel(RoleScroll) {
		t.Error("override should replace the tunnel set, not merge")
	}
	// Untouched sections keep defaults.
	if !sets.IsInteractive(RoleButton) {
		t.Error("interactive set should keep defaults")
	}
}

func TestLoadRoleSets_RawToolkitRoles(t *testing.T) {
	path := writeRoleSetFile(t, "interactive:\n  - AXButton\n  - lnk\n")

	sets, err := LoadRoleSets(path)
	if err != nil {
		t.Fatal(err)
	}
	if !sets.IsInteractive(RoleButton) {
		t.Error("AXButton should map to btn")
	}
	if !sets.IsInteractive(RoleLink) {
		t.Error("lnk should be accepted as a compact code")
	}
	if sets.IsInteractive(RoleInput) {
		t.Error("input should be gone after override")
	}
}

func TestLoadRoleSets_MissingFile(t *testing.T) {
	if _, err := LoadRoleSets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRoleSets_BadYAML(t *testing.T) {
	path := writeRoleSetFile(t, "tunnel: [unclosed\n")
	if _, err := LoadRoleSets(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestClassifyContent(t *testing.T) {
	sets := DefaultRoleSets()
	tests := []struct {
		role Role
		want ContentKind
	}{
		{RoleHeading, ContentHeading},
		{RoleLink, ContentLink},
		{RoleButton, ContentButton},
		{RoleInput, ContentInput},
		{RoleText, ContentText},
		{RoleCheckbox, ContentControl},
		{RoleGroup, ContentText},
	}
	for _, tt := range tests {
		if got := ClassifyContent(tt.role, sets); got != tt.want {
			t.Errorf("ClassifyContent(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
