package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RoleSets classifies roles for traversal and scoring. The correct sets are
// toolkit-dependent and tuned empirically, so they are configuration rather
// than constants: callers can load overrides from a YAML file.
type RoleSets struct {
	tunnel      map[Role]bool
	interactive map[Role]bool
	container   map[Role]bool
}

// IsTunnel reports whether the role is a layout wrapper that the semantic
// walker may pass through at zero cost when the element carries no text.
func (s *RoleSets) IsTunnel(r Role) bool { return s.tunnel[r] }

// IsInteractive reports whether the role is expected to accept user input.
func (s *RoleSets) IsInteractive(r Role) bool { return s.interactive[r] }

// IsContainer reports whether the role is a structural container rather than
// a content element.
func (s *RoleSets) IsContainer(r Role) bool { return s.container[r] }

// DefaultRoleSets returns the built-in classification, tuned for macOS
// accessibility trees including web content.
func DefaultRoleSets() *RoleSets {
	return newRoleSets(
		[]Role{RoleGroup, RoleScroll, RoleOther},
		[]Role{RoleButton, RoleLink, RoleInput, RoleCheckbox, RoleToggle,
			RoleRadio, RoleSlider, RoleMenuItem, RoleTab},
		[]Role{RoleGroup, RoleScroll, RoleList, RoleRow, RoleCell, RoleToolbar,
			RoleMenu, RoleTab, RoleWeb, RoleWindow, RoleApp, RoleOther},
	)
}

func newRoleSets(tunnel, interactive, container []Role) *RoleSets {
	return &RoleSets{
		tunnel:      toSet(tunnel),
		interactive: toSet(interactive),
		container:   toSet(container),
	}
}

func toSet(roles []Role) map[Role]bool {
	m := make(map[Role]bool, len(roles))
	for _, r := range roles {
		m[r] = true
	}
	return m
}

// roleSetFile is the on-disk YAML shape for role-set overrides. Omitted
// sections fall back to the defaults.
type roleSetFile struct {
	Tunnel      []string `yaml:"tunnel"`
	Interactive []string `yaml:"interactive"`
	Container   []string `yaml:"container"`
}

// LoadRoleSets reads role-set overrides from a YAML file. Each listed role
// may be a compact code ("btn") or a raw toolkit role ("AXButton").
func LoadRoleSets(path string) (*RoleSets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role sets: %w", err)
	}
	var f roleSetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse role sets %s: %w", path, err)
	}

	sets := DefaultRoleSets()
	if len(f.Tunnel) > 0 {
		sets.tunnel = toSet(parseRoles(f.Tunnel))
	}
	if len(f.Interactive) > 0 {
		sets.interactive = toSet(parseRoles(f.Interactive))
	}
	if len(f.Container) > 0 {
		sets.container = toSet(parseRoles(f.Container))
	}
	return sets, nil
}

func parseRoles(names []string) []Role {
	out := make([]Role, 0, len(names))
	for _, name := range names {
		if r, ok := RoleMap[name]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, Role(name))
	}
	return out
}
