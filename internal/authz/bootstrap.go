package authz

import "fmt"

// RoleSeed builtin role definition
type RoleSeed struct {
	Role      string
	Inherits  []string
	Policies  []Policy
	Immutable bool
}

// BuiltinRoleSeeds builtin role matrix for the back office
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "readonly_auditor",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
			Immutable: true,
		},
		{
			Role:     "operations",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/products", Action: "*"},
				{Object: "/admin/products/:id", Action: "*"},
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/colors", Action: "*"},
				{Object: "/admin/colors/:id", Action: "*"},
				{Object: "/admin/sizes", Action: "*"},
				{Object: "/admin/sizes/:id", Action: "*"},
				{Object: "/admin/scents", Action: "*"},
				{Object: "/admin/scents/:id", Action: "*"},
				{Object: "/admin/posts", Action: "*"},
				{Object: "/admin/posts/:id", Action: "*"},
				{Object: "/admin/settings", Action: "*"},
				{Object: "/admin/upload", Action: "POST"},
			},
			Immutable: true,
		},
		{
			Role:     "support",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/orders", Action: "GET"},
				{Object: "/admin/orders/:id", Action: "GET"},
				{Object: "/admin/orders/:id/status", Action: "PATCH"},
				{Object: "/admin/users", Action: "GET"},
				{Object: "/admin/users/:id", Action: "GET"},
				{Object: "/admin/users/:id/status", Action: "PATCH"},
			},
			Immutable: true,
		},
	}
}

// BootstrapBuiltinRoles seeds the builtin roles and their default policies
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	changed := false
	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor)
			if err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole)
			if err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			added, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action)
			if err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
			if added {
				changed = true
			}
		}
	}

	if changed {
		return s.afterWrite()
	}
	return nil
}
