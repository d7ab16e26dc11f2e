package rbac

import "github.com/LiquidSebabas/InnOutPG/internal/domain"

// DefaultPolicies is written to an empty role_permissions table on start.
// Admin manages everything; hr runs the operation except user and policy
// administration; manager reads and records assignment outcomes.
func DefaultPolicies() []PolicyRow {
	rows := []PolicyRow{
		{Role: domain.RoleAdmin, Resource: "*", Action: "*"},
	}

	for _, resource := range []string{"company", "area", "employee", "document", "shift", "assignment", "report"} {
		rows = append(rows, PolicyRow{Role: domain.RoleHR, Resource: resource, Action: "*"})
	}
	rows = append(rows, PolicyRow{Role: domain.RoleHR, Resource: "user", Action: "read"})

	for _, resource := range []string{"company", "area", "employee", "document", "shift", "assignment", "report"} {
		rows = append(rows, PolicyRow{Role: domain.RoleManager, Resource: resource, Action: "read"})
	}
	rows = append(rows, PolicyRow{Role: domain.RoleManager, Resource: "assignment", Action: "update"})

	return rows
}
