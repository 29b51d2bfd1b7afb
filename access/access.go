// Package access derives per-node read/move/delete decisions for a viewer role
package access

import "github.com/brettbedarf/webtree"

// Subject is anything carrying a permission record (folders and files alike)
type Subject interface {
	Permissions() webtree.PermissionSet
}

// Decision is the effective capability set of one role on one node
type Decision struct {
	Read   bool
	Move   bool
	Delete bool
}

// CanRead reports whether role may read s
func CanRead(s Subject, role webtree.RoleName) bool {
	return allowed(s.Permissions().Read, role)
}

// CanMove reports whether role may move s
func CanMove(s Subject, role webtree.RoleName) bool {
	return allowed(s.Permissions().Move, role)
}

// CanDelete reports whether role may delete s
func CanDelete(s Subject, role webtree.RoleName) bool {
	return allowed(s.Permissions().Delete, role)
}

// Evaluate returns all three decisions for role on s
func Evaluate(s Subject, role webtree.RoleName) Decision {
	p := s.Permissions()
	return Decision{
		Read:   allowed(p.Read, role),
		Move:   allowed(p.Move, role),
		Delete: allowed(p.Delete, role),
	}
}

func allowed(granted webtree.RoleSet, role webtree.RoleName) bool {
	return role == webtree.AdminRole || granted.Has(role)
}
