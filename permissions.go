package webtree

import "sort"

// RoleSet is the set of roles explicitly granted a capability
type RoleSet map[RoleName]struct{}

// NewRoleSet returns a RoleSet containing roles. Never returns nil.
func NewRoleSet(roles ...RoleName) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether role is a member; safe on a nil set
func (s RoleSet) Has(role RoleName) bool {
	_, ok := s[role]
	return ok
}

// Roles returns the members sorted by name
func (s RoleSet) Roles() []RoleName {
	roles := make([]RoleName, 0, len(s))
	for r := range s {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Clone returns an independent copy
func (s RoleSet) Clone() RoleSet {
	c := make(RoleSet, len(s))
	for r := range s {
		c[r] = struct{}{}
	}
	return c
}

// PermissionSet lists the roles granted each capability. The zero value grants
// nothing, leaving only [AdminRole] with access.
type PermissionSet struct {
	Read   RoleSet
	Move   RoleSet
	Delete RoleSet
}

// NewPermissionSet returns a PermissionSet with empty, non-nil sets
func NewPermissionSet() PermissionSet {
	return PermissionSet{
		Read:   NewRoleSet(),
		Move:   NewRoleSet(),
		Delete: NewRoleSet(),
	}
}

// Clone returns a deep copy with non-nil sets
func (p PermissionSet) Clone() PermissionSet {
	return PermissionSet{
		Read:   p.Read.Clone(),
		Move:   p.Move.Clone(),
		Delete: p.Delete.Clone(),
	}
}
