// Package models holds the portal's domain records shared by the workflows,
// the collaborator clients and the backend.
package models

import (
	"fmt"
	"strings"
)

// Role is the portal role a person signs up with.
type Role string

const (
	RoleStudent    Role = "student"
	RoleFaculty    Role = "faculty"
	RoleResearcher Role = "researcher"
	RoleStaff      Role = "staff"
	RoleIndustry   Role = "industry"
	RoleOther      Role = "other"
)

// Roles lists every selectable role in display order.
var Roles = []Role{RoleFaculty, RoleResearcher, RoleStudent, RoleStaff, RoleIndustry, RoleOther}

var roleLabels = map[Role]string{
	RoleFaculty:    "Faculty",
	RoleResearcher: "Researcher",
	RoleStudent:    "Student",
	RoleStaff:      "Staff",
	RoleIndustry:   "Industry Partner",
	RoleOther:      "Other",
}

// ParseRole maps user or provider input onto a Role. "professor" is accepted
// as an alias of faculty since the demo accounts use it.
func ParseRole(s string) (Role, error) {
	v := Role(strings.ToLower(strings.TrimSpace(s)))
	if v == "professor" {
		return RoleFaculty, nil
	}
	if _, ok := roleLabels[v]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return v, nil
}

// IsStudent reports whether r routes to the student dashboard.
func (r Role) IsStudent() bool { return r == RoleStudent }

// Label is the human readable name shown in role pickers.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}
