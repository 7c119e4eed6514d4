package models

import "fmt"

// Role is the closed set of account kinds. It is fixed at signup.
type Role string

const (
	RoleGuide   Role = "guide"
	RoleTourist Role = "tourist"
)

func (r Role) Valid() bool {
	return r == RoleGuide || r == RoleTourist
}

// ParseRole rejects anything but the two known roles.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
