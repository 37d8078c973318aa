package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRole = errors.New("model: invalid user role")

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	default:
		return false
	}
}

// User identifies a team member. The current user stamps authorship fields on
// created entities; role checks beyond IsAdmin stay in the surrounding forms.
type User struct {
	ID    string
	Name  string
	Role  Role
	Email string
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("model: user id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("model: user name is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}
	return nil
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
