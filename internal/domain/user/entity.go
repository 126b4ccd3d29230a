package user

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access
	RoleHR       Role = "HR"       // Personnel, attendance and leave management
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// User is stored as-is in the users slot. Password is kept in clear text.
type User struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	Role             Role    `json:"role"`
	Department       string  `json:"department"`
	JoinedDate       string  `json:"joinedDate"`
	IsApproved       bool    `json:"isApproved"`
	CurrentProjectID *string `json:"currentProjectId,omitempty"`
}

// MatchesUsername compares usernames the way login does: case-insensitive.
func (u *User) MatchesUsername(username string) bool {
	return strings.EqualFold(u.Username, username)
}
