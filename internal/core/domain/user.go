package domain

import "time"

// Role is a login identity's role. Users are independent of members: nothing
// links a login to a cooperative member record.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleTeller  Role = "TELLER"
	RoleMember  Role = "MEMBER"
)

// User is a login identity for the association's staff and members.
type User struct {
	UserID             string     `json:"userID"` // USRnnnn
	Username           string     `json:"username"`
	PasswordHash       string     `json:"passwordHash"`
	Role               Role       `json:"role"`
	Active             bool       `json:"active"`
	CreatedDate        time.Time  `json:"createdDate"`
	LastLoginDate      *time.Time `json:"lastLoginDate,omitempty"`
	MustChangePassword bool       `json:"mustChangePassword,omitempty"`
}

// NewUser creates an active user with the given pre-hashed password.
func NewUser(userID, username, passwordHash string, role Role, now time.Time) *User {
	return &User{
		UserID:       userID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedDate:  now,
	}
}
