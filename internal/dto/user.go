package dto

// CreateUserRequest carries the fields for a new login identity.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER TELLER MEMBER"`
}
