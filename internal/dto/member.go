package dto

import "time"

// CreateMemberRequest carries the fields needed to register a member.
type CreateMemberRequest struct {
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phoneNumber" validate:"required"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Occupation  string    `json:"occupation"`
}

// UpdateMemberRequest carries the contact fields that may be changed after
// registration. Empty fields are left untouched.
type UpdateMemberRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}
