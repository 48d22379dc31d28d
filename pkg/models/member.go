package models

import "time"

// MemberStatus tracks a member's standing on the roster.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusVisitor  MemberStatus = "visitor"
)

// Member is one person on the congregation roster.
type Member struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name" validate:"required"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email,omitempty"      validate:"omitempty,email"`
	Phone     string       `json:"phone,omitempty"`
	Status    MemberStatus `json:"status"     validate:"required,oneof=active inactive visitor"`
	JoinedAt  time.Time    `json:"joined_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Assignee is a leader or volunteer who can own follow-up tasks.
type Assignee struct {
	ID    string `json:"id"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}
