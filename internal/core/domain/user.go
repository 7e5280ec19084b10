package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMahasiswa Role = "mahasiswa"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleMahasiswa || r == RoleAdmin
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ResetToken   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor is the authenticated caller as resolved by the transport layer.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

type UserUpdate struct {
	Name  *string
	Email *string
}

type UserWithRegistrations struct {
	User          User
	Registrations []RegistrationDetail
}
