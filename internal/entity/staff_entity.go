package entity

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleStaff     StaffRole = "staff"
	StaffRoleSuperuser StaffRole = "superuser"
)

type StaffUser struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         StaffRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
