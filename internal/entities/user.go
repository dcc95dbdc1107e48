package entities

import (
	"errors"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleCandidate):
		return RoleCandidate, nil
	case string(RoleCompany):
		return RoleCompany, nil
	default:
		return "", errors.New("invalid role")
	}
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `gorm:"not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
