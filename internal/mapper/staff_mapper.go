package mapper

import (
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/model"
)

type StaffMapper struct{}

func NewStaffMapper() *StaffMapper {
	return &StaffMapper{}
}

func (m *StaffMapper) ToEntity(u *model.StaffUser) *entity.StaffUser {
	if u == nil {
		return nil
	}
	return &entity.StaffUser{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         entity.StaffRole(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *StaffMapper) ToModel(u *entity.StaffUser) *model.StaffUser {
	if u == nil {
		return nil
	}
	return &model.StaffUser{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
