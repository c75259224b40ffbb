package mapper

import (
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.EventSettings) *entity.EventSettings {
	if s == nil {
		return nil
	}
	return &entity.EventSettings{
		Id:        s.Id,
		EventName: s.EventName,
		LogoPath:  s.LogoPath,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.EventSettings) *model.EventSettings {
	if s == nil {
		return nil
	}
	return &model.EventSettings{
		Id:        model.SettingsId,
		EventName: s.EventName,
		LogoPath:  s.LogoPath,
		UpdatedAt: s.UpdatedAt,
	}
}
