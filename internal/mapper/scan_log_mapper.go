package mapper

import (
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/model"
)

type ScanLogMapper struct{}

func NewScanLogMapper() *ScanLogMapper {
	return &ScanLogMapper{}
}

func (m *ScanLogMapper) ToEntity(s *model.ScanLog) *entity.ScanLog {
	if s == nil {
		return nil
	}
	return &entity.ScanLog{
		Id:             s.Id,
		TicketNo:       s.TicketNo,
		RegistrationId: s.RegistrationId,
		Action:         entity.ScanAction(s.Action),
		ScannedBy:      s.ScannedBy,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *ScanLogMapper) ToModel(s *entity.ScanLog) *model.ScanLog {
	if s == nil {
		return nil
	}
	return &model.ScanLog{
		Id:             s.Id,
		TicketNo:       s.TicketNo,
		RegistrationId: s.RegistrationId,
		Action:         string(s.Action),
		ScannedBy:      s.ScannedBy,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}
