package mapper

import (
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/model"

	"gorm.io/datatypes"
)

type RegistrationMapper struct{}

func NewRegistrationMapper() *RegistrationMapper {
	return &RegistrationMapper{}
}

func (m *RegistrationMapper) ToEntity(r *model.Registration) *entity.Registration {
	if r == nil {
		return nil
	}
	var info *string
	if len(r.PaymentInfo) > 0 {
		s := string(r.PaymentInfo)
		info = &s
	}
	return &entity.Registration{
		Id:              r.Id,
		TicketNo:        r.TicketNo,
		Name:            r.Name,
		MobileNumber:    r.MobileNumber,
		Email:           r.Email,
		Age:             r.Age,
		Location:        r.Location,
		CompanyName:     r.CompanyName,
		RegistrationFor: entity.RegistrationCategory(r.RegistrationFor),
		PaymentStatus:   entity.PaymentStatus(r.PaymentStatus),
		PaymentId:       r.PaymentId,
		OrderId:         r.OrderId,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		PaymentInfo:     info,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *RegistrationMapper) ToModel(r *entity.Registration) *model.Registration {
	if r == nil {
		return nil
	}
	var info datatypes.JSON
	if r.PaymentInfo != nil {
		info = datatypes.JSON(*r.PaymentInfo)
	}
	return &model.Registration{
		Id:              r.Id,
		TicketNo:        r.TicketNo,
		Name:            r.Name,
		MobileNumber:    r.MobileNumber,
		Email:           r.Email,
		Age:             r.Age,
		Location:        r.Location,
		CompanyName:     r.CompanyName,
		RegistrationFor: string(r.RegistrationFor),
		PaymentStatus:   string(r.PaymentStatus),
		PaymentId:       r.PaymentId,
		OrderId:         r.OrderId,
		Amount:          r.Amount,
		PaymentDate:     r.PaymentDate,
		PaymentInfo:     info,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
