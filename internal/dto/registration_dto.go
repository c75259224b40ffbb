package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	Name            string `json:"name" validate:"required"`
	MobileNumber    string `json:"mobile_number" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Age             int    `json:"age" validate:"required,gt=0"`
	Location        string `json:"location" validate:"required"`
	CompanyName     string `json:"company_name"`
	RegistrationFor string `json:"registration_for" validate:"required,oneof=BNI_THALAIVAS BNI_CHETTINAD BNI_MADURAI PUBLIC STUDENTS"`
}

// UpdateRegistrationRequest carries only client-writable fields. Payment and
// ticket fields are server-owned and silently ignored if sent.
type UpdateRegistrationRequest struct {
	Name            *string `json:"name"`
	MobileNumber    *string `json:"mobile_number"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Age             *int    `json:"age" validate:"omitempty,gt=0"`
	Location        *string `json:"location"`
	CompanyName     *string `json:"company_name"`
	RegistrationFor *string `json:"registration_for" validate:"omitempty,oneof=BNI_THALAIVAS BNI_CHETTINAD BNI_MADURAI PUBLIC STUDENTS"`
}

type ListRegistrationsRequest struct {
	PaymentStatus string `query:"payment_status"`
	Category      string `query:"registration_for"`
	Limit         int    `query:"limit"`
	Offset        int    `query:"offset"`
}

type RegistrationResponse struct {
	Id              uuid.UUID  `json:"id"`
	TicketNo        string     `json:"ticket_no"`
	Name            string     `json:"name"`
	MobileNumber    string     `json:"mobile_number"`
	Email           string     `json:"email"`
	Age             int        `json:"age"`
	Location        string     `json:"location"`
	CompanyName     string     `json:"company_name"`
	RegistrationFor string     `json:"registration_for"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentId       *string    `json:"payment_id"`
	OrderId         *string    `json:"order_id"`
	Amount          float64    `json:"amount"`
	PaymentDate     *time.Time `json:"payment_date"`
	PaymentInfo     *string    `json:"payment_info"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RegistrationListResponse struct {
	Data  []*RegistrationResponse `json:"data"`
	Total int64                   `json:"total"`
	Limit int                     `json:"limit"`
	Page  int                     `json:"page"`
}
