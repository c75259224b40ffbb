package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Registration struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TicketNo        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name            string    `gorm:"type:varchar(200);not null"`
	MobileNumber    string    `gorm:"type:varchar(15);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Age             int       `gorm:"not null"`
	Location        string    `gorm:"type:varchar(200);not null"`
	CompanyName     string    `gorm:"type:varchar(200);not null"`
	RegistrationFor string    `gorm:"type:varchar(20);not null"`
	PaymentStatus   string    `gorm:"type:varchar(10);not null;default:'PENDING'"`
	PaymentId       *string   `gorm:"type:varchar(100)"`
	OrderId         *string   `gorm:"type:varchar(100);uniqueIndex"`
	Amount          float64   `gorm:"type:decimal(10,2);not null;default:1.00"`
	PaymentDate     *time.Time
	PaymentInfo     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (Registration) TableName() string {
	return "registrations"
}
