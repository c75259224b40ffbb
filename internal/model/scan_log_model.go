package model

import (
	"time"

	"github.com/google/uuid"
)

type ScanLog struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TicketNo       string     `gorm:"type:varchar(20);not null;index"`
	RegistrationId *uuid.UUID `gorm:"type:uuid;index"`
	Action         string     `gorm:"type:varchar(20);not null"`
	ScannedBy      *string    `gorm:"type:varchar(200)"`
	Notes          string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
}

func (ScanLog) TableName() string {
	return "scan_logs"
}
