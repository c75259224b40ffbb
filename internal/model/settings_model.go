package model

import "time"

// EventSettings has exactly one row; SettingsId pins every save to it.
const SettingsId uint = 1

type EventSettings struct {
	Id        uint      `gorm:"primaryKey"`
	EventName string    `gorm:"type:varchar(200);not null"`
	LogoPath  *string   `gorm:"type:varchar(255)"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EventSettings) TableName() string {
	return "event_settings"
}
