package dto

import "time"

type UpdateSettingsRequest struct {
	EventName *string `json:"event_name" validate:"omitempty,min=1,max=200"`
}

type SettingsResponse struct {
	Id        uint      `json:"id"`
	EventName string    `json:"event_name"`
	LogoURL   *string   `json:"logo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
