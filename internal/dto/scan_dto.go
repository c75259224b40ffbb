package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogScanRequest struct {
	TicketNo string `json:"ticket_no" validate:"required"`
	Action   string `json:"action" validate:"omitempty,oneof=SCAN_SUCCESS CHECK_IN SCAN_FAILED"`
	Notes    string `json:"notes"`
}

type ScanLogResponse struct {
	Id             uuid.UUID  `json:"id"`
	TicketNo       string     `json:"ticket_no"`
	RegistrationId *uuid.UUID `json:"registration_id"`
	Action         string     `json:"action"`
	ScannedBy      *string    `json:"scanned_by"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ScanLogListResponse struct {
	Data  []*ScanLogResponse `json:"data"`
	Total int64              `json:"total"`
	Limit int                `json:"limit"`
	Page  int                `json:"page"`
}

// CheckinEvent is the payload pushed to the live staff dashboard feed.
type CheckinEvent struct {
	TicketNo  string `json:"ticket_no"`
	Action    string `json:"action"`
	Name      string `json:"name,omitempty"`
	ScannedBy string `json:"scanned_by,omitempty"`
	ScannedAt string `json:"scanned_at"`
}
