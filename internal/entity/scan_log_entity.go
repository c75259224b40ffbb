package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScanAction string

const (
	ScanActionSuccess ScanAction = "SCAN_SUCCESS"
	ScanActionCheckIn ScanAction = "CHECK_IN"
	ScanActionFailed  ScanAction = "SCAN_FAILED"
)

func ValidScanAction(a ScanAction) bool {
	switch a {
	case ScanActionSuccess, ScanActionCheckIn, ScanActionFailed:
		return true
	}
	return false
}

// ScanLog is one row per check-in attempt, success or not. Rows are never
// mutated or deleted through the API.
type ScanLog struct {
	Id             uuid.UUID
	TicketNo       string
	RegistrationId *uuid.UUID
	Action         ScanAction
	ScannedBy      *string
	Notes          string
	CreatedAt      time.Time
}
