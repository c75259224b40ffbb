package unitofwork

import (
	"context"

	"event-ticketing-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RegistrationRepository() contract.RegistrationRepository
	SettingsRepository() contract.SettingsRepository
	ScanLogRepository() contract.ScanLogRepository
	StaffRepository() contract.StaffRepository
}
