package contract

import (
	"context"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/specification"
)

// ScanLogRepository is append-only: scan logs are never updated or deleted
// through the API.
type ScanLogRepository interface {
	Create(ctx context.Context, log *entity.ScanLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByAction(ctx context.Context) (map[string]int64, error)
}
