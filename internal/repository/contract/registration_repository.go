package contract

import (
	"context"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	Update(ctx context.Context, registration *entity.Registration) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Dashboard aggregates
	CountByPaymentStatus(ctx context.Context) (map[string]int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	TotalCollected(ctx context.Context) (float64, error)
}
