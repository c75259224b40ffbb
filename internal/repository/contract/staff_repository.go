package contract

import (
	"context"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/specification"
)

type StaffRepository interface {
	Create(ctx context.Context, user *entity.StaffUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StaffUser, error)
}
