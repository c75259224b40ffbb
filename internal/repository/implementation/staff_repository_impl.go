package implementation

import (
	"context"
	"errors"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/mapper"
	"event-ticketing-be/internal/model"
	"event-ticketing-be/internal/repository/contract"
	"event-ticketing-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StaffMapper
}

func NewStaffRepository(db *gorm.DB) contract.StaffRepository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mapper.NewStaffMapper(),
	}
}

func (r *StaffRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, staff *entity.StaffUser) error {
	m := r.mapper.ToModel(staff)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*staff = *r.mapper.ToEntity(m)
	return nil
}

func (r *StaffRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StaffUser, error) {
	var m model.StaffUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
