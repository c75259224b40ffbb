package implementation

import (
	"context"
	"errors"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/mapper"
	"event-ticketing-be/internal/model"
	"event-ticketing-be/internal/repository/contract"
	"event-ticketing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RegistrationMapper
}

func NewRegistrationRepository(db *gorm.DB) contract.RegistrationRepository {
	return &RegistrationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRegistrationMapper(),
	}
}

func (r *RegistrationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *entity.Registration) error {
	m := r.mapper.ToModel(registration)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*registration = *r.mapper.ToEntity(m)
	return nil
}

func (r *RegistrationRepositoryImpl) Update(ctx context.Context, registration *entity.Registration) error {
	m := r.mapper.ToModel(registration)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*registration = *r.mapper.ToEntity(m)
	return nil
}

func (r *RegistrationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Registration{}, id).Error
}

func (r *RegistrationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error) {
	var m model.Registration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RegistrationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error) {
	var models []*model.Registration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Registration, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RegistrationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Registration{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

// Dashboard aggregates

type groupCount struct {
	Key   string
	Count int64
}

func (r *RegistrationRepositoryImpl) CountByPaymentStatus(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Select("payment_status as key, count(*) as count").
		Group("payment_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

func (r *RegistrationRepositoryImpl) CountByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Select("registration_for as key, count(*) as count").
		Group("registration_for").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

func (r *RegistrationRepositoryImpl) TotalCollected(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("payment_status = ?", string(entity.PaymentStatusSuccess)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
