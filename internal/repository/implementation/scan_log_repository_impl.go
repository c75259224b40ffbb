package implementation

import (
	"context"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/mapper"
	"event-ticketing-be/internal/model"
	"event-ticketing-be/internal/repository/contract"
	"event-ticketing-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScanLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScanLogMapper
}

func NewScanLogRepository(db *gorm.DB) contract.ScanLogRepository {
	return &ScanLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewScanLogMapper(),
	}
}

func (r *ScanLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScanLogRepositoryImpl) Create(ctx context.Context, log *entity.ScanLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScanLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error) {
	var models []*model.ScanLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ScanLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ScanLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ScanLog{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *ScanLogRepositoryImpl) CountByAction(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&model.ScanLog{}).
		Select("action as key, count(*) as count").
		Group("action").
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
