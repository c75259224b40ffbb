package implementation

import (
	"context"
	"errors"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/mapper"
	"event-ticketing-be/internal/model"
	"event-ticketing-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

// Get implements get-or-create against the fixed singleton identity, so a
// settings row always exists after the first read.
func (r *SettingsRepositoryImpl) Get(ctx context.Context, defaultName string) (*entity.EventSettings, error) {
	var m model.EventSettings
	err := r.db.WithContext(ctx).Where("id = ?", model.SettingsId).First(&m).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		m = model.EventSettings{Id: model.SettingsId, EventName: defaultName}
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) Save(ctx context.Context, settings *entity.EventSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}
