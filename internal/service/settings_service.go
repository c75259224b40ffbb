package service

import (
	"context"
	"fmt"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/memory"
	"event-ticketing-be/internal/repository/unitofwork"
)

type ISettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	SetLogo(ctx context.Context, logoPath string) (*dto.SettingsResponse, error)

	// EventName is used by workers that only need the display name.
	EventName(ctx context.Context) string
}

type settingsService struct {
	uowFactory  unitofwork.RepositoryFactory
	cache       *memory.SettingsCache
	defaultName string
	baseURL     string
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, cache *memory.SettingsCache, defaultName, baseURL string) ISettingsService {
	return &settingsService{
		uowFactory:  uowFactory,
		cache:       cache,
		defaultName: defaultName,
		baseURL:     baseURL,
	}
}

func (s *settingsService) load(ctx context.Context) (*entity.EventSettings, error) {
	if cached, found := s.cache.Get(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SettingsRepository().Get(ctx, s.defaultName)
	if err != nil {
		return nil, err
	}
	s.cache.Save(settings)
	return settings, nil
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().Get(ctx, s.defaultName)
	if err != nil {
		return nil, err
	}

	if req.EventName != nil {
		settings.EventName = *req.EventName
	}

	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	return s.toResponse(settings), nil
}

func (s *settingsService) SetLogo(ctx context.Context, logoPath string) (*dto.SettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().Get(ctx, s.defaultName)
	if err != nil {
		return nil, err
	}

	settings.LogoPath = &logoPath

	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	return s.toResponse(settings), nil
}

func (s *settingsService) EventName(ctx context.Context) string {
	settings, err := s.load(ctx)
	if err != nil || settings == nil {
		return s.defaultName
	}
	return settings.EventName
}

func (s *settingsService) toResponse(settings *entity.EventSettings) *dto.SettingsResponse {
	var logoURL *string
	if settings.LogoPath != nil && *settings.LogoPath != "" {
		url := fmt.Sprintf("%s/uploads/%s", s.baseURL, *settings.LogoPath)
		logoURL = &url
	}
	return &dto.SettingsResponse{
		Id:        settings.Id,
		EventName: settings.EventName,
		LogoURL:   logoURL,
		UpdatedAt: settings.UpdatedAt,
	}
}
