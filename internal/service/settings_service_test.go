package service

import (
	"context"
	"testing"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func newSettingsServiceForTest(factory *fakeUowFactory) ISettingsService {
	return NewSettingsService(factory, memory.NewSettingsCache(), "My Event", "http://localhost:3000")
}

func TestSettingsGetCreatesSingleton(t *testing.T) {
	ctx := context.Background()
	factory := newFakeUowFactory()
	svc := newSettingsServiceForTest(factory)

	res, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), res.Id)
	assert.Equal(t, "My Event", res.EventName)
	assert.Nil(t, res.LogoURL)
}

func TestSettingsUpdateInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	factory := newFakeUowFactory()
	svc := newSettingsServiceForTest(factory)

	// Prime the cache
	_, err := svc.Get(ctx)
	assert.NoError(t, err)

	name := "Annual Meet 2026"
	res, err := svc.Update(ctx, &dto.UpdateSettingsRequest{EventName: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Annual Meet 2026", res.EventName)
	assert.Equal(t, 1, factory.uow.settings.saves)

	// A fresh read must see the new name, not the cached one
	got, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Annual Meet 2026", got.EventName)
}

func TestSettingsLogoURL(t *testing.T) {
	ctx := context.Background()
	factory := newFakeUowFactory()
	svc := newSettingsServiceForTest(factory)

	res, err := svc.SetLogo(ctx, "logo_abc123.png")
	assert.NoError(t, err)
	assert.NotNil(t, res.LogoURL)
	assert.Equal(t, "http://localhost:3000/uploads/logo_abc123.png", *res.LogoURL)
}

func TestSettingsEventNameFallback(t *testing.T) {
	ctx := context.Background()
	factory := newFakeUowFactory()
	svc := newSettingsServiceForTest(factory)

	assert.Equal(t, "My Event", svc.EventName(ctx))
}
