package service

import (
	"context"
	"testing"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestLogScan(t *testing.T) {
	ctx := context.Background()

	t.Run("known ticket links the registration", func(t *testing.T) {
		factory := newFakeUowFactory()
		reg := seedRegistration(t, factory)

		svc := NewScanService(factory, nil)
		res, err := svc.LogScan(ctx, &dto.LogScanRequest{TicketNo: reg.TicketNo}, "Gate A")

		assert.NoError(t, err)
		assert.Equal(t, "SCAN_SUCCESS", res.Action)
		assert.NotNil(t, res.RegistrationId)
		assert.Equal(t, reg.Id, *res.RegistrationId)
		assert.Equal(t, "Gate A", *res.ScannedBy)
	})

	t.Run("unknown ticket still creates a row", func(t *testing.T) {
		factory := newFakeUowFactory()

		svc := NewScanService(factory, nil)
		res, err := svc.LogScan(ctx, &dto.LogScanRequest{TicketNo: "EVT99999999", Action: "CHECK_IN"}, "")

		assert.NoError(t, err)
		assert.Equal(t, "SCAN_FAILED", res.Action)
		assert.Nil(t, res.RegistrationId)
		assert.Equal(t, "Ticket not found", res.Notes)
		assert.Nil(t, res.ScannedBy)

		count, _ := factory.uow.scanLogs.Count(ctx)
		assert.Equal(t, int64(1), count)
	})

	t.Run("caller notes survive a failed scan", func(t *testing.T) {
		factory := newFakeUowFactory()

		svc := NewScanService(factory, nil)
		res, err := svc.LogScan(ctx, &dto.LogScanRequest{TicketNo: "EVT99999999", Notes: "smudged QR"}, "Gate B")

		assert.NoError(t, err)
		assert.Equal(t, "SCAN_FAILED", res.Action)
		assert.Equal(t, "smudged QR", res.Notes)
	})

	t.Run("explicit action is honored for known tickets", func(t *testing.T) {
		factory := newFakeUowFactory()
		reg := seedRegistration(t, factory)

		svc := NewScanService(factory, nil)
		res, err := svc.LogScan(ctx, &dto.LogScanRequest{TicketNo: reg.TicketNo, Action: "CHECK_IN"}, "Gate A")

		assert.NoError(t, err)
		assert.Equal(t, string(entity.ScanActionCheckIn), res.Action)
	})
}

func TestScanList(t *testing.T) {
	ctx := context.Background()
	factory := newFakeUowFactory()
	reg := seedRegistration(t, factory)

	svc := NewScanService(factory, nil)
	for i := 0; i < 3; i++ {
		_, err := svc.LogScan(ctx, &dto.LogScanRequest{TicketNo: reg.TicketNo}, "Gate A")
		assert.NoError(t, err)
	}

	res, err := svc.List(ctx, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 2, res.Limit)
}
