package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"
	"event-ticketing-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestRegistrationFlow(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.RegistrationRepository())
	assert.NotNil(t, uow.SettingsRepository())
	assert.NotNil(t, uow.ScanLogRepository())
	assert.NotNil(t, uow.StaffRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	registration := &entity.Registration{
		TicketNo:        entity.NewTicketNo("ITEST"),
		Name:            "Integration Test",
		MobileNumber:    "9876543210",
		Email:           "itest@example.com",
		Age:             30,
		Location:        "Madurai",
		RegistrationFor: entity.CategoryPublic,
		PaymentStatus:   entity.PaymentStatusPending,
	}
	if err := uow.RegistrationRepository().Create(ctx, registration); err != nil {
		t.Fatalf("Failed to create registration: %v", err)
	}
	defer func() {
		_ = uow.RegistrationRepository().Delete(ctx, registration.Id)
	}()

	t.Run("find by ticket number", func(t *testing.T) {
		found, err := uow.RegistrationRepository().FindOne(ctx, specification.ByTicketNo{TicketNo: registration.TicketNo})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, registration.Id, found.Id)
		assert.Equal(t, entity.PaymentStatusPending, found.PaymentStatus)
	})

	t.Run("update payment fields", func(t *testing.T) {
		orderId := "ITEST_ORDER_" + registration.TicketNo + "_deadbeef"
		registration.OrderId = &orderId
		registration.Amount = 400
		assert.NoError(t, uow.RegistrationRepository().Update(ctx, registration))

		found, err := uow.RegistrationRepository().FindOne(ctx, specification.ByOrderID{OrderID: orderId})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, registration.TicketNo, found.TicketNo)
	})

	t.Run("scan log round trip", func(t *testing.T) {
		scannedBy := "Integration Gate"
		scanLog := &entity.ScanLog{
			TicketNo:       registration.TicketNo,
			RegistrationId: &registration.Id,
			Action:         entity.ScanActionSuccess,
			ScannedBy:      &scannedBy,
		}
		assert.NoError(t, uow.ScanLogRepository().Create(ctx, scanLog))

		counts, err := uow.ScanLogRepository().CountByAction(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, counts[string(entity.ScanActionSuccess)], int64(1))
	})

	t.Run("settings singleton", func(t *testing.T) {
		settings, err := uow.SettingsRepository().Get(ctx, "Integration Event")
		assert.NoError(t, err)
		assert.NotNil(t, settings)

		again, err := uow.SettingsRepository().Get(ctx, "Other Name")
		assert.NoError(t, err)
		assert.Equal(t, settings.Id, again.Id)
	})

	t.Run("dashboard aggregates", func(t *testing.T) {
		total, err := uow.RegistrationRepository().Count(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(1))

		byStatus, err := uow.RegistrationRepository().CountByPaymentStatus(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, byStatus[string(entity.PaymentStatusPending)], int64(1))
	})
}
