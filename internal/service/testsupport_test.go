package service

import (
	"context"
	"sort"
	"time"

	"event-ticketing-be/internal/entity"
	"event-ticketing-be/internal/model"
	"event-ticketing-be/internal/repository/contract"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories interpreting the query specifications by type,
// so services can be exercised without a database.

type fakeRegistrationRepo struct {
	rows map[uuid.UUID]*entity.Registration

	// When set, Update fails without touching the stored row.
	updateErr error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{rows: make(map[uuid.UUID]*entity.Registration)}
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, reg *entity.Registration) error {
	if reg.Id == uuid.Nil {
		reg.Id = uuid.New()
	}
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	copied := *reg
	r.rows[reg.Id] = &copied
	return nil
}

func (r *fakeRegistrationRepo) Update(ctx context.Context, reg *entity.Registration) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	reg.UpdatedAt = time.Now()
	copied := *reg
	r.rows[reg.Id] = &copied
	return nil
}

func (r *fakeRegistrationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeRegistrationRepo) match(reg *entity.Registration, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if reg.Id != s.ID {
				return false
			}
		case specification.ByTicketNo:
			if reg.TicketNo != s.TicketNo {
				return false
			}
		case specification.ByOrderID:
			if reg.OrderId == nil || *reg.OrderId != s.OrderID {
				return false
			}
		case specification.ByPaymentStatus:
			if string(reg.PaymentStatus) != s.Status {
				return false
			}
		case specification.ByCategory:
			if string(reg.RegistrationFor) != s.Category {
				return false
			}
		}
	}
	return true
}

func (r *fakeRegistrationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error) {
	for _, reg := range r.rows {
		if r.match(reg, specs) {
			copied := *reg
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistrationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error) {
	var out []*entity.Registration
	for _, reg := range r.rows {
		if r.match(reg, specs) {
			copied := *reg
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return applyPagination(out, specs), nil
}

func (r *fakeRegistrationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, reg := range r.rows {
		if r.match(reg, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRegistrationRepo) CountByPaymentStatus(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, reg := range r.rows {
		out[string(reg.PaymentStatus)]++
	}
	return out, nil
}

func (r *fakeRegistrationRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, reg := range r.rows {
		out[string(reg.RegistrationFor)]++
	}
	return out, nil
}

func (r *fakeRegistrationRepo) TotalCollected(ctx context.Context) (float64, error) {
	var sum float64
	for _, reg := range r.rows {
		if reg.PaymentStatus == entity.PaymentStatusSuccess {
			sum += reg.Amount
		}
	}
	return sum, nil
}

type fakeSettingsRepo struct {
	row   *entity.EventSettings
	saves int
}

func (r *fakeSettingsRepo) Get(ctx context.Context, defaultName string) (*entity.EventSettings, error) {
	if r.row == nil {
		r.row = &entity.EventSettings{Id: model.SettingsId, EventName: defaultName, UpdatedAt: time.Now()}
	}
	copied := *r.row
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *entity.EventSettings) error {
	settings.Id = model.SettingsId
	settings.UpdatedAt = time.Now()
	copied := *settings
	r.row = &copied
	r.saves++
	return nil
}

type fakeScanLogRepo struct {
	rows []*entity.ScanLog
}

func (r *fakeScanLogRepo) Create(ctx context.Context, log *entity.ScanLog) error {
	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	log.CreatedAt = time.Now()
	copied := *log
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeScanLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error) {
	out := make([]*entity.ScanLog, len(r.rows))
	for i, l := range r.rows {
		copied := *l
		out[i] = &copied
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return applyPagination(out, specs), nil
}

func (r *fakeScanLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeScanLogRepo) CountByAction(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, l := range r.rows {
		out[string(l.Action)]++
	}
	return out, nil
}

type fakeStaffRepo struct {
	rows map[uuid.UUID]*entity.StaffUser
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{rows: make(map[uuid.UUID]*entity.StaffUser)}
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *entity.StaffUser) error {
	if staff.Id == uuid.Nil {
		staff.Id = uuid.New()
	}
	copied := *staff
	r.rows[staff.Id] = &copied
	return nil
}

func (r *fakeStaffRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StaffUser, error) {
	for _, staff := range r.rows {
		matched := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if staff.Id != s.ID {
					matched = false
				}
			case specification.ByEmail:
				if staff.Email != s.Email {
					matched = false
				}
			}
		}
		if matched {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeUow wires the fakes behind the unit-of-work surface.

type fakeUow struct {
	registrations *fakeRegistrationRepo
	settings      *fakeSettingsRepo
	scanLogs      *fakeScanLogRepo
	staff         *fakeStaffRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		registrations: newFakeRegistrationRepo(),
		settings:      &fakeSettingsRepo{},
		scanLogs:      &fakeScanLogRepo{},
		staff:         newFakeStaffRepo(),
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) RegistrationRepository() contract.RegistrationRepository { return u.registrations }
func (u *fakeUow) SettingsRepository() contract.SettingsRepository         { return u.settings }
func (u *fakeUow) ScanLogRepository() contract.ScanLogRepository           { return u.scanLogs }
func (u *fakeUow) StaffRepository() contract.StaffRepository               { return u.staff }

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: newFakeUow()}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func byID(id uuid.UUID) specification.Specification {
	return specification.ByID{ID: id}
}

func applyPagination[T any](rows []T, specs []specification.Specification) []T {
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			start := p.Offset
			if start > len(rows) {
				return nil
			}
			end := start + p.Limit
			if end > len(rows) {
				end = len(rows)
			}
			return rows[start:end]
		}
	}
	return rows
}
