package specification

import "gorm.io/gorm"

// ByTicketNo matches a registration or scan log by the scanned ticket number.
type ByTicketNo struct {
	TicketNo string
}

func (s ByTicketNo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ticket_no = ?", s.TicketNo)
}

// ByOrderID matches the registration carrying a gateway order reference.
type ByOrderID struct {
	OrderID string
}

func (s ByOrderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderID)
}

// ByEmail matches a staff user by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByPaymentStatus filters registrations by payment status.
type ByPaymentStatus struct {
	Status string
}

func (s ByPaymentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}

// ByCategory filters registrations by the registration_for class.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("registration_for = ?", s.Category)
}
