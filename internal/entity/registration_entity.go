package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type RegistrationCategory string

const (
	CategoryBNIThalaivas RegistrationCategory = "BNI_THALAIVAS"
	CategoryBNIChettinad RegistrationCategory = "BNI_CHETTINAD"
	CategoryBNIMadurai   RegistrationCategory = "BNI_MADURAI"
	CategoryPublic       RegistrationCategory = "PUBLIC"
	CategoryStudents     RegistrationCategory = "STUDENTS"
)

// ValidCategory reports whether c is one of the fixed registration classes.
func ValidCategory(c RegistrationCategory) bool {
	switch c {
	case CategoryBNIThalaivas, CategoryBNIChettinad, CategoryBNIMadurai, CategoryPublic, CategoryStudents:
		return true
	}
	return false
}

type Registration struct {
	Id              uuid.UUID
	TicketNo        string
	Name            string
	MobileNumber    string
	Email           string
	Age             int
	Location        string
	CompanyName     string
	RegistrationFor RegistrationCategory
	PaymentStatus   PaymentStatus
	PaymentId       *string
	OrderId         *string
	Amount          float64
	PaymentDate     *time.Time
	PaymentInfo     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTicketNo issues a ticket number: the fixed prefix followed by an
// 8-digit random value. Assigned exactly once, at first persistence.
func NewTicketNo(prefix string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to a clock-derived value rather than panic.
		n = big.NewInt(time.Now().UnixNano() % 100000000)
	}
	return fmt.Sprintf("%s%08d", prefix, n)
}
