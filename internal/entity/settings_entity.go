package entity

import "time"

// EventSettings is the singleton settings record. Every save collapses to
// the same fixed identity; the repository guarantees get-or-create on read.
type EventSettings struct {
	Id        uint
	EventName string
	LogoPath  *string
	UpdatedAt time.Time
}
