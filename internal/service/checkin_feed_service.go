package service

import (
	"context"
	"fmt"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/websocket"
	"event-ticketing-be/pkg/events"
	pktNats "event-ticketing-be/pkg/nats"
)

// ICheckinFeedService bridges scan events onto the websocket hub.
type ICheckinFeedService interface {
	Start() error
}

type checkinFeedService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
}

func NewCheckinFeedService(subscriber *pktNats.Subscriber, hub *websocket.Hub) ICheckinFeedService {
	return &checkinFeedService{
		subscriber: subscriber,
		hub:        hub,
	}
}

func (s *checkinFeedService) Start() error {
	subject := fmt.Sprintf("events.%s", events.TicketScanned)
	return s.subscriber.Subscribe(subject, "checkin-feed", func(ctx context.Context, event events.Event) error {
		payload := event.Payload()
		s.hub.Broadcast(dto.CheckinEvent{
			TicketNo:  asString(payload["ticket_no"]),
			Action:    asString(payload["action"]),
			Name:      asString(payload["name"]),
			ScannedBy: asString(payload["scanned_by"]),
			ScannedAt: asString(payload["scanned_at"]),
		})
		return nil
	})
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
