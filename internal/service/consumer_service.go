package service

import (
	"context"
	"encoding/json"
	"log"

	"event-ticketing-be/internal/dto"
	"event-ticketing-be/internal/pkg/mailer"
	"event-ticketing-be/internal/repository/specification"
	"event-ticketing-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the ticket-email topic and sends confirmation
// emails after completed payments.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	uowFactory      unitofwork.RepositoryFactory
	emailService    mailer.IEmailService
	settingsService ISettingsService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	settingsService ISettingsService,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		uowFactory:      uowFactory,
		emailService:    emailService,
		settingsService: settingsService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TicketEmailMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending ticket email for registration: %s", payload.RegistrationId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: payload.RegistrationId})
	if err != nil {
		log.Printf("[ERROR] Failed to get registration %s: %v", payload.RegistrationId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if registration == nil {
		log.Printf("[ERROR] Registration not found: %s", payload.RegistrationId)
		msg.Ack() // Deleted since payment? Ack.
		return
	}

	eventName := cs.settingsService.EventName(ctx)

	if err := cs.emailService.SendTicketConfirmation(registration.Email, registration.Name, registration.TicketNo, eventName); err != nil {
		log.Printf("[ERROR] Failed to send ticket email to %s: %v", registration.Email, err)
		// At-most-once: the email path never blocks or retries the payment.
		msg.Ack()
		return
	}

	msg.Ack()
}
