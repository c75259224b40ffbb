package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTicketConfirmation(toEmail, name, ticketNo, eventName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendTicketConfirmation(toEmail, name, ticketNo, eventName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your Ticket for %s", eventName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your payment has been confirmed. Here is your ticket for <strong>%s</strong>:</p>
			<h1 style="color: #4CAF50; letter-spacing: 3px;">%s</h1>
			<p>Show this ticket number at the entrance to check in.</p>
			<p>See you at the event!</p>
		</div>
	`, name, eventName, ticketNo)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send ticket to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Ticket confirmation sent to %s\n", toEmail)
	return nil
}
