package dto

import "encoding/json"

type CreateOrderRequest struct {
	RegistrationId string `json:"registration_id" validate:"required,uuid"`
}

type CreateOrderResponse struct {
	Success          bool    `json:"success"`
	OrderId          string  `json:"order_id"`
	PaymentSessionId string  `json:"payment_session_id"`
	PaymentURL       *string `json:"payment_url"`
	OrderStatus      string  `json:"order_status"`
}

type VerifyPaymentRequest struct {
	OrderId string `json:"order_id" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentStatus string `json:"payment_status"`
	TicketNo      string `json:"ticket_no"`
}

// CashfreeWebhookPayload mirrors the gateway's webhook envelope. Only the
// fields the handler reads are typed; the payment object is kept raw so it
// can be stored verbatim.
type CashfreeWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderId string `json:"order_id"`
		} `json:"order"`
		Payment json.RawMessage `json:"payment"`
	} `json:"data"`
}

// OrderID returns the order reference or "" when absent.
func (p *CashfreeWebhookPayload) OrderID() string {
	return p.Data.Order.OrderId
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
