package cashfree

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Payment statuses reported by the gateway for an order's payment attempts.
const (
	PaymentStatusSuccess     = "SUCCESS"
	PaymentStatusFailed      = "FAILED"
	PaymentStatusCancelled   = "CANCELLED"
	PaymentStatusUserDropped = "USER_DROPPED"
	PaymentStatusPending     = "PENDING"
)

type CustomerDetails struct {
	CustomerId    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type OrderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type CreateOrderRequest struct {
	OrderId         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       *OrderMeta      `json:"order_meta,omitempty"`
	OrderNote       string          `json:"order_note,omitempty"`
}

type OrderResponse struct {
	OrderId          string `json:"order_id"`
	PaymentSessionId string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

type Payment struct {
	CfPaymentId    any     `json:"cf_payment_id"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentGroup   string  `json:"payment_group"`
	PaymentTime    string  `json:"payment_time"`
	PaymentAmount  float64 `json:"payment_amount"`
	PaymentMessage string  `json:"payment_message"`
}

// PaymentId normalizes cf_payment_id, which the gateway returns as either
// a JSON number or a string depending on the API version.
func (p *Payment) PaymentId() string {
	switch v := p.CfPaymentId.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}
