package cashfree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("app-id", "secret-key", "TEST")
	c.baseURL = serverURL
	return c
}

func TestCreateOrder(t *testing.T) {
	var gotPath, gotVersion, gotClientId, gotSecret string
	var gotBody CreateOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotVersion = r.Header.Get("x-api-version")
		gotClientId = r.Header.Get("x-client-id")
		gotSecret = r.Header.Get("x-client-secret")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OrderResponse{
			OrderId:          gotBody.OrderId,
			PaymentSessionId: "session_xyz",
			OrderStatus:      "ACTIVE",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.CreateOrder(context.Background(), &CreateOrderRequest{
		OrderId:       "EVT_ORDER_EVT12345678_abcd1234",
		OrderAmount:   400,
		OrderCurrency: "INR",
		CustomerDetails: CustomerDetails{
			CustomerId:    "EVT_EVT12345678",
			CustomerName:  "Jo User",
			CustomerEmail: "jo@example.com",
			CustomerPhone: "9876543210",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "/pg/orders", gotPath)
	assert.Equal(t, "2023-08-01", gotVersion)
	assert.Equal(t, "app-id", gotClientId)
	assert.Equal(t, "secret-key", gotSecret)
	assert.Equal(t, "EVT_ORDER_EVT12345678_abcd1234", gotBody.OrderId)
	assert.Equal(t, float64(400), gotBody.OrderAmount)
	assert.Equal(t, "session_xyz", resp.PaymentSessionId)
	assert.Equal(t, "ACTIVE", resp.OrderStatus)
}

func TestCreateOrderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"authentication failed","code":"auth_failed","type":"authentication_error"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.CreateOrder(context.Background(), &CreateOrderRequest{OrderId: "x"})

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "status 401")
	assert.ErrorContains(t, err, "authentication failed")
}

func TestFetchOrderPayments(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"cf_payment_id":987654,"payment_status":"SUCCESS","payment_group":"upi","payment_time":"2026-01-15T10:30:00+05:30","payment_amount":400.0}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	payments, err := client.FetchOrderPayments(context.Background(), "EVT_ORDER_EVT12345678_abcd1234")

	assert.NoError(t, err)
	assert.Equal(t, "/pg/orders/EVT_ORDER_EVT12345678_abcd1234/payments", gotPath)
	assert.Len(t, payments, 1)
	assert.Equal(t, "SUCCESS", payments[0].PaymentStatus)
	assert.Equal(t, "987654", payments[0].PaymentId())
	assert.Equal(t, "upi", payments[0].PaymentGroup)
}

func TestPaymentURL(t *testing.T) {
	client := NewClient("a", "b", "TEST")
	assert.Equal(t, "https://sandbox.cashfree.com/pg/view/gateway/session_xyz", client.PaymentURL("session_xyz"))

	prod := NewClient("a", "b", "PROD")
	assert.Equal(t, "https://api.cashfree.com/pg/view/gateway/session_xyz", prod.PaymentURL("session_xyz"))
}

func TestPaymentIdNormalization(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, ""},
		{"string", "pay_123", "pay_123"},
		{"integer number", float64(987654), "987654"},
		{"fractional number", float64(12.5), "12.5"},
		{"json number", json.Number("456789"), "456789"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Payment{CfPaymentId: tc.raw}
			assert.Equal(t, tc.want, p.PaymentId())
		})
	}
}
