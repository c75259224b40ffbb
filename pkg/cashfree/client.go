package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiVersion = "2023-08-01"

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com"
	productionBaseURL = "https://api.cashfree.com"
)

// Gateway is the payment gateway surface used by the payment service.
type Gateway interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error)
	FetchOrderPayments(ctx context.Context, orderId string) ([]*Payment, error)
	PaymentURL(sessionId string) string
}

type Client struct {
	appId      string
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Cashfree PG client. Any env value other than "PROD"
// targets the sandbox environment.
func NewClient(appId, secretKey, env string) *Client {
	baseURL := sandboxBaseURL
	if env == "PROD" {
		baseURL = productionBaseURL
	}
	return &Client{
		appId:     appId,
		secretKey: secretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", c.appId)
	req.Header.Set("x-client-secret", c.secretKey)
}

func (c *Client) CreateOrder(ctx context.Context, orderReq *CreateOrderRequest) (*OrderResponse, error) {
	jsonData, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pg/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("cashfree api error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("cashfree api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var orderResp OrderResponse
	if err := json.Unmarshal(bodyBytes, &orderResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &orderResp, nil
}

func (c *Client) FetchOrderPayments(ctx context.Context, orderId string) ([]*Payment, error) {
	url := fmt.Sprintf("%s/pg/orders/%s/payments", c.baseURL, orderId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cashfree api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var payments []*Payment
	if err := json.Unmarshal(bodyBytes, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payments, nil
}

// PaymentURL builds the hosted checkout link for a payment session.
func (c *Client) PaymentURL(sessionId string) string {
	return fmt.Sprintf("%s/pg/view/gateway/%s", c.baseURL, sessionId)
}
