package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"go.uber.org/zap"
)

type PayoutStatus string

const (
	StatusAccepted   PayoutStatus = "ACCEPTED"
	StatusProcessing PayoutStatus = "PROCESSING"
	StatusConfirmed  PayoutStatus = "CONFIRMED"
	StatusFailed     PayoutStatus = "FAILED"
)

type ClientInterface interface {
	RegisterPayout(ctx context.Context, withdrawal *models.Withdrawal) (string, error)
	GetPayoutStatus(ctx context.Context, ref string) (*PayoutResponse, int, error)
}

type PayoutResponse struct {
	Ref    string       `json:"ref"`
	Status PayoutStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

type payoutRequest struct {
	Ref            string          `json:"ref"`
	Amount         models.Cents    `json:"amount"`
	Method         string          `json:"method"`
	PaymentDetails json.RawMessage `json:"paymentDetails,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// RegisterPayout submits the withdrawal to the gateway and returns the
// gateway's payout reference. The withdrawal id doubles as an
// idempotency key, so re-registering the same withdrawal is safe.
func (c *Client) RegisterPayout(ctx context.Context, withdrawal *models.Withdrawal) (string, error) {
	body, err := json.Marshal(payoutRequest{
		Ref:            withdrawal.ID,
		Amount:         withdrawal.Amount,
		Method:         string(withdrawal.PaymentMethod),
		PaymentDetails: withdrawal.PaymentDetails,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/payouts", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close gateway response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected gateway status: %d", resp.StatusCode)
	}

	var payout PayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&payout); err != nil {
		return "", err
	}
	if payout.Ref == "" {
		return "", fmt.Errorf("gateway returned empty payout ref")
	}
	return payout.Ref, nil
}

func (c *Client) GetPayoutStatus(ctx context.Context, ref string) (*PayoutResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/payouts/%s", c.baseURL, ref), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close gateway response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusTooManyRequests {
		return nil, resp.StatusCode, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("unexpected gateway status: %d", resp.StatusCode)
	}

	var payout PayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&payout); err != nil {
		return nil, resp.StatusCode, err
	}

	return &payout, resp.StatusCode, nil
}
