package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/reconcile"
)

// Local guard errors. These are raised before any request is made.
var (
	ErrSubmitInFlight  = errors.New("a withdrawal submission is already in flight")
	ErrNothingSelected = errors.New("select at least one commission")
	ErrNoBalance       = errors.New("balance has not been fetched yet")
	ErrNotCancellable  = errors.New("withdrawal can only be cancelled while pending")
)

// APIError is a business-rule rejection from the backend. The message
// is the envelope's error string, surfaced verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Workflow drives the withdrawal flow for one acting user: it holds the
// commission selection, derives the requested amount from it, and keeps
// the balance snapshot and history fresh after every mutation. The
// server stays the sole source of truth; Workflow never patches its
// commission list from a request payload.
type Workflow struct {
	baseURL    string
	token      string
	httpClient *http.Client

	mu        sync.Mutex
	selection reconcile.Selection
	balance   *models.WithdrawalBalance
	inFlight  bool
}

func NewWorkflow(baseURL, token string) *Workflow {
	return &Workflow{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		selection:  reconcile.NewSelection(),
	}
}

// RefreshBalance fetches the balance snapshot and prunes selected ids
// that are no longer available.
func (c *Workflow) RefreshBalance(ctx context.Context) (*models.WithdrawalBalance, error) {
	var balance models.WithdrawalBalance
	if err := c.call(ctx, http.MethodGet, "/api/withdrawals/balance", nil, &balance); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.balance = &balance
	available := make(map[string]struct{}, len(balance.AvailableCommissions))
	for _, ref := range balance.AvailableCommissions {
		available[ref.ID] = struct{}{}
	}
	for _, id := range c.selection.IDs() {
		if _, ok := available[id]; !ok {
			c.selection.Toggle(id)
		}
	}
	c.mu.Unlock()

	return &balance, nil
}

func (c *Workflow) History(ctx context.Context) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	if err := c.call(ctx, http.MethodGet, "/api/withdrawals", nil, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (c *Workflow) Toggle(commissionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Toggle(commissionID)
}

func (c *Workflow) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Clear()
}

func (c *Workflow) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}

// SelectedAmount resolves the selection against the last fetched
// balance snapshot. Zero with no snapshot or an empty selection.
func (c *Workflow) SelectedAmount() models.Cents {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance == nil {
		return 0
	}
	return reconcile.SelectedAmount(c.selection, c.balance.AvailableCommissions)
}

// Submit creates a withdrawal for the current selection. The amount is
// always derived from the selection, so the server's exact-sum check is
// satisfied by construction. Only one submission may be in flight at a
// time; the guard stays held until the post-submit refresh completes.
func (c *Workflow) Submit(ctx context.Context, method models.PaymentMethod, details json.RawMessage, notes string) (*models.Withdrawal, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if c.balance == nil {
		c.mu.Unlock()
		return nil, ErrNoBalance
	}
	ids := c.selection.IDs()
	amount := reconcile.SelectedAmount(c.selection, c.balance.AvailableCommissions)
	if len(ids) == 0 || amount <= 0 {
		c.mu.Unlock()
		return nil, ErrNothingSelected
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	req := models.WithdrawalRequest{
		Amount:         amount,
		PaymentMethod:  method,
		CommissionIDs:  ids,
		PaymentDetails: details,
		Notes:          notes,
	}

	var withdrawal models.Withdrawal
	if err := c.call(ctx, http.MethodPost, "/api/withdrawals", req, &withdrawal); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.selection.Clear()
	c.mu.Unlock()

	if err := c.refreshAfterMutation(ctx); err != nil {
		return &withdrawal, fmt.Errorf("withdrawal %s created but refresh failed: %w", withdrawal.ID, err)
	}
	return &withdrawal, nil
}

// Cancel cancels a pending withdrawal and refreshes balance and
// history, returning the reserved commissions to the available list.
func (c *Workflow) Cancel(ctx context.Context, withdrawal *models.Withdrawal) (*models.Withdrawal, error) {
	if withdrawal.Status != models.WithdrawalPending {
		return nil, ErrNotCancellable
	}

	var updated models.Withdrawal
	path := fmt.Sprintf("/api/withdrawals/%s/cancel", withdrawal.ID)
	if err := c.call(ctx, http.MethodPost, path, nil, &updated); err != nil {
		return nil, err
	}

	if err := c.refreshAfterMutation(ctx); err != nil {
		return &updated, fmt.Errorf("withdrawal %s cancelled but refresh failed: %w", updated.ID, err)
	}
	return &updated, nil
}

// refreshAfterMutation re-fetches balance before history so the caller
// never observes a commission both available and part of a fresh
// withdrawal.
func (c *Workflow) refreshAfterMutation(ctx context.Context) error {
	if _, err := c.RefreshBalance(ctx); err != nil {
		return err
	}
	if _, err := c.History(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Workflow) call(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("request failed: unexpected response (status %d)", resp.StatusCode)
	}

	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("request failed: malformed data: %w", err)
		}
	}
	return nil
}
