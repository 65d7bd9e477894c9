package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"plateful/internal/pkg/config"
	"plateful/internal/pkg/errs"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

// HTTPGateway talks to the loyalty-points ledger service. The ledger owns
// the balance and performs the atomic check-and-debit; this gateway only
// translates transport failures into the saga's error classes.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(cfg config.LedgerConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

var _ shared.PointsLedger = (*HTTPGateway)(nil)

type balanceResponse struct {
	Points int64 `json:"points"`
}

func (g *HTTPGateway) GetBalance(ctx context.Context, userID, brandID uuid.UUID) (int64, error) {
	url := fmt.Sprintf("%s/api/brands/%s/users/%s/points", g.baseURL, brandID, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build balance request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, errors.Join(shared.ErrLedgerUnavailable, err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return 0, errs.Wrap(shared.ErrLedgerUnavailable,
			fmt.Sprintf("ledger balance request returned %d", resp.StatusCode))
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, errors.Join(shared.ErrLedgerUnavailable, errs.Wrap(err, "failed to decode balance response"))
	}
	return body.Points, nil
}

type debitRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Amount int64     `json:"amount"`
	Model  string    `json:"model"`
	RefID  uuid.UUID `json:"ref_id"`
}

type debitResponse struct {
	PointsUsed      int64 `json:"points_used"`
	RemainingPoints int64 `json:"remaining_points"`
}

func (g *HTTPGateway) Debit(ctx context.Context, userID, brandID uuid.UUID, amount int64, dctx shared.DebitContext) (*shared.DebitReceipt, error) {
	url := fmt.Sprintf("%s/api/brands/%s/points/debit", g.baseURL, brandID)

	payload, err := json.Marshal(debitRequest{
		UserID: userID,
		Amount: amount,
		Model:  dctx.Model,
		RefID:  dctx.RefID,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode debit request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build debit request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Join(shared.ErrLedgerUnavailable, err)
	}
	defer closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusPaymentRequired:
		return nil, shared.ErrLedgerInsufficientFunds
	case http.StatusConflict:
		return nil, shared.ErrLedgerConflict
	default:
		return nil, errs.Wrap(shared.ErrLedgerUnavailable,
			fmt.Sprintf("ledger debit request returned %d", resp.StatusCode))
	}

	var body debitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Join(shared.ErrLedgerUnavailable, errs.Wrap(err, "failed to decode debit response"))
	}
	return &shared.DebitReceipt{
		PointsUsed:      body.PointsUsed,
		RemainingPoints: body.RemainingPoints,
	}, nil
}

func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
