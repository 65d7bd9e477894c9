package shared

import (
	"context"

	"plateful/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ledger-side failure classes, surfaced by the gateway so the saga can
// tell a balance race from an outage.
var (
	ErrLedgerInsufficientFunds = errs.New("ledger rejected debit: insufficient funds")
	ErrLedgerConflict          = errs.New("ledger rejected debit: concurrent modification")
	ErrLedgerUnavailable       = errs.New("ledger unavailable")
)

type DebitContext struct {
	Model string
	RefID uuid.UUID
}

type DebitReceipt struct {
	PointsUsed      int64
	RemainingPoints int64
}

// PointsLedger is the external loyalty-points ledger. It performs its own
// atomic check-and-debit; callers must treat GetBalance as advisory.
type PointsLedger interface {
	GetBalance(ctx context.Context, userID, brandID uuid.UUID) (int64, error)
	Debit(ctx context.Context, userID, brandID uuid.UUID, amount int64, dctx DebitContext) (*DebitReceipt, error)
}
