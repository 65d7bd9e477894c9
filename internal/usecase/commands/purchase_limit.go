package commands

import (
	"context"
	"fmt"

	"plateful/internal/pkg/errs"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

type LimitStatus struct {
	CanPurchase    bool
	PurchasedCount int64
	// RemainingLimit and TotalLimit are nil for unlimited templates and
	// for guest purchasers.
	RemainingLimit *int32
	TotalLimit     *int32
}

// PurchaseLimitGuard counts a user's existing instances of a template
// against its per-user cap. The count-then-compare is advisory: the
// storage-level conditional insert is what actually closes the race.
type PurchaseLimitGuard struct {
	reads shared.CommandReads
}

func NewPurchaseLimitGuard(uow shared.UnitOfWork) *PurchaseLimitGuard {
	return &PurchaseLimitGuard{reads: uow.CommandReads()}
}

// Check fails with ErrPurchaseLimitExceeded when requestedQty does not
// fit under the cap. Guests are always allowed: without an identity
// there is nothing to count against.
func (g *PurchaseLimitGuard) Check(
	ctx context.Context,
	tmpl *shared.BundleTemplateSnapshot,
	userID *uuid.UUID,
	requestedQty int32,
) (*LimitStatus, error) {
	status, err := g.Status(ctx, tmpl, userID)
	if err != nil {
		return nil, err
	}

	if status.RemainingLimit != nil && requestedQty > *status.RemainingLimit {
		return nil, errs.Wrap(ErrPurchaseLimitExceeded,
			fmt.Sprintf("%d of %d used, %d remaining",
				status.PurchasedCount, *status.TotalLimit, *status.RemainingLimit))
	}
	return status, nil
}

func (g *PurchaseLimitGuard) Status(
	ctx context.Context,
	tmpl *shared.BundleTemplateSnapshot,
	userID *uuid.UUID,
) (*LimitStatus, error) {
	if userID == nil || tmpl.PurchaseLimitPerUser == nil {
		return &LimitStatus{CanPurchase: true}, nil
	}

	count, err := g.reads.CountInstancesByTemplateAndUser(ctx, tmpl.ID, *userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	limit := *tmpl.PurchaseLimitPerUser
	remaining := limit - int32(count)
	if remaining < 0 {
		remaining = 0
	}

	return &LimitStatus{
		CanPurchase:    remaining > 0,
		PurchasedCount: count,
		RemainingLimit: &remaining,
		TotalLimit:     &limit,
	}, nil
}
