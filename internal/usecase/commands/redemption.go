package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/pkg/clock"
	"plateful/internal/pkg/errs"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBundleTemplateNotFound  = errs.New("bundle template not found")
	ErrBundleInstanceNotFound  = errs.New("bundle instance not found")
	ErrTemplateInactive        = errs.New("bundle template is inactive")
	ErrNoPointPrice            = errs.New("bundle has no point price")
	ErrNoCashPrice             = errs.New("bundle has no cash price")
	ErrPurchaseLimitExceeded   = errs.New("purchase limit exceeded")
	ErrInsufficientPoints      = errs.New("insufficient points")
	ErrLedgerDebitFailed       = errs.New("ledger debit failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// debitContextModel tags ledger debits so the ledger's audit trail can be
// joined back to the bundle instance that caused them.
const debitContextModel = "BundleRedemption"

type RedemptionResult struct {
	PointsUsed      int64
	RemainingPoints int64
	Instance        *queries.BundleInstanceView
	Vouchers        []*queries.VoucherInstanceView
}

type RedemptionCommands interface {
	// RedeemWithPoints runs the full saga: validate, check the purchase
	// limit, create the instance, debit the ledger, then materialize
	// vouchers. A debit failure deletes the created instance.
	RedeemWithPoints(ctx context.Context, brandID, templateID, userID uuid.UUID) (*RedemptionResult, error)
	// CreateCashInstance is the cash path: no ledger interaction and
	// therefore no compensation. Guests (nil userID) may purchase.
	CreateCashInstance(ctx context.Context, brandID, templateID uuid.UUID, userID *uuid.UUID) (*RedemptionResult, error)
	CheckPurchaseLimit(ctx context.Context, brandID, templateID uuid.UUID, userID *uuid.UUID) (*LimitStatus, error)
	// UpdateInstanceNote is the only mutation allowed on a sold instance.
	UpdateInstanceNote(ctx context.Context, brandID, instanceID, userID uuid.UUID, note string) error
}

type redemptionUseCaseImpl struct {
	uow           shared.UnitOfWork
	ledger        shared.PointsLedger
	factory       *bundle.Factory
	limitGuard    *PurchaseLimitGuard
	materializer  *VoucherMaterializer
	bundleQueries queries.BundleQueries
	clock         clock.Clock
}

func NewRedemptionCommands(
	uow shared.UnitOfWork,
	ledger shared.PointsLedger,
	factory *bundle.Factory,
	limitGuard *PurchaseLimitGuard,
	materializer *VoucherMaterializer,
	bundleQueries queries.BundleQueries,
	clk clock.Clock,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		uow:           uow,
		ledger:        ledger,
		factory:       factory,
		limitGuard:    limitGuard,
		materializer:  materializer,
		bundleQueries: bundleQueries,
		clock:         clk,
	}
}

func (r *redemptionUseCaseImpl) RedeemWithPoints(
	ctx context.Context,
	brandID, templateID, userID uuid.UUID,
) (*RedemptionResult, error) {
	tmpl, err := r.validateTemplate(ctx, brandID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl.PointPrice == nil {
		return nil, ErrNoPointPrice
	}
	price := tmpl.PointPrice.Selling

	if _, err := r.limitGuard.Check(ctx, tmpl, &userID, 1); err != nil {
		return nil, err
	}

	// Advisory fast path only. The debit below is the source of truth;
	// this read may race with concurrent spends.
	balance, err := r.ledger.GetBalance(ctx, userID, brandID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read point balance")
	}
	if balance < price {
		return nil, errs.Wrap(ErrInsufficientPoints,
			fmt.Sprintf("need %d points, have %d", price, balance))
	}

	instanceID, err := r.createInstance(ctx, tmpl, &userID, bundle.PaymentPoints)
	if err != nil {
		return nil, err
	}

	receipt, err := r.ledger.Debit(ctx, userID, brandID, price, shared.DebitContext{
		Model: debitContextModel,
		RefID: instanceID,
	})
	if err != nil {
		r.compensateInstance(ctx, templateID, instanceID)
		// Callers match both the saga outcome and the ledger's own error
		// class, so the debit error keeps its identity alongside ours.
		return nil, errors.Join(ErrLedgerDebitFailed, err)
	}

	vouchers, err := r.materializer.Materialize(ctx, brandID, instanceID)
	if err != nil {
		return nil, err
	}

	instanceView, err := r.bundleQueries.InstanceByID(ctx, brandID, instanceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &RedemptionResult{
		PointsUsed:      receipt.PointsUsed,
		RemainingPoints: receipt.RemainingPoints,
		Instance:        instanceView,
		Vouchers:        vouchers,
	}, nil
}

func (r *redemptionUseCaseImpl) CreateCashInstance(
	ctx context.Context,
	brandID, templateID uuid.UUID,
	userID *uuid.UUID,
) (*RedemptionResult, error) {
	tmpl, err := r.validateTemplate(ctx, brandID, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl.CashPrice == nil {
		return nil, ErrNoCashPrice
	}

	if _, err := r.limitGuard.Check(ctx, tmpl, userID, 1); err != nil {
		return nil, err
	}

	instanceID, err := r.createInstance(ctx, tmpl, userID, bundle.PaymentCash)
	if err != nil {
		return nil, err
	}

	vouchers, err := r.materializer.Materialize(ctx, brandID, instanceID)
	if err != nil {
		return nil, err
	}

	instanceView, err := r.bundleQueries.InstanceByID(ctx, brandID, instanceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &RedemptionResult{
		Instance: instanceView,
		Vouchers: vouchers,
	}, nil
}

func (r *redemptionUseCaseImpl) CheckPurchaseLimit(
	ctx context.Context,
	brandID, templateID uuid.UUID,
	userID *uuid.UUID,
) (*LimitStatus, error) {
	tmpl, err := r.validateTemplate(ctx, brandID, templateID)
	if err != nil {
		return nil, err
	}
	return r.limitGuard.Status(ctx, tmpl, userID)
}

func (r *redemptionUseCaseImpl) UpdateInstanceNote(
	ctx context.Context,
	brandID, instanceID, userID uuid.UUID,
	note string,
) error {
	inst, err := r.uow.CommandReads().BundleInstanceByID(ctx, brandID, instanceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBundleInstanceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Only the owner may annotate an instance. Guest purchases have no
	// owner, so nobody may annotate them; answer 404 either way to avoid
	// confirming the instance exists.
	if inst.UserID == nil || *inst.UserID != userID {
		return ErrBundleInstanceNotFound
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BundleInstances().UpdateNote(ctx, tx.DB(), brandID, instanceID, note)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *redemptionUseCaseImpl) validateTemplate(
	ctx context.Context,
	brandID, templateID uuid.UUID,
) (*shared.BundleTemplateSnapshot, error) {
	tmpl, err := r.uow.CommandReads().BundleTemplateByID(ctx, brandID, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBundleTemplateNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !tmpl.IsActive {
		return nil, ErrTemplateInactive
	}
	return tmpl, nil
}

// createInstance persists the snapshot and bumps totalSold in one
// transaction. The insert itself re-checks the purchase limit so two
// concurrent requests cannot both slip past the advisory guard.
func (r *redemptionUseCaseImpl) createInstance(
	ctx context.Context,
	tmpl *shared.BundleTemplateSnapshot,
	userID *uuid.UUID,
	method bundle.PaymentMethod,
) (uuid.UUID, error) {
	entity, err := r.factory.CreateInstance(templateFromSnapshot(tmpl), userID, method)
	if err != nil {
		return uuid.Nil, errors.Join(ErrDomainValidation, err)
	}

	var limit *int32
	if userID != nil {
		limit = tmpl.PurchaseLimitPerUser
	}

	var instanceID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.BundleInstances().Create(ctx, tx.DB(), entity, limit)
		if txErr != nil {
			return txErr
		}
		instanceID = id
		return tx.BundleTemplates().IncrementTotalSold(ctx, tx.DB(), tmpl.ID, 1)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrPurchaseLimitExceeded
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return instanceID, nil
}

// compensateInstance undoes a created-but-unpaid instance after a debit
// failure. A failure here leaves an orphan and is loudly logged; the
// original debit error still propagates to the caller.
func (r *redemptionUseCaseImpl) compensateInstance(ctx context.Context, templateID, instanceID uuid.UUID) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.BundleInstances().Delete(ctx, tx.DB(), instanceID); txErr != nil {
			return txErr
		}
		return tx.BundleTemplates().DecrementTotalSold(ctx, tx.DB(), templateID, 1)
	})
	if err != nil {
		slog.Error("failed to compensate bundle instance after debit failure",
			"bundle_instance_id", instanceID, "error", err.Error())
	}
}

func templateFromSnapshot(s *shared.BundleTemplateSnapshot) *bundle.Template {
	items := make([]bundle.Item, len(s.Items))
	for i, it := range s.Items {
		items[i] = bundle.Item{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}

	var cash, points *bundle.Price
	if s.CashPrice != nil {
		cash = &bundle.Price{Original: s.CashPrice.Original, Selling: s.CashPrice.Selling}
	}
	if s.PointPrice != nil {
		points = &bundle.Price{Original: s.PointPrice.Original, Selling: s.PointPrice.Selling}
	}

	return bundle.ReconstructTemplate(
		s.ID, s.BrandID,
		s.Name, s.Description,
		cash, points,
		items,
		s.VoucherValidityDays,
		s.PurchaseLimitPerUser,
		s.IsActive,
		s.TotalSold,
		// Timestamps are not part of the snapshot; the instance never
		// copies them.
		time.Time{}, time.Time{},
	)
}
