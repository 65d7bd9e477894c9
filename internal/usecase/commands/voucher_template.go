package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plateful/internal/domain/voucher"
	"plateful/internal/infra"
	"plateful/internal/pkg/errs"
	"plateful/internal/pkg/patch"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHasUnusedInstances = errs.New("voucher template has unused instances outstanding")
	ErrUsedByBundle       = errs.New("voucher template is referenced by a bundle template")
)

type CreateVoucherTemplateRequest struct {
	Name        string
	Description string
}

type UpdateVoucherTemplateRequest struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type CreateVoucherTemplateResult struct {
	TemplateID uuid.UUID
}

type VoucherTemplateCommands interface {
	Create(ctx context.Context, brandID uuid.UUID, req CreateVoucherTemplateRequest) (*CreateVoucherTemplateResult, error)
	// Update routes true→false activation changes through the dependency
	// guard; every other field change bypasses it.
	Update(ctx context.Context, brandID, templateID uuid.UUID, req UpdateVoucherTemplateRequest) error
}

type voucherTemplateUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewVoucherTemplateCommands(uow shared.UnitOfWork) VoucherTemplateCommands {
	return &voucherTemplateUseCaseImpl{uow: uow}
}

func (uc *voucherTemplateUseCaseImpl) Create(
	ctx context.Context,
	brandID uuid.UUID,
	req CreateVoucherTemplateRequest,
) (*CreateVoucherTemplateResult, error) {
	entity, err := voucher.NewTemplate(brandID, req.Name, req.Description)
	if err != nil {
		return nil, errors.Join(ErrDomainValidation, err)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.VoucherTemplates().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateVoucherTemplateResult{TemplateID: createdID}, nil
}

func (uc *voucherTemplateUseCaseImpl) Update(
	ctx context.Context,
	brandID, templateID uuid.UUID,
	req UpdateVoucherTemplateRequest,
) error {
	snap, err := uc.uow.CommandReads().VoucherTemplateByID(ctx, brandID, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVoucherTemplateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	isActive := patch.Coalesce(req.IsActive, snap.IsActive)
	if snap.IsActive && !isActive {
		if err := uc.guardDeactivation(ctx, templateID); err != nil {
			return err
		}
	}

	rebuilt := voucher.ReconstructTemplate(
		snap.ID, snap.BrandID,
		patch.Coalesce(req.Name, snap.Name),
		patch.Coalesce(req.Description, snap.Description),
		isActive,
		snap.TotalIssued,
		time.Time{}, time.Time{},
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.VoucherTemplates().Update(ctx, tx.DB(), rebuilt)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// guardDeactivation checks unused instances strictly before bundle
// references: "users still hold N vouchers" is the actionable message,
// fixing bundle composition comes second.
func (uc *voucherTemplateUseCaseImpl) guardDeactivation(ctx context.Context, templateID uuid.UUID) error {
	unused, err := uc.uow.CommandReads().CountUnusedVouchersByTemplate(ctx, templateID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if unused > 0 {
		return errs.Wrap(ErrHasUnusedInstances,
			fmt.Sprintf("%d unused vouchers outstanding", unused))
	}

	refs, err := uc.uow.CommandReads().CountBundlesReferencingVoucherTemplate(ctx, templateID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if refs > 0 {
		return errs.Wrap(ErrUsedByBundle,
			fmt.Sprintf("referenced by %d bundle templates", refs))
	}
	return nil
}
