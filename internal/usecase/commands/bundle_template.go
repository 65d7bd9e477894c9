package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/pkg/errs"
	"plateful/internal/pkg/patch"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVoucherTemplateNotFound = errs.New("referenced voucher template not found")
	ErrVoucherTemplateInactive = errs.New("referenced voucher template is inactive")
	ErrTemplateInUse           = errs.New("bundle template has sold instances")
)

type PriceInput struct {
	Original int64
	Selling  int64
}

type BundleItemInput struct {
	VoucherTemplateID uuid.UUID
	Quantity          int32
	DisplayName       string
}

type CreateBundleTemplateRequest struct {
	Name                 string
	Description          string
	CashPrice            *PriceInput
	PointPrice           *PriceInput
	Items                []BundleItemInput
	VoucherValidityDays  int32
	PurchaseLimitPerUser *int32
}

// UpdateBundleTemplateRequest patches editable fields only. Brand
// ownership is fixed at creation; there is no way to move a template to
// another brand.
type UpdateBundleTemplateRequest struct {
	Name                 *string
	Description          *string
	CashPrice            *PriceInput
	PointPrice           *PriceInput
	Items                []BundleItemInput
	VoucherValidityDays  *int32
	PurchaseLimitPerUser *int32
	IsActive             *bool
}

type CreateBundleTemplateResult struct {
	TemplateID uuid.UUID
}

type BundleTemplateCommands interface {
	Create(ctx context.Context, brandID uuid.UUID, req CreateBundleTemplateRequest) (*CreateBundleTemplateResult, error)
	Update(ctx context.Context, brandID, templateID uuid.UUID, req UpdateBundleTemplateRequest) error
	Delete(ctx context.Context, brandID, templateID uuid.UUID) error
}

type bundleTemplateUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBundleTemplateCommands(uow shared.UnitOfWork) BundleTemplateCommands {
	return &bundleTemplateUseCaseImpl{uow: uow}
}

func (uc *bundleTemplateUseCaseImpl) Create(
	ctx context.Context,
	brandID uuid.UUID,
	req CreateBundleTemplateRequest,
) (*CreateBundleTemplateResult, error) {
	items, err := uc.validateItemTemplates(ctx, brandID, req.Items)
	if err != nil {
		return nil, err
	}

	entity, err := bundle.NewTemplate(
		brandID,
		req.Name,
		req.Description,
		priceFromInput(req.CashPrice),
		priceFromInput(req.PointPrice),
		items,
		req.VoucherValidityDays,
		req.PurchaseLimitPerUser,
	)
	if err != nil {
		return nil, errors.Join(ErrDomainValidation, err)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.BundleTemplates().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateBundleTemplateResult{TemplateID: createdID}, nil
}

func (uc *bundleTemplateUseCaseImpl) Update(
	ctx context.Context,
	brandID, templateID uuid.UUID,
	req UpdateBundleTemplateRequest,
) error {
	snap, err := uc.uow.CommandReads().BundleTemplateByID(ctx, brandID, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBundleTemplateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	items := itemsFromSnapshot(snap.Items)
	if req.Items != nil {
		validated, vErr := uc.validateItemTemplates(ctx, brandID, req.Items)
		if vErr != nil {
			return vErr
		}
		items = validated
	}

	cash := priceFromSnapshot(snap.CashPrice)
	if req.CashPrice != nil {
		cash = priceFromInput(req.CashPrice)
	}
	points := priceFromSnapshot(snap.PointPrice)
	if req.PointPrice != nil {
		points = priceFromInput(req.PointPrice)
	}

	limit := snap.PurchaseLimitPerUser
	if req.PurchaseLimitPerUser != nil {
		limit = req.PurchaseLimitPerUser
	}

	entity, err := bundle.NewTemplate(
		snap.BrandID,
		patch.Coalesce(req.Name, snap.Name),
		patch.Coalesce(req.Description, snap.Description),
		cash,
		points,
		items,
		patch.Coalesce(req.VoucherValidityDays, snap.VoucherValidityDays),
		limit,
	)
	if err != nil {
		return errors.Join(ErrDomainValidation, err)
	}

	// Bundle templates are leaf nodes: deactivation needs no dependency
	// check, only deletion is guarded.
	rebuilt := bundle.ReconstructTemplate(
		snap.ID, snap.BrandID,
		entity.Name(), entity.Description(),
		entity.CashPrice(), entity.PointPrice(),
		entity.Items(),
		entity.VoucherValidityDays(),
		entity.PurchaseLimitPerUser(),
		patch.Coalesce(req.IsActive, snap.IsActive),
		snap.TotalSold,
		time.Time{}, time.Time{},
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BundleTemplates().Update(ctx, tx.DB(), rebuilt)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *bundleTemplateUseCaseImpl) Delete(ctx context.Context, brandID, templateID uuid.UUID) error {
	if _, err := uc.uow.CommandReads().BundleTemplateByID(ctx, brandID, templateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBundleTemplateNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	count, err := uc.uow.CommandReads().CountInstancesByTemplate(ctx, templateID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return errs.Wrap(ErrTemplateInUse, fmt.Sprintf("%d sold instances", count))
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BundleTemplates().Delete(ctx, tx.DB(), brandID, templateID)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// validateItemTemplates checks every referenced voucher template exists
// in the brand and is active, naming the offender in the error.
func (uc *bundleTemplateUseCaseImpl) validateItemTemplates(
	ctx context.Context,
	brandID uuid.UUID,
	inputs []BundleItemInput,
) ([]bundle.Item, error) {
	items := make([]bundle.Item, 0, len(inputs))
	for _, in := range inputs {
		vt, err := uc.uow.CommandReads().VoucherTemplateByID(ctx, brandID, in.VoucherTemplateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Wrap(ErrVoucherTemplateNotFound,
					fmt.Sprintf("voucher template %s", in.VoucherTemplateID))
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !vt.IsActive {
			return nil, errs.Wrap(ErrVoucherTemplateInactive,
				fmt.Sprintf("voucher template %q", vt.Name))
		}

		item, err := bundle.NewItem(in.VoucherTemplateID, in.Quantity, in.DisplayName)
		if err != nil {
			return nil, errors.Join(ErrDomainValidation, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func priceFromInput(in *PriceInput) *bundle.Price {
	if in == nil {
		return nil
	}
	return &bundle.Price{Original: in.Original, Selling: in.Selling}
}

func priceFromSnapshot(s *shared.PriceSnapshot) *bundle.Price {
	if s == nil {
		return nil
	}
	return &bundle.Price{Original: s.Original, Selling: s.Selling}
}

func itemsFromSnapshot(snaps []shared.BundleItemSnapshot) []bundle.Item {
	items := make([]bundle.Item, len(snaps))
	for i, s := range snaps {
		items[i] = bundle.Item{
			VoucherTemplateID: s.VoucherTemplateID,
			Quantity:          s.Quantity,
			DisplayName:       s.DisplayName,
		}
	}
	return items
}
