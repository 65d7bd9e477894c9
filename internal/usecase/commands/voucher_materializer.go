package commands

import (
	"context"
	"errors"

	"plateful/internal/domain/voucher"
	"plateful/internal/infra"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

// VoucherMaterializer expands a bundle instance's item snapshot into
// individual voucher instances and bumps each voucher template's
// issuance counter. Everything runs in one transaction: a failure on the
// third item rolls back the first two, so a purchase never ends up with
// a partial voucher set from a single run.
type VoucherMaterializer struct {
	uow shared.UnitOfWork
}

func NewVoucherMaterializer(uow shared.UnitOfWork) *VoucherMaterializer {
	return &VoucherMaterializer{uow: uow}
}

func (m *VoucherMaterializer) Materialize(
	ctx context.Context,
	brandID, bundleInstanceID uuid.UUID,
) ([]*queries.VoucherInstanceView, error) {
	var created []*voucher.Instance

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inst, err := tx.Reads().BundleInstanceByID(ctx, brandID, bundleInstanceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBundleInstanceNotFound
			}
			return err
		}

		// The originating template may have been deleted after instances
		// were sold against it. Expansion works off the instance's own
		// snapshot, so the template load is an existence check only.
		if _, err := tx.Reads().BundleTemplateByID(ctx, brandID, inst.TemplateID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBundleTemplateNotFound
			}
			return err
		}

		for _, item := range inst.Items {
			batch := make([]*voucher.Instance, 0, item.Quantity)
			for range item.Quantity {
				vi, err := voucher.NewInstance(
					item.VoucherTemplateID,
					brandID,
					inst.UserID,
					&bundleInstanceID,
					inst.PurchasedAt,
					inst.VoucherValidityDays,
				)
				if err != nil {
					return err
				}
				batch = append(batch, vi)
			}

			if err := tx.VoucherInstances().CreateBatch(ctx, tx.DB(), batch); err != nil {
				return err
			}
			if err := tx.VoucherTemplates().IncrementTotalIssued(ctx, tx.DB(), item.VoucherTemplateID, item.Quantity); err != nil {
				return err
			}
			created = append(created, batch...)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBundleInstanceNotFound) || errors.Is(err, ErrBundleTemplateNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrDatabaseOperationFailed, err)
	}

	views := make([]*queries.VoucherInstanceView, len(created))
	for i, vi := range created {
		views[i] = &queries.VoucherInstanceView{
			ID:         vi.ID(),
			TemplateID: vi.TemplateID(),
			BrandID:    vi.BrandID(),
			UserID:     vi.UserID(),
			CreatedBy:  vi.CreatedBy(),
			ExpiresAt:  vi.ExpiresAt(),
			IsUsed:     vi.IsUsed(),
			CreatedAt:  vi.CreatedAt(),
		}
	}
	return views, nil
}
