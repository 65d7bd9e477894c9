package queries

import (
	"context"

	"plateful/internal/infra"
	"plateful/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVoucherTemplateNotFoundRead = errs.New("voucher template not found")

type VoucherQueries interface {
	TemplateByID(ctx context.Context, brandID, id uuid.UUID) (*VoucherTemplateView, error)
	ListTemplates(ctx context.Context, brandID uuid.UUID) ([]*VoucherTemplateView, error)
	ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*VoucherInstanceView, error)
	ListInstancesByBundleInstance(ctx context.Context, brandID, bundleInstanceID uuid.UUID) ([]*VoucherInstanceView, error)
}

type VoucherReadStore interface {
	FindTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*VoucherTemplateView, error)
	ListTemplatesByBrand(ctx context.Context, brandID uuid.UUID) ([]*VoucherTemplateView, error)
	ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*VoucherInstanceView, error)
	ListInstancesByCreatedBy(ctx context.Context, brandID, bundleInstanceID uuid.UUID) ([]*VoucherInstanceView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
}

func NewVoucherQueries(store VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

func (q *voucherQueriesImpl) TemplateByID(ctx context.Context, brandID, id uuid.UUID) (*VoucherTemplateView, error) {
	view, err := q.store.FindTemplateByID(ctx, brandID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherTemplateNotFoundRead
		}
		return nil, errs.Wrap(err, "failed to find voucher template")
	}
	return view, nil
}

func (q *voucherQueriesImpl) ListTemplates(ctx context.Context, brandID uuid.UUID) ([]*VoucherTemplateView, error) {
	views, err := q.store.ListTemplatesByBrand(ctx, brandID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list voucher templates")
	}
	return views, nil
}

func (q *voucherQueriesImpl) ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*VoucherInstanceView, error) {
	views, err := q.store.ListInstancesByUser(ctx, brandID, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user vouchers")
	}
	return views, nil
}

func (q *voucherQueriesImpl) ListInstancesByBundleInstance(ctx context.Context, brandID, bundleInstanceID uuid.UUID) ([]*VoucherInstanceView, error) {
	views, err := q.store.ListInstancesByCreatedBy(ctx, brandID, bundleInstanceID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bundle vouchers")
	}
	return views, nil
}
