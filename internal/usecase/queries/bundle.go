package queries

import (
	"context"

	"plateful/internal/infra"
	"plateful/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBundleTemplateNotFoundRead = errs.New("bundle template not found")
	ErrBundleInstanceNotFoundRead = errs.New("bundle instance not found")
)

type BundleQueries interface {
	TemplateByID(ctx context.Context, brandID, id uuid.UUID) (*BundleTemplateView, error)
	ListTemplates(ctx context.Context, brandID uuid.UUID, activeOnly bool) ([]*BundleTemplateListItem, error)
	InstanceByID(ctx context.Context, brandID, id uuid.UUID) (*BundleInstanceView, error)
	ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*BundleInstanceView, error)
}

type BundleReadStore interface {
	FindTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*BundleTemplateView, error)
	ListTemplatesByBrand(ctx context.Context, brandID uuid.UUID, activeOnly bool) ([]*BundleTemplateListItem, error)
	FindInstanceByID(ctx context.Context, brandID, id uuid.UUID) (*BundleInstanceView, error)
	ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*BundleInstanceView, error)
}

type bundleQueriesImpl struct {
	store BundleReadStore
}

func NewBundleQueries(store BundleReadStore) BundleQueries {
	return &bundleQueriesImpl{store: store}
}

func (q *bundleQueriesImpl) TemplateByID(ctx context.Context, brandID, id uuid.UUID) (*BundleTemplateView, error) {
	view, err := q.store.FindTemplateByID(ctx, brandID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBundleTemplateNotFoundRead
		}
		return nil, errs.Wrap(err, "failed to find bundle template")
	}
	return view, nil
}

func (q *bundleQueriesImpl) ListTemplates(ctx context.Context, brandID uuid.UUID, activeOnly bool) ([]*BundleTemplateListItem, error) {
	items, err := q.store.ListTemplatesByBrand(ctx, brandID, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bundle templates")
	}
	return items, nil
}

func (q *bundleQueriesImpl) InstanceByID(ctx context.Context, brandID, id uuid.UUID) (*BundleInstanceView, error) {
	view, err := q.store.FindInstanceByID(ctx, brandID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBundleInstanceNotFoundRead
		}
		return nil, errs.Wrap(err, "failed to find bundle instance")
	}
	return view, nil
}

func (q *bundleQueriesImpl) ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*BundleInstanceView, error) {
	views, err := q.store.ListInstancesByUser(ctx, brandID, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bundle instances")
	}
	return views, nil
}
