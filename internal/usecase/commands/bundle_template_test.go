//go:build unit

package commands_test

import (
	"context"
	"testing"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/shared"
	"plateful/tests/common/builder"
	sharedmock "plateful/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogFixture struct {
	uow             *sharedmock.MockUnitOfWork
	tx              *sharedmock.MockTx
	reads           *sharedmock.MockCommandReads
	bundleTemplates *sharedmock.MockBundleTemplateRepository
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &catalogFixture{
		uow:             sharedmock.NewMockUnitOfWork(ctrl),
		tx:              sharedmock.NewMockTx(ctrl),
		reads:           sharedmock.NewMockCommandReads(ctrl),
		bundleTemplates: sharedmock.NewMockBundleTemplateRepository(ctrl),
	}
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().BundleTemplates().Return(f.bundleTemplates).AnyTimes()
	return f
}

func createRequestFrom(b *builder.BundleTemplateBuilder) commands.CreateBundleTemplateRequest {
	items := make([]commands.BundleItemInput, len(b.Items))
	for i, it := range b.Items {
		items[i] = commands.BundleItemInput{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}
	var cash, points *commands.PriceInput
	if b.CashPrice != nil {
		cash = &commands.PriceInput{Original: b.CashPrice.Original, Selling: b.CashPrice.Selling}
	}
	if b.PointPrice != nil {
		points = &commands.PriceInput{Original: b.PointPrice.Original, Selling: b.PointPrice.Selling}
	}
	return commands.CreateBundleTemplateRequest{
		Name:                 b.Name,
		Description:          b.Description,
		CashPrice:            cash,
		PointPrice:           points,
		Items:                items,
		VoucherValidityDays:  b.VoucherValidityDays,
		PurchaseLimitPerUser: b.PurchaseLimitPerUser,
	}
}

func TestBundleTemplateCreate(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.New()

	activeVoucher := func(f *catalogFixture, id uuid.UUID) {
		f.reads.EXPECT().VoucherTemplateByID(gomock.Any(), brandID, id).
			Return(&shared.VoucherTemplateSnapshot{ID: id, BrandID: brandID, Name: "Free Drink", IsActive: true}, nil)
	}

	t.Run("creates with validated items", func(t *testing.T) {
		f := newCatalogFixture(t)
		b := builder.NewBundleTemplateBuilder()
		req := createRequestFrom(b)
		createdID := uuid.New()

		for _, it := range b.Items {
			activeVoucher(f, it.VoucherTemplateID)
		}
		f.bundleTemplates.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tmpl *bundle.Template) (uuid.UUID, error) {
				assert.Equal(t, brandID, tmpl.BrandID())
				assert.Equal(t, b.Name, tmpl.Name())
				assert.True(t, tmpl.IsActive())
				return createdID, nil
			})

		result, err := commands.NewBundleTemplateCommands(f.uow).Create(ctx, brandID, req)
		require.NoError(t, err)
		assert.Equal(t, createdID, result.TemplateID)
	})

	t.Run("rejects unknown voucher template reference", func(t *testing.T) {
		f := newCatalogFixture(t)
		req := createRequestFrom(builder.NewBundleTemplateBuilder())

		f.reads.EXPECT().VoucherTemplateByID(gomock.Any(), brandID, req.Items[0].VoucherTemplateID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := commands.NewBundleTemplateCommands(f.uow).Create(ctx, brandID, req)
		require.ErrorIs(t, err, commands.ErrVoucherTemplateNotFound)
	})

	t.Run("rejects inactive voucher template reference", func(t *testing.T) {
		f := newCatalogFixture(t)
		req := createRequestFrom(builder.NewBundleTemplateBuilder())

		f.reads.EXPECT().VoucherTemplateByID(gomock.Any(), brandID, req.Items[0].VoucherTemplateID).
			Return(&shared.VoucherTemplateSnapshot{ID: req.Items[0].VoucherTemplateID, IsActive: false}, nil)

		_, err := commands.NewBundleTemplateCommands(f.uow).Create(ctx, brandID, req)
		require.ErrorIs(t, err, commands.ErrVoucherTemplateInactive)
	})

	t.Run("rejects invalid composition", func(t *testing.T) {
		f := newCatalogFixture(t)
		req := createRequestFrom(builder.NewBundleTemplateBuilder())
		req.CashPrice = nil
		req.PointPrice = nil

		for _, it := range req.Items {
			activeVoucher(f, it.VoucherTemplateID)
		}

		_, err := commands.NewBundleTemplateCommands(f.uow).Create(ctx, brandID, req)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestBundleTemplateDelete(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.New()
	templateID := uuid.New()

	t.Run("deletes when nothing was sold", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, templateID).
			Return(&shared.BundleTemplateSnapshot{ID: templateID, BrandID: brandID}, nil)
		f.reads.EXPECT().CountInstancesByTemplate(gomock.Any(), templateID).Return(int64(0), nil)
		f.bundleTemplates.EXPECT().Delete(gomock.Any(), gomock.Any(), brandID, templateID).Return(nil)

		err := commands.NewBundleTemplateCommands(f.uow).Delete(ctx, brandID, templateID)
		require.NoError(t, err)
	})

	t.Run("refuses when instances were sold", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, templateID).
			Return(&shared.BundleTemplateSnapshot{ID: templateID, BrandID: brandID}, nil)
		f.reads.EXPECT().CountInstancesByTemplate(gomock.Any(), templateID).Return(int64(3), nil)

		err := commands.NewBundleTemplateCommands(f.uow).Delete(ctx, brandID, templateID)
		require.ErrorIs(t, err, commands.ErrTemplateInUse)
	})

	t.Run("unknown template", func(t *testing.T) {
		f := newCatalogFixture(t)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, templateID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := commands.NewBundleTemplateCommands(f.uow).Delete(ctx, brandID, templateID)
		require.ErrorIs(t, err, commands.ErrBundleTemplateNotFound)
	})
}

func TestBundleTemplateUpdate(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.New()

	t.Run("patches only the provided fields", func(t *testing.T) {
		f := newCatalogFixture(t)
		snap := builder.NewBundleTemplateBuilder().BuildSnapshot()
		snap.BrandID = brandID
		newName := "Dinner Set"

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, snap.ID).Return(snap, nil)
		f.bundleTemplates.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tmpl *bundle.Template) error {
				assert.Equal(t, snap.ID, tmpl.ID())
				assert.Equal(t, newName, tmpl.Name())
				assert.Equal(t, snap.Description, tmpl.Description())
				assert.Equal(t, snap.TotalSold, tmpl.TotalSold())
				assert.True(t, tmpl.IsActive())
				return nil
			})

		err := commands.NewBundleTemplateCommands(f.uow).Update(ctx, brandID, snap.ID,
			commands.UpdateBundleTemplateRequest{Name: &newName})
		require.NoError(t, err)
	})

	t.Run("deactivation needs no dependency check", func(t *testing.T) {
		f := newCatalogFixture(t)
		snap := builder.NewBundleTemplateBuilder().BuildSnapshot()
		snap.BrandID = brandID
		inactive := false

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, snap.ID).Return(snap, nil)
		f.bundleTemplates.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tmpl *bundle.Template) error {
				assert.False(t, tmpl.IsActive())
				return nil
			})

		err := commands.NewBundleTemplateCommands(f.uow).Update(ctx, brandID, snap.ID,
			commands.UpdateBundleTemplateRequest{IsActive: &inactive})
		require.NoError(t, err)
	})

	t.Run("replacement items are validated", func(t *testing.T) {
		f := newCatalogFixture(t)
		snap := builder.NewBundleTemplateBuilder().BuildSnapshot()
		snap.BrandID = brandID
		badID := uuid.New()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, snap.ID).Return(snap, nil)
		f.reads.EXPECT().VoucherTemplateByID(gomock.Any(), brandID, badID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := commands.NewBundleTemplateCommands(f.uow).Update(ctx, brandID, snap.ID,
			commands.UpdateBundleTemplateRequest{
				Items: []commands.BundleItemInput{{VoucherTemplateID: badID, Quantity: 1}},
			})
		require.ErrorIs(t, err, commands.ErrVoucherTemplateNotFound)
	})
}
