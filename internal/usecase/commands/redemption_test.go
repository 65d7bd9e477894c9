//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/pkg/clock"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"
	"plateful/tests/common/builder"
	queriesmock "plateful/tests/mock/queries"
	sharedmock "plateful/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type redemptionFixture struct {
	uow              *sharedmock.MockUnitOfWork
	tx               *sharedmock.MockTx
	reads            *sharedmock.MockCommandReads
	bundleTemplates  *sharedmock.MockBundleTemplateRepository
	bundleInstances  *sharedmock.MockBundleInstanceRepository
	voucherTemplates *sharedmock.MockVoucherTemplateRepository
	voucherInstances *sharedmock.MockVoucherInstanceRepository
	ledger           *sharedmock.MockPointsLedger
	bundleQueries    *queriesmock.MockBundleQueries
	sut              commands.RedemptionCommands
}

func newRedemptionFixture(t *testing.T, now time.Time) *redemptionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &redemptionFixture{
		uow:              sharedmock.NewMockUnitOfWork(ctrl),
		tx:               sharedmock.NewMockTx(ctrl),
		reads:            sharedmock.NewMockCommandReads(ctrl),
		bundleTemplates:  sharedmock.NewMockBundleTemplateRepository(ctrl),
		bundleInstances:  sharedmock.NewMockBundleInstanceRepository(ctrl),
		voucherTemplates: sharedmock.NewMockVoucherTemplateRepository(ctrl),
		voucherInstances: sharedmock.NewMockVoucherInstanceRepository(ctrl),
		ledger:           sharedmock.NewMockPointsLedger(ctrl),
		bundleQueries:    queriesmock.NewMockBundleQueries(ctrl),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().BundleTemplates().Return(f.bundleTemplates).AnyTimes()
	f.tx.EXPECT().BundleInstances().Return(f.bundleInstances).AnyTimes()
	f.tx.EXPECT().VoucherTemplates().Return(f.voucherTemplates).AnyTimes()
	f.tx.EXPECT().VoucherInstances().Return(f.voucherInstances).AnyTimes()

	clk := clock.NewMockClock(now)
	f.sut = commands.NewRedemptionCommands(
		f.uow,
		f.ledger,
		bundle.NewFactory(clk),
		commands.NewPurchaseLimitGuard(f.uow),
		commands.NewVoucherMaterializer(f.uow),
		f.bundleQueries,
		clk,
	)
	return f
}

func instanceSnapshotFor(tmpl *shared.BundleTemplateSnapshot, instanceID uuid.UUID, userID *uuid.UUID, purchasedAt time.Time) *shared.BundleInstanceSnapshot {
	return &shared.BundleInstanceSnapshot{
		ID:                  instanceID,
		TemplateID:          tmpl.ID,
		BrandID:             tmpl.BrandID,
		UserID:              userID,
		Name:                tmpl.Name,
		Items:               tmpl.Items,
		VoucherValidityDays: tmpl.VoucherValidityDays,
		PaymentMethod:       "points",
		PurchasedAt:         purchasedAt,
	}
}

func TestRedeemWithPoints(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uuid.New()
	instanceID := uuid.New()
	notFound := infra.WrapRepoErr("not found", nil, infra.KindNotFound)

	t.Run("full saga succeeds", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()
		instSnap := instanceSnapshotFor(tmpl, instanceID, &userID, now)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).
			Return(tmpl, nil).Times(2)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(5000), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.ledger.EXPECT().Debit(gomock.Any(), userID, tmpl.BrandID, int64(800), shared.DebitContext{
			Model: "BundleRedemption",
			RefID: instanceID,
		}).Return(&shared.DebitReceipt{PointsUsed: 800, RemainingPoints: 4200}, nil)
		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(instSnap, nil)
		f.voucherInstances.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.voucherTemplates.EXPECT().IncrementTotalIssued(gomock.Any(), gomock.Any(), tmpl.Items[0].VoucherTemplateID, int32(2)).
			Return(nil)
		f.voucherTemplates.EXPECT().IncrementTotalIssued(gomock.Any(), gomock.Any(), tmpl.Items[1].VoucherTemplateID, int32(1)).
			Return(nil)
		f.bundleQueries.EXPECT().InstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(&queries.BundleInstanceView{ID: instanceID}, nil)

		result, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.NoError(t, err)

		assert.Equal(t, int64(800), result.PointsUsed)
		assert.Equal(t, int64(4200), result.RemainingPoints)
		assert.Equal(t, instanceID, result.Instance.ID)
		assert.Len(t, result.Vouchers, 3, "one voucher per unit of item quantity")
		for _, v := range result.Vouchers {
			require.NotNil(t, v.CreatedBy)
			assert.Equal(t, instanceID, *v.CreatedBy)
			assert.Equal(t, now.AddDate(0, 0, 30), v.ExpiresAt)
			assert.False(t, v.IsUsed)
		}
	})

	t.Run("debit failure compensates the created instance", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(5000), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.ledger.EXPECT().Debit(gomock.Any(), userID, tmpl.BrandID, int64(800), gomock.Any()).
			Return(nil, shared.ErrLedgerInsufficientFunds)
		f.bundleInstances.EXPECT().Delete(gomock.Any(), gomock.Any(), instanceID).Return(nil)
		f.bundleTemplates.EXPECT().DecrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)

		result, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrLedgerDebitFailed)
		require.ErrorIs(t, err, shared.ErrLedgerInsufficientFunds,
			"original debit failure class must survive the saga marker")
	})

	t.Run("compensation still runs when the ledger is down", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(5000), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.ledger.EXPECT().Debit(gomock.Any(), userID, tmpl.BrandID, int64(800), gomock.Any()).
			Return(nil, shared.ErrLedgerUnavailable)
		f.bundleInstances.EXPECT().Delete(gomock.Any(), gomock.Any(), instanceID).Return(nil)
		f.bundleTemplates.EXPECT().DecrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.ErrorIs(t, err, commands.ErrLedgerDebitFailed)
		require.ErrorIs(t, err, shared.ErrLedgerUnavailable)
	})

	t.Run("insufficient balance fails before any debit", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(799), nil)

		result, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrInsufficientPoints)
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()
		instSnap := instanceSnapshotFor(tmpl, instanceID, &userID, now)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).
			Return(tmpl, nil).Times(2)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(800), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.ledger.EXPECT().Debit(gomock.Any(), userID, tmpl.BrandID, int64(800), gomock.Any()).
			Return(&shared.DebitReceipt{PointsUsed: 800, RemainingPoints: 0}, nil)
		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(instSnap, nil)
		f.voucherInstances.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.voucherTemplates.EXPECT().IncrementTotalIssued(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.bundleQueries.EXPECT().InstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(&queries.BundleInstanceView{ID: instanceID}, nil)

		result, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.NoError(t, err)
		assert.Zero(t, result.RemainingPoints)
	})

	t.Run("inactive template rejected before touching the ledger", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().
			With(func(b *builder.BundleTemplateBuilder) { b.IsActive = false }).
			BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.ErrorIs(t, err, commands.ErrTemplateInactive)
	})

	t.Run("unknown template", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		brandID := uuid.New()
		templateID := uuid.New()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), brandID, templateID).Return(nil, notFound)

		_, err := f.sut.RedeemWithPoints(ctx, brandID, templateID, userID)
		require.ErrorIs(t, err, commands.ErrBundleTemplateNotFound)
	})

	t.Run("template without a point price", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().
			With(func(b *builder.BundleTemplateBuilder) { b.PointPrice = nil }).
			BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.ErrorIs(t, err, commands.ErrNoPointPrice)
	})

	t.Run("purchase limit reached", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(5).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(5), nil)

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.ErrorIs(t, err, commands.ErrPurchaseLimitExceeded)
	})

	t.Run("one purchase left under the limit", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(5).BuildSnapshot()
		instSnap := instanceSnapshotFor(tmpl, instanceID, &userID, now)

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).
			Return(tmpl, nil).Times(2)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(4), nil)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(5000), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), tmpl.PurchaseLimitPerUser).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.ledger.EXPECT().Debit(gomock.Any(), userID, tmpl.BrandID, int64(800), gomock.Any()).
			Return(&shared.DebitReceipt{PointsUsed: 800, RemainingPoints: 100}, nil)
		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(instSnap, nil)
		f.voucherInstances.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.voucherTemplates.EXPECT().IncrementTotalIssued(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.bundleQueries.EXPECT().InstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(&queries.BundleInstanceView{ID: instanceID}, nil)

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.NoError(t, err)
	})

	t.Run("concurrent purchase loses the storage-level race", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(1).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(0), nil)
		f.ledger.EXPECT().GetBalance(gomock.Any(), userID, tmpl.BrandID).Return(int64(5000), nil)
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), tmpl.PurchaseLimitPerUser).
			Return(uuid.Nil, infra.WrapRepoErr("purchase limit reached for user", nil, infra.KindConflict))

		_, err := f.sut.RedeemWithPoints(ctx, tmpl.BrandID, tmpl.ID, userID)
		require.ErrorIs(t, err, commands.ErrPurchaseLimitExceeded)
	})
}

func TestCreateCashInstance(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	instanceID := uuid.New()

	t.Run("guest purchase skips the limit entirely", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(1).BuildSnapshot()
		instSnap := instanceSnapshotFor(tmpl, instanceID, nil, now)
		instSnap.PaymentMethod = "cash"

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).
			Return(tmpl, nil).Times(2)
		// Limit must be dropped for anonymous buyers.
		f.bundleInstances.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(instanceID, nil)
		f.bundleTemplates.EXPECT().IncrementTotalSold(gomock.Any(), gomock.Any(), tmpl.ID, int64(1)).
			Return(nil)
		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(instSnap, nil)
		f.voucherInstances.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.voucherTemplates.EXPECT().IncrementTotalIssued(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		f.bundleQueries.EXPECT().InstanceByID(gomock.Any(), tmpl.BrandID, instanceID).
			Return(&queries.BundleInstanceView{ID: instanceID}, nil)

		result, err := f.sut.CreateCashInstance(ctx, tmpl.BrandID, tmpl.ID, nil)
		require.NoError(t, err)

		assert.Zero(t, result.PointsUsed, "cash purchases never touch the ledger")
		assert.Len(t, result.Vouchers, 3)
	})

	t.Run("template without a cash price", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().
			With(func(b *builder.BundleTemplateBuilder) { b.CashPrice = nil }).
			BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)

		_, err := f.sut.CreateCashInstance(ctx, tmpl.BrandID, tmpl.ID, nil)
		require.ErrorIs(t, err, commands.ErrNoCashPrice)
	})

	t.Run("identified buyer is still limit-checked", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		userID := uuid.New()
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(2).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(2), nil)

		_, err := f.sut.CreateCashInstance(ctx, tmpl.BrandID, tmpl.ID, &userID)
		require.ErrorIs(t, err, commands.ErrPurchaseLimitExceeded)
	})
}

func TestCheckPurchaseLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unlimited template", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)

		status, err := f.sut.CheckPurchaseLimit(ctx, tmpl.BrandID, tmpl.ID, &userID)
		require.NoError(t, err)
		assert.True(t, status.CanPurchase)
		assert.Nil(t, status.RemainingLimit)
		assert.Nil(t, status.TotalLimit)
	})

	t.Run("partially used limit", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(5).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(3), nil)

		status, err := f.sut.CheckPurchaseLimit(ctx, tmpl.BrandID, tmpl.ID, &userID)
		require.NoError(t, err)
		assert.True(t, status.CanPurchase)
		assert.Equal(t, int64(3), status.PurchasedCount)
		assert.Equal(t, int32(2), *status.RemainingLimit)
		assert.Equal(t, int32(5), *status.TotalLimit)
	})

	t.Run("exhausted limit", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(5).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(5), nil)

		status, err := f.sut.CheckPurchaseLimit(ctx, tmpl.BrandID, tmpl.ID, &userID)
		require.NoError(t, err)
		assert.False(t, status.CanPurchase)
		assert.Zero(t, *status.RemainingLimit)
	})

	t.Run("remaining never goes negative when over the cap", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(2).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)
		f.reads.EXPECT().CountInstancesByTemplateAndUser(gomock.Any(), tmpl.ID, userID).
			Return(int64(7), nil)

		status, err := f.sut.CheckPurchaseLimit(ctx, tmpl.BrandID, tmpl.ID, &userID)
		require.NoError(t, err)
		assert.False(t, status.CanPurchase)
		assert.Zero(t, *status.RemainingLimit)
	})

	t.Run("guest check always passes", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		tmpl := builder.NewBundleTemplateBuilder().WithLimit(1).BuildSnapshot()

		f.reads.EXPECT().BundleTemplateByID(gomock.Any(), tmpl.BrandID, tmpl.ID).Return(tmpl, nil)

		status, err := f.sut.CheckPurchaseLimit(ctx, tmpl.BrandID, tmpl.ID, nil)
		require.NoError(t, err)
		assert.True(t, status.CanPurchase)
	})
}

func TestUpdateInstanceNote(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	brandID := uuid.New()
	instanceID := uuid.New()
	userID := uuid.New()

	t.Run("owner can annotate", func(t *testing.T) {
		f := newRedemptionFixture(t, now)

		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), brandID, instanceID).
			Return(&shared.BundleInstanceSnapshot{ID: instanceID, UserID: &userID}, nil)
		f.bundleInstances.EXPECT().UpdateNote(gomock.Any(), gomock.Any(), brandID, instanceID, "for the team").
			Return(nil)

		err := f.sut.UpdateInstanceNote(ctx, brandID, instanceID, userID, "for the team")
		require.NoError(t, err)
	})

	t.Run("someone else's instance looks like it does not exist", func(t *testing.T) {
		f := newRedemptionFixture(t, now)
		otherUser := uuid.New()

		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), brandID, instanceID).
			Return(&shared.BundleInstanceSnapshot{ID: instanceID, UserID: &otherUser}, nil)

		err := f.sut.UpdateInstanceNote(ctx, brandID, instanceID, userID, "sneaky")
		require.ErrorIs(t, err, commands.ErrBundleInstanceNotFound)
	})

	t.Run("guest instance has no owner and cannot be annotated", func(t *testing.T) {
		f := newRedemptionFixture(t, now)

		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), brandID, instanceID).
			Return(&shared.BundleInstanceSnapshot{ID: instanceID, UserID: nil}, nil)

		err := f.sut.UpdateInstanceNote(ctx, brandID, instanceID, userID, "mine now")
		require.ErrorIs(t, err, commands.ErrBundleInstanceNotFound)
	})

	t.Run("unknown instance", func(t *testing.T) {
		f := newRedemptionFixture(t, now)

		f.reads.EXPECT().BundleInstanceByID(gomock.Any(), brandID, instanceID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := f.sut.UpdateInstanceNote(ctx, brandID, instanceID, userID, "note")
		require.ErrorIs(t, err, commands.ErrBundleInstanceNotFound)
	})
}
