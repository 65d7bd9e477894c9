//go:build unit

package bundle_test

import (
	"testing"
	"time"

	"plateful/internal/domain/bundle"
	"plateful/internal/pkg/clock"
	"plateful/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateInstance(t *testing.T) {
	purchaseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	factory := bundle.NewFactory(clock.NewMockClock(purchaseTime))
	userID := uuid.New()

	t.Run("points purchase", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentPoints)
		require.NoError(t, err)
		require.NotNil(t, inst)

		assert.NotEqual(t, uuid.Nil, inst.ID())
		assert.Equal(t, tmpl.ID(), inst.TemplateID())
		assert.Equal(t, tmpl.BrandID(), inst.BrandID())
		require.NotNil(t, inst.UserID())
		assert.Equal(t, userID, *inst.UserID())
		assert.Equal(t, bundle.PaymentPoints, inst.PaymentMethod())
		assert.Equal(t, int64(800), inst.FinalPrice())
		assert.Equal(t, purchaseTime, inst.PurchasedAt())
	})

	t.Run("cash purchase uses the cash price", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentCash)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), inst.FinalPrice())
	})

	t.Run("inactive template is rejected", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().
			With(func(b *builder.BundleTemplateBuilder) { b.IsActive = false }).
			BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentCash)
		require.Nil(t, inst)
		require.ErrorIs(t, err, bundle.ErrTemplateInactive)
	})

	t.Run("missing price for method is rejected", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().
			With(func(b *builder.BundleTemplateBuilder) { b.PointPrice = nil }).
			BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentPoints)
		require.Nil(t, inst)
		require.ErrorIs(t, err, bundle.ErrNoValidPrice)
	})

	t.Run("snapshot captures the template contents", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentCash)
		require.NoError(t, err)

		snap := inst.Snapshot()
		assert.Equal(t, tmpl.Name(), snap.Name)
		assert.Equal(t, tmpl.Description(), snap.Description)
		require.NotNil(t, snap.CashPrice)
		assert.Equal(t, tmpl.CashPrice().Selling, snap.CashPrice.Selling)
		require.NotNil(t, snap.PointPrice)
		assert.Equal(t, tmpl.PointPrice().Selling, snap.PointPrice.Selling)
		assert.Equal(t, tmpl.Items(), snap.Items)
		assert.Equal(t, tmpl.VoucherValidityDays(), snap.VoucherValidityDays)
	})

	t.Run("snapshot survives later template edits", func(t *testing.T) {
		items := []bundle.Item{
			{VoucherTemplateID: uuid.New(), Quantity: 2, DisplayName: "Main dish"},
		}
		tmpl := builder.NewBundleTemplateBuilder().WithItems(items...).BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, &userID, bundle.PaymentCash)
		require.NoError(t, err)

		// Mutate the template's backing data after the sale.
		items[0].Quantity = 99
		items[0].DisplayName = "changed"
		tmpl.CashPrice().Selling = 1

		snap := inst.Snapshot()
		assert.Equal(t, int32(2), snap.Items[0].Quantity)
		assert.Equal(t, "Main dish", snap.Items[0].DisplayName)
		assert.Equal(t, int64(1000), snap.CashPrice.Selling)
		assert.Equal(t, int64(1000), inst.FinalPrice())
	})

	t.Run("anonymous purchase keeps nil user", func(t *testing.T) {
		tmpl := builder.NewBundleTemplateBuilder().BuildReconstructed()

		inst, err := factory.CreateInstance(tmpl, nil, bundle.PaymentCash)
		require.NoError(t, err)
		assert.Nil(t, inst.UserID())
	})
}

func TestTotalVoucherCount(t *testing.T) {
	purchaseTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	factory := bundle.NewFactory(clock.NewMockClock(purchaseTime))

	cases := []struct {
		name     string
		items    []bundle.Item
		expected int32
	}{
		{
			name:     "single item single quantity",
			items:    []bundle.Item{{VoucherTemplateID: uuid.New(), Quantity: 1}},
			expected: 1,
		},
		{
			name: "quantities are summed across items",
			items: []bundle.Item{
				{VoucherTemplateID: uuid.New(), Quantity: 3},
				{VoucherTemplateID: uuid.New(), Quantity: 2},
				{VoucherTemplateID: uuid.New(), Quantity: 1},
			},
			expected: 6,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tmpl := builder.NewBundleTemplateBuilder().WithItems(c.items...).BuildReconstructed()

			inst, err := factory.CreateInstance(tmpl, nil, bundle.PaymentCash)
			require.NoError(t, err)
			assert.Equal(t, c.expected, inst.TotalVoucherCount())
		})
	}
}

func TestInstanceNote(t *testing.T) {
	inst := bundle.ReconstructInstance(
		uuid.New(), uuid.New(), uuid.New(), nil,
		bundle.Snapshot{Name: "Lunch Set"},
		bundle.PaymentCash, 1000, "", time.Now(),
	)

	assert.Empty(t, inst.Note())
	inst.SetNote("gift for a friend")
	assert.Equal(t, "gift for a friend", inst.Note())
}
