//go:build unit

package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"plateful/internal/infra/ledger"
	"plateful/internal/pkg/config"
	"plateful/internal/usecase/shared"
	"plateful/tests/common/ledgertest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) (*ledger.HTTPGateway, *ledgertest.Server) {
	t.Helper()
	srv := ledgertest.NewServer()
	t.Cleanup(srv.Close)

	gw := ledger.NewHTTPGateway(config.LedgerConfig{
		BaseURL: srv.URL(),
		Timeout: 2 * time.Second,
	})
	return gw, srv
}

func TestHTTPGatewayGetBalance(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.New()
	userID := uuid.New()

	t.Run("returns the ledger balance", func(t *testing.T) {
		gw, srv := newGateway(t)
		srv.SetBalance(brandID, userID, 1500)

		balance, err := gw.GetBalance(ctx, userID, brandID)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
	})

	t.Run("unreachable ledger reports unavailability", func(t *testing.T) {
		srv := ledgertest.NewServer()
		gw := ledger.NewHTTPGateway(config.LedgerConfig{
			BaseURL: srv.URL(),
			Timeout: 2 * time.Second,
		})
		srv.Close()

		_, err := gw.GetBalance(ctx, userID, brandID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrLedgerUnavailable))
	})
}

func TestHTTPGatewayDebit(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.New()
	userID := uuid.New()
	refID := uuid.New()

	t.Run("successful debit returns the receipt and records the reference", func(t *testing.T) {
		gw, srv := newGateway(t)
		srv.SetBalance(brandID, userID, 1000)

		receipt, err := gw.Debit(ctx, userID, brandID, 800, shared.DebitContext{
			Model: "BundleRedemption",
			RefID: refID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(800), receipt.PointsUsed)
		assert.Equal(t, int64(200), receipt.RemainingPoints)

		debits := srv.Debits()
		require.Len(t, debits, 1)
		assert.Equal(t, refID, debits[0].RefID)
		assert.Equal(t, "BundleRedemption", debits[0].Model)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		gw, srv := newGateway(t)
		srv.SetBalance(brandID, userID, 100)

		receipt, err := gw.Debit(ctx, userID, brandID, 800, shared.DebitContext{RefID: refID})
		require.Nil(t, receipt)
		require.ErrorIs(t, err, shared.ErrLedgerInsufficientFunds)
	})

	t.Run("conflict response", func(t *testing.T) {
		gw, srv := newGateway(t)
		srv.SetBalance(brandID, userID, 1000)
		srv.FailNextDebitWith(409)

		_, err := gw.Debit(ctx, userID, brandID, 800, shared.DebitContext{RefID: refID})
		require.ErrorIs(t, err, shared.ErrLedgerConflict)
	})

	t.Run("server error classifies as unavailable", func(t *testing.T) {
		gw, srv := newGateway(t)
		srv.SetBalance(brandID, userID, 1000)
		srv.FailNextDebitWith(500)

		_, err := gw.Debit(ctx, userID, brandID, 800, shared.DebitContext{RefID: refID})
		require.ErrorIs(t, err, shared.ErrLedgerUnavailable)
		assert.Equal(t, int64(1000), srv.Balance(brandID, userID), "failed debit must not move the balance")
	})
}
