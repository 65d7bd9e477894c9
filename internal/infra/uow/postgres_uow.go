package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"plateful/internal/infra/db"
	"plateful/internal/infra/readstore"
	"plateful/internal/infra/writerepo"
	"plateful/internal/pkg/errs"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if commitErr := pgxTx.Commit(ctx); commitErr != nil {
				if isRetryableError(commitErr) && attempt < maxRetries {
					sleepWithJitter(ctx, base, attempt)
					continue
				}
				return errs.Mark(commitErr, errTransactionCommit)
			}
			return nil
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr.Error())
		}

		if isRetryableError(err) && attempt < maxRetries {
			sleepWithJitter(ctx, base, attempt)
			continue
		}
		return err
	}

	return errMaxRetriesExceeded
}

func sleepWithJitter(ctx context.Context, base time.Duration, attempt int) {
	backoff := base * time.Duration(1<<attempt)
	jitter := time.Duration(secureRandomInt64(int64(backoff / 2)))

	select {
	case <-ctx.Done():
	case <-time.After(backoff + jitter):
	}
}

func secureRandomInt64(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bundleTemplateRepo  shared.BundleTemplateRepository
	bundleInstanceRepo  shared.BundleInstanceRepository
	voucherTemplateRepo shared.VoucherTemplateRepository
	voucherInstanceRepo shared.VoucherInstanceRepository
	commandReads        shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) BundleTemplates() shared.BundleTemplateRepository {
	if t.bundleTemplateRepo == nil {
		t.bundleTemplateRepo = writerepo.NewBundleTemplateRepository()
	}
	return t.bundleTemplateRepo
}

func (t *pgTx) BundleInstances() shared.BundleInstanceRepository {
	if t.bundleInstanceRepo == nil {
		t.bundleInstanceRepo = writerepo.NewBundleInstanceRepository()
	}
	return t.bundleInstanceRepo
}

func (t *pgTx) VoucherTemplates() shared.VoucherTemplateRepository {
	if t.voucherTemplateRepo == nil {
		t.voucherTemplateRepo = writerepo.NewVoucherTemplateRepository()
	}
	return t.voucherTemplateRepo
}

func (t *pgTx) VoucherInstances() shared.VoucherInstanceRepository {
	if t.voucherInstanceRepo == nil {
		t.voucherInstanceRepo = writerepo.NewVoucherInstanceRepository()
	}
	return t.voucherInstanceRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	bundleStore  *readstore.BundleReadStore
	voucherStore *readstore.VoucherReadStore
}

func (r *commandReads) bundles() *readstore.BundleReadStore {
	if r.bundleStore == nil {
		r.bundleStore = readstore.NewBundleReadStore(r.dbtx)
	}
	return r.bundleStore
}

func (r *commandReads) vouchers() *readstore.VoucherReadStore {
	if r.voucherStore == nil {
		r.voucherStore = readstore.NewVoucherReadStore(r.dbtx)
	}
	return r.voucherStore
}

func (r *commandReads) BundleTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*shared.BundleTemplateSnapshot, error) {
	view, err := r.bundles().FindTemplateByID(ctx, brandID, id)
	if err != nil {
		return nil, err
	}

	items := make([]shared.BundleItemSnapshot, len(view.Items))
	for i, it := range view.Items {
		items[i] = shared.BundleItemSnapshot{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}

	return &shared.BundleTemplateSnapshot{
		ID:                   view.ID,
		BrandID:              view.BrandID,
		Name:                 view.Name,
		Description:          view.Description,
		CashPrice:            priceSnapshot(view.CashPrice),
		PointPrice:           priceSnapshot(view.PointPrice),
		Items:                items,
		VoucherValidityDays:  view.VoucherValidityDays,
		PurchaseLimitPerUser: view.PurchaseLimitPerUser,
		IsActive:             view.IsActive,
		TotalSold:            view.TotalSold,
	}, nil
}

func (r *commandReads) VoucherTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*shared.VoucherTemplateSnapshot, error) {
	view, err := r.vouchers().FindTemplateByID(ctx, brandID, id)
	if err != nil {
		return nil, err
	}
	return &shared.VoucherTemplateSnapshot{
		ID:          view.ID,
		BrandID:     view.BrandID,
		Name:        view.Name,
		Description: view.Description,
		IsActive:    view.IsActive,
		TotalIssued: view.TotalIssued,
	}, nil
}

func (r *commandReads) BundleInstanceByID(ctx context.Context, brandID, id uuid.UUID) (*shared.BundleInstanceSnapshot, error) {
	view, err := r.bundles().FindInstanceByID(ctx, brandID, id)
	if err != nil {
		return nil, err
	}

	items := make([]shared.BundleItemSnapshot, len(view.Items))
	var voucherCount int64
	for i, it := range view.Items {
		items[i] = shared.BundleItemSnapshot{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
		voucherCount += int64(it.Quantity)
	}

	return &shared.BundleInstanceSnapshot{
		ID:                  view.ID,
		TemplateID:          view.TemplateID,
		BrandID:             view.BrandID,
		UserID:              view.UserID,
		Name:                view.Name,
		Description:         view.Description,
		Items:               items,
		VoucherValidityDays: view.VoucherValidityDays,
		PaymentMethod:       view.PaymentMethod,
		FinalPrice:          view.FinalPrice,
		PurchasedAt:         view.PurchasedAt,
		VoucherCount:        voucherCount,
	}, nil
}

func (r *commandReads) CountInstancesByTemplateAndUser(ctx context.Context, templateID, userID uuid.UUID) (int64, error) {
	return r.bundles().CountByTemplateAndUser(ctx, templateID, userID)
}

func (r *commandReads) CountInstancesByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	return r.bundles().CountByTemplate(ctx, templateID)
}

func (r *commandReads) CountUnusedVouchersByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	return r.vouchers().CountUnusedByTemplate(ctx, templateID)
}

func (r *commandReads) CountBundlesReferencingVoucherTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	return r.bundles().CountReferencingVoucherTemplate(ctx, templateID)
}

func priceSnapshot(v *queries.PriceView) *shared.PriceSnapshot {
	if v == nil {
		return nil
	}
	return &shared.PriceSnapshot{Original: v.Original, Selling: v.Selling}
}
