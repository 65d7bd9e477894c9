//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestVoucherTemplate(t *testing.T, db DBLike, brandID uuid.UUID, name string, active bool) uuid.UUID {
	t.Helper()

	templateID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO voucher_templates (id, brand_id, name, is_active) VALUES ($1, $2, $3, $4)",
		templateID, brandID, name, active)
	require.NoError(t, err)

	return templateID
}

type BundleItemSeed struct {
	VoucherTemplateID uuid.UUID
	Quantity          int32
	DisplayName       string
}

type BundleTemplateSeed struct {
	Name                 string
	CashSelling          *int64
	PointSelling         *int64
	VoucherValidityDays  int32
	PurchaseLimitPerUser *int32
	Active               bool
	Items                []BundleItemSeed
}

func CreateTestBundleTemplate(t *testing.T, db DBLike, brandID uuid.UUID, seed BundleTemplateSeed) uuid.UUID {
	t.Helper()

	templateID := uuid.New()
	ctx := context.Background()

	// Original price mirrors selling price; the discount split is not
	// interesting for fixtures.
	_, err := db.Exec(ctx, `
		INSERT INTO bundle_templates
		    (id, brand_id, name, cash_price_original, cash_price_selling,
		     point_price_original, point_price_selling,
		     voucher_validity_days, purchase_limit_per_user, is_active)
		VALUES ($1, $2, $3, $4, $4, $5, $5, $6, $7, $8)`,
		templateID, brandID, seed.Name, seed.CashSelling, seed.PointSelling,
		seed.VoucherValidityDays, seed.PurchaseLimitPerUser, seed.Active)
	require.NoError(t, err)

	for i, item := range seed.Items {
		_, err := db.Exec(ctx, `
			INSERT INTO bundle_template_items
			    (bundle_template_id, voucher_template_id, quantity, display_name, position)
			VALUES ($1, $2, $3, $4, $5)`,
			templateID, item.VoucherTemplateID, item.Quantity, item.DisplayName, i)
		require.NoError(t, err)
	}

	return templateID
}

func CreateTestVoucherInstance(t *testing.T, db DBLike, brandID, templateID uuid.UUID, userID *uuid.UUID, used bool) uuid.UUID {
	t.Helper()

	instanceID := uuid.New()
	ctx := context.Background()

	var usedAt *time.Time
	if used {
		now := time.Now().UTC()
		usedAt = &now
	}
	_, err := db.Exec(ctx, `
		INSERT INTO voucher_instances (id, template_id, brand_id, user_id, expires_at, is_used, used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		instanceID, templateID, brandID, userID, time.Now().UTC().AddDate(0, 0, 30), used, usedAt)
	require.NoError(t, err)

	return instanceID
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int64 {
	t.Helper()

	var count int64
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	err := db.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
