package readstore

import (
	"context"

	"plateful/internal/infra"
	"plateful/internal/infra/db"
	"plateful/internal/pkg/pgconv"
	"plateful/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BundleReadStore serves both the query side and the command side's
// validation reads for bundle templates and instances.
type BundleReadStore struct {
	db db.DBTX
}

func NewBundleReadStore(dbtx db.DBTX) *BundleReadStore {
	return &BundleReadStore{db: dbtx}
}

const findBundleTemplateSQL = `
SELECT id, brand_id, name, description,
	cash_price_original, cash_price_selling,
	point_price_original, point_price_selling,
	voucher_validity_days, purchase_limit_per_user,
	is_active, total_sold, created_at, updated_at
FROM bundle_templates
WHERE id = $1 AND brand_id = $2
`

func (r *BundleReadStore) FindTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*queries.BundleTemplateView, error) {
	var (
		view                        pgBundleTemplateRow
		createdAt, updatedAt        pgtype.Timestamptz
		purchaseLimit               pgtype.Int4
		cashOriginal, cashSelling   pgtype.Int8
		pointOriginal, pointSelling pgtype.Int8
	)
	err := r.db.QueryRow(ctx, findBundleTemplateSQL, id, brandID).Scan(
		&view.ID, &view.BrandID, &view.Name, &view.Description,
		&cashOriginal, &cashSelling, &pointOriginal, &pointSelling,
		&view.VoucherValidityDays, &purchaseLimit,
		&view.IsActive, &view.TotalSold, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle template", err)
	}

	items, err := r.templateItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &queries.BundleTemplateView{
		ID:                   view.ID,
		BrandID:              view.BrandID,
		Name:                 view.Name,
		Description:          view.Description,
		CashPrice:            toPriceView(cashOriginal, cashSelling),
		PointPrice:           toPriceView(pointOriginal, pointSelling),
		Items:                items,
		VoucherValidityDays:  view.VoucherValidityDays,
		PurchaseLimitPerUser: pgconv.Int32PtrFromPgtype(purchaseLimit),
		IsActive:             view.IsActive,
		TotalSold:            view.TotalSold,
		CreatedAt:            pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:            pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

const listBundleTemplatesSQL = `
SELECT id, name,
	cash_price_original, cash_price_selling,
	point_price_original, point_price_selling,
	is_active, total_sold, created_at
FROM bundle_templates
WHERE brand_id = $1 AND ($2::bool = false OR is_active)
ORDER BY created_at DESC
`

func (r *BundleReadStore) ListTemplatesByBrand(ctx context.Context, brandID uuid.UUID, activeOnly bool) ([]*queries.BundleTemplateListItem, error) {
	rows, err := r.db.Query(ctx, listBundleTemplatesSQL, brandID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle templates", err)
	}
	defer rows.Close()

	var result []*queries.BundleTemplateListItem
	for rows.Next() {
		var (
			item                        queries.BundleTemplateListItem
			createdAt                   pgtype.Timestamptz
			cashOriginal, cashSelling   pgtype.Int8
			pointOriginal, pointSelling pgtype.Int8
		)
		if err := rows.Scan(
			&item.ID, &item.Name,
			&cashOriginal, &cashSelling, &pointOriginal, &pointSelling,
			&item.IsActive, &item.TotalSold, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bundle template", err)
		}
		item.CashPrice = toPriceView(cashOriginal, cashSelling)
		item.PointPrice = toPriceView(pointOriginal, pointSelling)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bundle templates", err)
	}
	return result, nil
}

const findBundleInstanceSQL = `
SELECT id, template_id, brand_id, user_id, name, description,
	voucher_validity_days, payment_method, final_price, note, purchased_at
FROM bundle_instances
WHERE id = $1 AND brand_id = $2
`

func (r *BundleReadStore) FindInstanceByID(ctx context.Context, brandID, id uuid.UUID) (*queries.BundleInstanceView, error) {
	view, err := r.scanInstanceRow(r.db.QueryRow(ctx, findBundleInstanceSQL, id, brandID))
	if err != nil {
		return nil, err
	}

	items, err := r.instanceItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

const listBundleInstancesByUserSQL = `
SELECT id, template_id, brand_id, user_id, name, description,
	voucher_validity_days, payment_method, final_price, note, purchased_at
FROM bundle_instances
WHERE brand_id = $1 AND user_id = $2
ORDER BY purchased_at DESC
`

func (r *BundleReadStore) ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*queries.BundleInstanceView, error) {
	rows, err := r.db.Query(ctx, listBundleInstancesByUserSQL, brandID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle instances", err)
	}
	defer rows.Close()

	var result []*queries.BundleInstanceView
	for rows.Next() {
		view, err := r.scanInstanceRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bundle instances", err)
	}

	for _, view := range result {
		items, err := r.instanceItems(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items
	}
	return result, nil
}

func (r *BundleReadStore) CountByTemplateAndUser(ctx context.Context, templateID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM bundle_instances WHERE template_id = $1 AND user_id = $2`,
		templateID, userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user bundle instances", err)
	}
	return count, nil
}

func (r *BundleReadStore) CountByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM bundle_instances WHERE template_id = $1`,
		templateID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bundle instances", err)
	}
	return count, nil
}

func (r *BundleReadStore) CountReferencingVoucherTemplate(ctx context.Context, voucherTemplateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(DISTINCT bundle_template_id) FROM bundle_template_items WHERE voucher_template_id = $1`,
		voucherTemplateID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count referencing bundle templates", err)
	}
	return count, nil
}

const listTemplateItemsSQL = `
SELECT voucher_template_id, quantity, display_name
FROM bundle_template_items
WHERE bundle_template_id = $1
ORDER BY position
`

func (r *BundleReadStore) templateItems(ctx context.Context, templateID uuid.UUID) ([]queries.BundleItemView, error) {
	return r.items(ctx, listTemplateItemsSQL, templateID)
}

const listInstanceItemsSQL = `
SELECT voucher_template_id, quantity, display_name
FROM bundle_instance_items
WHERE bundle_instance_id = $1
ORDER BY position
`

func (r *BundleReadStore) instanceItems(ctx context.Context, instanceID uuid.UUID) ([]queries.BundleItemView, error) {
	return r.items(ctx, listInstanceItemsSQL, instanceID)
}

func (r *BundleReadStore) items(ctx context.Context, sql string, ownerID uuid.UUID) ([]queries.BundleItemView, error) {
	rows, err := r.db.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle items", err)
	}
	defer rows.Close()

	items := []queries.BundleItemView{}
	for rows.Next() {
		var item queries.BundleItemView
		if err := rows.Scan(&item.VoucherTemplateID, &item.Quantity, &item.DisplayName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bundle item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bundle items", err)
	}
	return items, nil
}

type pgBundleTemplateRow struct {
	ID                  uuid.UUID
	BrandID             uuid.UUID
	Name                string
	Description         string
	VoucherValidityDays int32
	IsActive            bool
	TotalSold           int64
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BundleReadStore) scanInstanceRow(row rowScanner) (*queries.BundleInstanceView, error) {
	var (
		view        queries.BundleInstanceView
		userID      pgtype.UUID
		note        pgtype.Text
		purchasedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.TemplateID, &view.BrandID, &userID,
		&view.Name, &view.Description, &view.VoucherValidityDays,
		&view.PaymentMethod, &view.FinalPrice, &note, &purchasedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle instance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle instance", err)
	}
	view.UserID = pgconv.UUIDPtrFromPgtype(userID)
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)
	return &view, nil
}

func toPriceView(original, selling pgtype.Int8) *queries.PriceView {
	if !original.Valid || !selling.Valid {
		return nil
	}
	return &queries.PriceView{Original: original.Int64, Selling: selling.Int64}
}
