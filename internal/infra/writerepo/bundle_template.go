package writerepo

import (
	"context"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/infra/db"

	"github.com/google/uuid"
)

type BundleTemplateRepository struct{}

func NewBundleTemplateRepository() *BundleTemplateRepository {
	return &BundleTemplateRepository{}
}

// created_at/updated_at are stamped by the schema defaults.
const insertBundleTemplateSQL = `
INSERT INTO bundle_templates (
	id, brand_id, name, description,
	cash_price_original, cash_price_selling,
	point_price_original, point_price_selling,
	voucher_validity_days, purchase_limit_per_user,
	is_active, total_sold
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

const insertBundleTemplateItemSQL = `
INSERT INTO bundle_template_items (
	bundle_template_id, voucher_template_id, quantity, display_name, position
) VALUES ($1, $2, $3, $4, $5)
`

func (r *BundleTemplateRepository) Create(ctx context.Context, dbtx db.DBTX, t *bundle.Template) (uuid.UUID, error) {
	cashOriginal, cashSelling := priceColumns(t.CashPrice())
	pointOriginal, pointSelling := priceColumns(t.PointPrice())

	_, err := dbtx.Exec(ctx, insertBundleTemplateSQL,
		t.ID(), t.BrandID(), t.Name(), t.Description(),
		cashOriginal, cashSelling, pointOriginal, pointSelling,
		t.VoucherValidityDays(), t.PurchaseLimitPerUser(),
		t.IsActive(), t.TotalSold(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create bundle template", err)
	}

	if err := r.insertItems(ctx, dbtx, t.ID(), t.Items()); err != nil {
		return uuid.Nil, err
	}

	return t.ID(), nil
}

const updateBundleTemplateSQL = `
UPDATE bundle_templates SET
	name = $3,
	description = $4,
	cash_price_original = $5,
	cash_price_selling = $6,
	point_price_original = $7,
	point_price_selling = $8,
	voucher_validity_days = $9,
	purchase_limit_per_user = $10,
	is_active = $11,
	updated_at = now()
WHERE id = $1 AND brand_id = $2
`

func (r *BundleTemplateRepository) Update(ctx context.Context, dbtx db.DBTX, t *bundle.Template) error {
	cashOriginal, cashSelling := priceColumns(t.CashPrice())
	pointOriginal, pointSelling := priceColumns(t.PointPrice())

	tag, err := dbtx.Exec(ctx, updateBundleTemplateSQL,
		t.ID(), t.BrandID(), t.Name(), t.Description(),
		cashOriginal, cashSelling, pointOriginal, pointSelling,
		t.VoucherValidityDays(), t.PurchaseLimitPerUser(),
		t.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to update bundle template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle template not found", nil, infra.KindNotFound)
	}

	// Items are replaced wholesale; positions keep the request order.
	if _, err := dbtx.Exec(ctx, `DELETE FROM bundle_template_items WHERE bundle_template_id = $1`, t.ID()); err != nil {
		return wrapPgErr("failed to clear bundle template items", err)
	}
	return r.insertItems(ctx, dbtx, t.ID(), t.Items())
}

func (r *BundleTemplateRepository) Delete(ctx context.Context, dbtx db.DBTX, brandID, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bundle_templates WHERE id = $1 AND brand_id = $2`, id, brandID)
	if err != nil {
		return wrapPgErr("failed to delete bundle template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BundleTemplateRepository) IncrementTotalSold(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int64) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bundle_templates SET total_sold = total_sold + $2, updated_at = now() WHERE id = $1`,
		id, by,
	)
	if err != nil {
		return wrapPgErr("failed to increment total sold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BundleTemplateRepository) DecrementTotalSold(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int64) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bundle_templates SET total_sold = GREATEST(total_sold - $2, 0), updated_at = now() WHERE id = $1`,
		id, by,
	)
	if err != nil {
		return wrapPgErr("failed to decrement total sold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BundleTemplateRepository) insertItems(ctx context.Context, dbtx db.DBTX, templateID uuid.UUID, items []bundle.Item) error {
	for i, item := range items {
		_, err := dbtx.Exec(ctx, insertBundleTemplateItemSQL,
			templateID, item.VoucherTemplateID, item.Quantity, item.DisplayName, i,
		)
		if err != nil {
			return wrapPgErr("failed to create bundle template item", err)
		}
	}
	return nil
}

func priceColumns(p *bundle.Price) (*int64, *int64) {
	if p == nil {
		return nil, nil
	}
	original, selling := p.Original, p.Selling
	return &original, &selling
}
