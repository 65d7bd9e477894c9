package writerepo

import (
	"context"

	"plateful/internal/domain/bundle"
	"plateful/internal/infra"
	"plateful/internal/infra/db"
	"plateful/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BundleInstanceRepository struct{}

func NewBundleInstanceRepository() *BundleInstanceRepository {
	return &BundleInstanceRepository{}
}

// The INSERT...SELECT is conditional on the per-user count staying under
// the limit, so two concurrent purchases cannot both slip past the guard.
const insertBundleInstanceSQL = `
INSERT INTO bundle_instances (
	id, template_id, brand_id, user_id, name, description,
	cash_price_original, cash_price_selling,
	point_price_original, point_price_selling,
	voucher_validity_days, payment_method, final_price, note, purchased_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
WHERE $16::int IS NULL
   OR (
	SELECT count(*) FROM bundle_instances
	WHERE template_id = $2 AND user_id = $4
   ) < $16::int
RETURNING id
`

const insertBundleInstanceItemSQL = `
INSERT INTO bundle_instance_items (
	bundle_instance_id, voucher_template_id, quantity, display_name, position
) VALUES ($1, $2, $3, $4, $5)
`

func (r *BundleInstanceRepository) Create(ctx context.Context, dbtx db.DBTX, inst *bundle.Instance, limit *int32) (uuid.UUID, error) {
	snap := inst.Snapshot()
	cashOriginal, cashSelling := priceColumns(snap.CashPrice)
	pointOriginal, pointSelling := priceColumns(snap.PointPrice)

	var note *string
	if inst.Note() != "" {
		n := inst.Note()
		note = &n
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBundleInstanceSQL,
		inst.ID(), inst.TemplateID(), inst.BrandID(), inst.UserID(),
		snap.Name, snap.Description,
		cashOriginal, cashSelling, pointOriginal, pointSelling,
		snap.VoucherValidityDays, inst.PaymentMethod().String(),
		inst.FinalPrice(), note, inst.PurchasedAt(),
		limit,
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("purchase limit reached for user", nil, infra.KindConflict)
		}
		return uuid.Nil, wrapPgErr("failed to create bundle instance", err)
	}

	for i, item := range snap.Items {
		_, err := dbtx.Exec(ctx, insertBundleInstanceItemSQL,
			id, item.VoucherTemplateID, item.Quantity, item.DisplayName, i,
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to create bundle instance item", err)
		}
	}

	return id, nil
}

// Delete refuses to remove an instance that vouchers still reference, so a
// compensation cannot strand issued vouchers.
const deleteBundleInstanceSQL = `
DELETE FROM bundle_instances bi
WHERE bi.id = $1
  AND NOT EXISTS (
	SELECT 1 FROM voucher_instances vi WHERE vi.created_by = bi.id
  )
`

func (r *BundleInstanceRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteBundleInstanceSQL, id)
	if err != nil {
		return wrapPgErr("failed to delete bundle instance", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := dbtx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bundle_instances WHERE id = $1)`, id,
		).Scan(&exists); checkErr != nil {
			return wrapPgErr("failed to check bundle instance existence", checkErr)
		}
		if exists {
			return infra.WrapRepoErr("bundle instance still has vouchers", nil, infra.KindConflict)
		}
		return infra.WrapRepoErr("bundle instance not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BundleInstanceRepository) UpdateNote(ctx context.Context, dbtx db.DBTX, brandID, id uuid.UUID, note string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bundle_instances SET note = $3 WHERE id = $1 AND brand_id = $2`,
		id, brandID, note,
	)
	if err != nil {
		return wrapPgErr("failed to update bundle instance note", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bundle instance not found", nil, infra.KindNotFound)
	}
	return nil
}
