package writerepo

import (
	"context"

	"plateful/internal/domain/voucher"
	"plateful/internal/infra"
	"plateful/internal/infra/db"

	"github.com/google/uuid"
)

type VoucherTemplateRepository struct{}

func NewVoucherTemplateRepository() *VoucherTemplateRepository {
	return &VoucherTemplateRepository{}
}

// created_at/updated_at are stamped by the schema defaults.
const insertVoucherTemplateSQL = `
INSERT INTO voucher_templates (
	id, brand_id, name, description, is_active, total_issued
) VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *VoucherTemplateRepository) Create(ctx context.Context, dbtx db.DBTX, t *voucher.Template) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, insertVoucherTemplateSQL,
		t.ID(), t.BrandID(), t.Name(), t.Description(),
		t.IsActive(), t.TotalIssued(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create voucher template", err)
	}
	return t.ID(), nil
}

const updateVoucherTemplateSQL = `
UPDATE voucher_templates SET
	name = $3,
	description = $4,
	is_active = $5,
	updated_at = now()
WHERE id = $1 AND brand_id = $2
`

func (r *VoucherTemplateRepository) Update(ctx context.Context, dbtx db.DBTX, t *voucher.Template) error {
	tag, err := dbtx.Exec(ctx, updateVoucherTemplateSQL,
		t.ID(), t.BrandID(), t.Name(), t.Description(), t.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to update voucher template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher template not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VoucherTemplateRepository) IncrementTotalIssued(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int32) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE voucher_templates SET total_issued = total_issued + $2, updated_at = now() WHERE id = $1`,
		id, by,
	)
	if err != nil {
		return wrapPgErr("failed to increment total issued", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("voucher template not found", nil, infra.KindNotFound)
	}
	return nil
}

type VoucherInstanceRepository struct{}

func NewVoucherInstanceRepository() *VoucherInstanceRepository {
	return &VoucherInstanceRepository{}
}

const insertVoucherInstanceSQL = `
INSERT INTO voucher_instances (
	id, template_id, brand_id, user_id, created_by,
	expires_at, is_used, used_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *VoucherInstanceRepository) CreateBatch(ctx context.Context, dbtx db.DBTX, instances []*voucher.Instance) error {
	for _, inst := range instances {
		_, err := dbtx.Exec(ctx, insertVoucherInstanceSQL,
			inst.ID(), inst.TemplateID(), inst.BrandID(), inst.UserID(), inst.CreatedBy(),
			inst.ExpiresAt(), inst.IsUsed(), inst.UsedAt(), inst.CreatedAt(),
		)
		if err != nil {
			return wrapPgErr("failed to create voucher instance", err)
		}
	}
	return nil
}
