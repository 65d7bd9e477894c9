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

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

const findVoucherTemplateSQL = `
SELECT id, brand_id, name, description, is_active, total_issued, created_at, updated_at
FROM voucher_templates
WHERE id = $1 AND brand_id = $2
`

func (r *VoucherReadStore) FindTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*queries.VoucherTemplateView, error) {
	var (
		view                 queries.VoucherTemplateView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findVoucherTemplateSQL, id, brandID).Scan(
		&view.ID, &view.BrandID, &view.Name, &view.Description,
		&view.IsActive, &view.TotalIssued, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher template", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listVoucherTemplatesSQL = `
SELECT id, brand_id, name, description, is_active, total_issued, created_at, updated_at
FROM voucher_templates
WHERE brand_id = $1
ORDER BY created_at DESC
`

func (r *VoucherReadStore) ListTemplatesByBrand(ctx context.Context, brandID uuid.UUID) ([]*queries.VoucherTemplateView, error) {
	rows, err := r.db.Query(ctx, listVoucherTemplatesSQL, brandID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher templates", err)
	}
	defer rows.Close()

	var result []*queries.VoucherTemplateView
	for rows.Next() {
		var (
			view                 queries.VoucherTemplateView
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.BrandID, &view.Name, &view.Description,
			&view.IsActive, &view.TotalIssued, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher template", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate voucher templates", err)
	}
	return result, nil
}

const listVoucherInstancesSQL = `
SELECT vi.id, vi.template_id, vt.name, vi.brand_id, vi.user_id, vi.created_by,
	vi.expires_at, vi.is_used, vi.used_at, vi.created_at
FROM voucher_instances vi
JOIN voucher_templates vt ON vt.id = vi.template_id
`

func (r *VoucherReadStore) ListInstancesByUser(ctx context.Context, brandID, userID uuid.UUID) ([]*queries.VoucherInstanceView, error) {
	sql := listVoucherInstancesSQL + `
WHERE vi.brand_id = $1 AND vi.user_id = $2
ORDER BY vi.created_at DESC`
	return r.listInstances(ctx, sql, brandID, userID)
}

func (r *VoucherReadStore) ListInstancesByCreatedBy(ctx context.Context, brandID, bundleInstanceID uuid.UUID) ([]*queries.VoucherInstanceView, error) {
	sql := listVoucherInstancesSQL + `
WHERE vi.brand_id = $1 AND vi.created_by = $2
ORDER BY vi.created_at`
	return r.listInstances(ctx, sql, brandID, bundleInstanceID)
}

func (r *VoucherReadStore) CountUnusedByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM voucher_instances WHERE template_id = $1 AND NOT is_used`,
		templateID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unused vouchers", err)
	}
	return count, nil
}

func (r *VoucherReadStore) listInstances(ctx context.Context, sql string, args ...any) ([]*queries.VoucherInstanceView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher instances", err)
	}
	defer rows.Close()

	var result []*queries.VoucherInstanceView
	for rows.Next() {
		var (
			view                 queries.VoucherInstanceView
			userID, createdBy    pgtype.UUID
			expiresAt, createdAt pgtype.Timestamptz
			usedAt               pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.TemplateID, &view.TemplateName, &view.BrandID,
			&userID, &createdBy, &expiresAt, &view.IsUsed, &usedAt, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher instance", err)
		}
		view.UserID = pgconv.UUIDPtrFromPgtype(userID)
		view.CreatedBy = pgconv.UUIDPtrFromPgtype(createdBy)
		view.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
		if usedAt.Valid {
			t := usedAt.Time
			view.UsedAt = &t
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate voucher instances", err)
	}
	return result, nil
}
