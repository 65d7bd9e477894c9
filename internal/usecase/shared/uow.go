package shared

import (
	"context"
	"time"

	"plateful/internal/domain/bundle"
	"plateful/internal/domain/voucher"
	"plateful/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	BundleTemplates() BundleTemplateRepository
	BundleInstances() BundleInstanceRepository
	VoucherTemplates() VoucherTemplateRepository
	VoucherInstances() VoucherInstanceRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BundleTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*BundleTemplateSnapshot, error)
	VoucherTemplateByID(ctx context.Context, brandID, id uuid.UUID) (*VoucherTemplateSnapshot, error)
	BundleInstanceByID(ctx context.Context, brandID, id uuid.UUID) (*BundleInstanceSnapshot, error)
	// CountInstancesByTemplateAndUser backs the per-user purchase limit.
	CountInstancesByTemplateAndUser(ctx context.Context, templateID, userID uuid.UUID) (int64, error)
	// CountInstancesByTemplate backs the bundle-template deletion guard.
	CountInstancesByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error)
	// CountUnusedVouchersByTemplate / CountBundlesReferencingVoucherTemplate
	// back the voucher-template deactivation guard, in that check order.
	CountUnusedVouchersByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error)
	CountBundlesReferencingVoucherTemplate(ctx context.Context, templateID uuid.UUID) (int64, error)
}

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PriceSnapshot struct {
	Original int64
	Selling  int64
}

type BundleItemSnapshot struct {
	VoucherTemplateID uuid.UUID
	Quantity          int32
	DisplayName       string
}

type BundleTemplateSnapshot struct {
	ID                   uuid.UUID
	BrandID              uuid.UUID
	Name                 string
	Description          string
	CashPrice            *PriceSnapshot
	PointPrice           *PriceSnapshot
	Items                []BundleItemSnapshot
	VoucherValidityDays  int32
	PurchaseLimitPerUser *int32
	IsActive             bool
	TotalSold            int64
}

type VoucherTemplateSnapshot struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Description string
	IsActive    bool
	TotalIssued int64
}

type BundleInstanceSnapshot struct {
	ID                  uuid.UUID
	TemplateID          uuid.UUID
	BrandID             uuid.UUID
	UserID              *uuid.UUID
	Name                string
	Description         string
	Items               []BundleItemSnapshot
	VoucherValidityDays int32
	PaymentMethod       string
	FinalPrice          int64
	PurchasedAt         time.Time
	VoucherCount        int64
}

type BundleTemplateRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *bundle.Template) (uuid.UUID, error)
	// Update rewrites editable fields only; brand ownership is immutable.
	Update(ctx context.Context, dbtx db.DBTX, t *bundle.Template) error
	Delete(ctx context.Context, dbtx db.DBTX, brandID, id uuid.UUID) error
	IncrementTotalSold(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int64) error
	DecrementTotalSold(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int64) error
}

type BundleInstanceRepository interface {
	// Create inserts the instance with its item snapshot. When limit is
	// non-nil the insert is conditional on the user's instance count for
	// the template staying under the limit, and fails with a conflict
	// kind when a concurrent purchase won the race.
	Create(ctx context.Context, dbtx db.DBTX, inst *bundle.Instance, limit *int32) (uuid.UUID, error)
	// Delete is the saga's compensating action. It refuses to remove an
	// instance that already has vouchers referencing it.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	UpdateNote(ctx context.Context, dbtx db.DBTX, brandID, id uuid.UUID, note string) error
}

type VoucherTemplateRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *voucher.Template) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, t *voucher.Template) error
	IncrementTotalIssued(ctx context.Context, dbtx db.DBTX, id uuid.UUID, by int32) error
}

type VoucherInstanceRepository interface {
	CreateBatch(ctx context.Context, dbtx db.DBTX, instances []*voucher.Instance) error
}
