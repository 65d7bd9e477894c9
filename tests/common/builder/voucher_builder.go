//go:build unit || e2e

package builder

import (
	"time"

	domvoucher "plateful/internal/domain/voucher"
	reqdto "plateful/internal/handler/dto/request"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherTemplateBuilder struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Description string
	IsActive    bool
	TotalIssued int64
	CreatedAt   time.Time
}

func NewVoucherTemplateBuilder() *VoucherTemplateBuilder {
	return &VoucherTemplateBuilder{
		ID:          uuid.New(),
		BrandID:     uuid.New(),
		Name:        "Free Drink",
		Description: "One free soft drink",
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func (b *VoucherTemplateBuilder) With(mutate func(*VoucherTemplateBuilder)) *VoucherTemplateBuilder {
	mutate(b)
	return b
}

func (b *VoucherTemplateBuilder) BuildDomain() (*domvoucher.Template, error) {
	return domvoucher.NewTemplate(b.BrandID, b.Name, b.Description)
}

func (b *VoucherTemplateBuilder) BuildReconstructed() *domvoucher.Template {
	return domvoucher.ReconstructTemplate(
		b.ID, b.BrandID, b.Name, b.Description,
		b.IsActive, b.TotalIssued,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *VoucherTemplateBuilder) BuildSnapshot() *shared.VoucherTemplateSnapshot {
	return &shared.VoucherTemplateSnapshot{
		ID:          b.ID,
		BrandID:     b.BrandID,
		Name:        b.Name,
		Description: b.Description,
		IsActive:    b.IsActive,
		TotalIssued: b.TotalIssued,
	}
}

func (b *VoucherTemplateBuilder) BuildCreateRequestDTO() reqdto.CreateVoucherTemplateRequest {
	return reqdto.CreateVoucherTemplateRequest{
		Name:        b.Name,
		Description: b.Description,
	}
}

type VoucherInstanceBuilder struct {
	ID         uuid.UUID
	TemplateID uuid.UUID
	BrandID    uuid.UUID
	UserID     *uuid.UUID
	CreatedBy  *uuid.UUID
	ExpiresAt  time.Time
	IsUsed     bool
	UsedAt     *time.Time
	CreatedAt  time.Time
}

func NewVoucherInstanceBuilder() *VoucherInstanceBuilder {
	userID := uuid.New()
	now := time.Now()
	return &VoucherInstanceBuilder{
		ID:         uuid.New(),
		TemplateID: uuid.New(),
		BrandID:    uuid.New(),
		UserID:     &userID,
		ExpiresAt:  now.AddDate(0, 0, 30),
		CreatedAt:  now,
	}
}

func (b *VoucherInstanceBuilder) With(mutate func(*VoucherInstanceBuilder)) *VoucherInstanceBuilder {
	mutate(b)
	return b
}

func (b *VoucherInstanceBuilder) BuildDomain() *domvoucher.Instance {
	return domvoucher.ReconstructInstance(
		b.ID, b.TemplateID, b.BrandID,
		b.UserID, b.CreatedBy,
		b.ExpiresAt, b.IsUsed, b.UsedAt,
		b.CreatedAt,
	)
}
