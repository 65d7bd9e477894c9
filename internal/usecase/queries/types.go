package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PriceView struct {
	Original int64 `json:"original"`
	Selling  int64 `json:"selling"`
}

type BundleItemView struct {
	VoucherTemplateID uuid.UUID `json:"voucher_template_id"`
	Quantity          int32     `json:"quantity"`
	DisplayName       string    `json:"display_name"`
}

type BundleTemplateView struct {
	ID                   uuid.UUID        `json:"id"`
	BrandID              uuid.UUID        `json:"brand_id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	CashPrice            *PriceView       `json:"cash_price,omitempty"`
	PointPrice           *PriceView       `json:"point_price,omitempty"`
	Items                []BundleItemView `json:"items"`
	VoucherValidityDays  int32            `json:"voucher_validity_days"`
	PurchaseLimitPerUser *int32           `json:"purchase_limit_per_user,omitempty"`
	IsActive             bool             `json:"is_active"`
	TotalSold            int64            `json:"total_sold"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

type BundleTemplateListItem struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	CashPrice  *PriceView `json:"cash_price,omitempty"`
	PointPrice *PriceView `json:"point_price,omitempty"`
	IsActive   bool       `json:"is_active"`
	TotalSold  int64      `json:"total_sold"`
	CreatedAt  time.Time  `json:"created_at"`
}

type BundleInstanceView struct {
	ID                  uuid.UUID        `json:"id"`
	TemplateID          uuid.UUID        `json:"template_id"`
	BrandID             uuid.UUID        `json:"brand_id"`
	UserID              *uuid.UUID       `json:"user_id,omitempty"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Items               []BundleItemView `json:"items"`
	VoucherValidityDays int32            `json:"voucher_validity_days"`
	PaymentMethod       string           `json:"payment_method"`
	FinalPrice          int64            `json:"final_price"`
	Note                *string          `json:"note,omitempty"`
	PurchasedAt         time.Time        `json:"purchased_at"`
}

type VoucherTemplateView struct {
	ID          uuid.UUID `json:"id"`
	BrandID     uuid.UUID `json:"brand_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	TotalIssued int64     `json:"total_issued"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VoucherInstanceView struct {
	ID           uuid.UUID  `json:"id"`
	TemplateID   uuid.UUID  `json:"template_id"`
	TemplateName string     `json:"template_name"`
	BrandID      uuid.UUID  `json:"brand_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	ExpiresAt    time.Time  `json:"expires_at"`
	IsUsed       bool       `json:"is_used"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
