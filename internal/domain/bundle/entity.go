package bundle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("bundle name cannot be empty")
	ErrNoItems             = errors.New("bundle must contain at least one item")
	ErrNoPriceConfigured   = errors.New("bundle must have a cash price or a point price")
	ErrNoValidPrice        = errors.New("no valid price for payment method")
	ErrInvalidValidityDays = errors.New("voucher validity days cannot be negative")
	ErrInvalidLimit        = errors.New("purchase limit must be at least 1")
)

// Template is the catalog definition of a purchasable voucher package.
// Sold instances snapshot it; editing a template never touches past sales.
type Template struct {
	id                   uuid.UUID
	brandID              uuid.UUID
	name                 string
	description          string
	cashPrice            *Price
	pointPrice           *Price
	items                []Item
	voucherValidityDays  int32
	purchaseLimitPerUser *int32
	isActive             bool
	totalSold            int64
	createdAt            time.Time
	updatedAt            time.Time
}

func NewTemplate(
	brandID uuid.UUID,
	name, description string,
	cashPrice, pointPrice *Price,
	items []Item,
	voucherValidityDays int32,
	purchaseLimitPerUser *int32,
) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if cashPrice == nil && pointPrice == nil {
		return nil, ErrNoPriceConfigured
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if voucherValidityDays < 0 {
		return nil, ErrInvalidValidityDays
	}
	if purchaseLimitPerUser != nil && *purchaseLimitPerUser < 1 {
		return nil, ErrInvalidLimit
	}

	return &Template{
		id:                   uuid.New(),
		brandID:              brandID,
		name:                 name,
		description:          description,
		cashPrice:            cashPrice,
		pointPrice:           pointPrice,
		items:                items,
		voucherValidityDays:  voucherValidityDays,
		purchaseLimitPerUser: purchaseLimitPerUser,
		isActive:             true,
	}, nil
}

func ReconstructTemplate(
	id, brandID uuid.UUID,
	name, description string,
	cashPrice, pointPrice *Price,
	items []Item,
	voucherValidityDays int32,
	purchaseLimitPerUser *int32,
	isActive bool,
	totalSold int64,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:                   id,
		brandID:              brandID,
		name:                 name,
		description:          description,
		cashPrice:            cashPrice,
		pointPrice:           pointPrice,
		items:                items,
		voucherValidityDays:  voucherValidityDays,
		purchaseLimitPerUser: purchaseLimitPerUser,
		isActive:             isActive,
		totalSold:            totalSold,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ResolvePrice returns the selling amount for the given payment method.
func (t *Template) ResolvePrice(method PaymentMethod) (int64, error) {
	switch method {
	case PaymentPoints:
		if t.pointPrice == nil {
			return 0, ErrNoValidPrice
		}
		return t.pointPrice.Selling, nil
	case PaymentCash:
		if t.cashPrice == nil {
			return 0, ErrNoValidPrice
		}
		return t.cashPrice.Selling, nil
	default:
		return 0, ErrInvalidPaymentMethod
	}
}

func (t *Template) Deactivate() {
	t.isActive = false
}

func (t *Template) Activate() {
	t.isActive = true
}

func (t *Template) ID() uuid.UUID                { return t.id }
func (t *Template) BrandID() uuid.UUID           { return t.brandID }
func (t *Template) Name() string                 { return t.name }
func (t *Template) Description() string          { return t.description }
func (t *Template) CashPrice() *Price            { return t.cashPrice }
func (t *Template) PointPrice() *Price           { return t.pointPrice }
func (t *Template) Items() []Item                { return t.items }
func (t *Template) VoucherValidityDays() int32   { return t.voucherValidityDays }
func (t *Template) PurchaseLimitPerUser() *int32 { return t.purchaseLimitPerUser }
func (t *Template) IsActive() bool               { return t.isActive }
func (t *Template) TotalSold() int64             { return t.totalSold }
func (t *Template) CreatedAt() time.Time         { return t.createdAt }
func (t *Template) UpdatedAt() time.Time         { return t.updatedAt }
