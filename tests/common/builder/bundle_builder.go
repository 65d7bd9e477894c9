//go:build unit || e2e

package builder

import (
	"time"

	dombundle "plateful/internal/domain/bundle"
	reqdto "plateful/internal/handler/dto/request"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/google/uuid"
)

type BundleTemplateBuilder struct {
	ID                   uuid.UUID
	BrandID              uuid.UUID
	Name                 string
	Description          string
	CashPrice            *dombundle.Price
	PointPrice           *dombundle.Price
	Items                []dombundle.Item
	VoucherValidityDays  int32
	PurchaseLimitPerUser *int32
	IsActive             bool
	TotalSold            int64
	CreatedAt            time.Time
}

func NewBundleTemplateBuilder() *BundleTemplateBuilder {
	return &BundleTemplateBuilder{
		ID:      uuid.New(),
		BrandID: uuid.New(),
		Name:    "Lunch Set",
		Description: "Weekday lunch voucher bundle",
		CashPrice:  &dombundle.Price{Original: 1200, Selling: 1000},
		PointPrice: &dombundle.Price{Original: 1200, Selling: 800},
		Items: []dombundle.Item{
			{VoucherTemplateID: uuid.New(), Quantity: 2, DisplayName: "Main dish"},
			{VoucherTemplateID: uuid.New(), Quantity: 1, DisplayName: "Drink"},
		},
		VoucherValidityDays: 30,
		IsActive:            true,
		CreatedAt:           time.Now(),
	}
}

func (b *BundleTemplateBuilder) With(mutate func(*BundleTemplateBuilder)) *BundleTemplateBuilder {
	mutate(b)
	return b
}

func (b *BundleTemplateBuilder) WithLimit(limit int32) *BundleTemplateBuilder {
	b.PurchaseLimitPerUser = &limit
	return b
}

func (b *BundleTemplateBuilder) WithItems(items ...dombundle.Item) *BundleTemplateBuilder {
	b.Items = items
	return b
}

func (b *BundleTemplateBuilder) BuildDomain() (*dombundle.Template, error) {
	return dombundle.NewTemplate(
		b.BrandID, b.Name, b.Description,
		b.CashPrice, b.PointPrice,
		b.Items, b.VoucherValidityDays, b.PurchaseLimitPerUser,
	)
}

func (b *BundleTemplateBuilder) BuildReconstructed() *dombundle.Template {
	return dombundle.ReconstructTemplate(
		b.ID, b.BrandID, b.Name, b.Description,
		b.CashPrice, b.PointPrice,
		b.Items, b.VoucherValidityDays, b.PurchaseLimitPerUser,
		b.IsActive, b.TotalSold,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BundleTemplateBuilder) BuildSnapshot() *shared.BundleTemplateSnapshot {
	items := make([]shared.BundleItemSnapshot, len(b.Items))
	for i, it := range b.Items {
		items[i] = shared.BundleItemSnapshot{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}
	return &shared.BundleTemplateSnapshot{
		ID:                   b.ID,
		BrandID:              b.BrandID,
		Name:                 b.Name,
		Description:          b.Description,
		CashPrice:            toPriceSnapshot(b.CashPrice),
		PointPrice:           toPriceSnapshot(b.PointPrice),
		Items:                items,
		VoucherValidityDays:  b.VoucherValidityDays,
		PurchaseLimitPerUser: b.PurchaseLimitPerUser,
		IsActive:             b.IsActive,
		TotalSold:            b.TotalSold,
	}
}

func (b *BundleTemplateBuilder) BuildView() *queries.BundleTemplateView {
	items := make([]queries.BundleItemView, len(b.Items))
	for i, it := range b.Items {
		items[i] = queries.BundleItemView{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}
	return &queries.BundleTemplateView{
		ID:                   b.ID,
		BrandID:              b.BrandID,
		Name:                 b.Name,
		Description:          b.Description,
		CashPrice:            toPriceView(b.CashPrice),
		PointPrice:           toPriceView(b.PointPrice),
		Items:                items,
		VoucherValidityDays:  b.VoucherValidityDays,
		PurchaseLimitPerUser: b.PurchaseLimitPerUser,
		IsActive:             b.IsActive,
		TotalSold:            b.TotalSold,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
	}
}

func (b *BundleTemplateBuilder) BuildCreateRequestDTO() reqdto.CreateBundleTemplateRequest {
	items := make([]reqdto.BundleItemBody, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.BundleItemBody{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}
	return reqdto.CreateBundleTemplateRequest{
		Name:                 b.Name,
		Description:          b.Description,
		CashPrice:            toPriceBody(b.CashPrice),
		PointPrice:           toPriceBody(b.PointPrice),
		Items:                items,
		VoucherValidityDays:  b.VoucherValidityDays,
		PurchaseLimitPerUser: b.PurchaseLimitPerUser,
	}
}

func toPriceSnapshot(p *dombundle.Price) *shared.PriceSnapshot {
	if p == nil {
		return nil
	}
	return &shared.PriceSnapshot{Original: p.Original, Selling: p.Selling}
}

func toPriceView(p *dombundle.Price) *queries.PriceView {
	if p == nil {
		return nil
	}
	return &queries.PriceView{Original: p.Original, Selling: p.Selling}
}

func toPriceBody(p *dombundle.Price) *reqdto.PriceBody {
	if p == nil {
		return nil
	}
	return &reqdto.PriceBody{Original: p.Original, Selling: p.Selling}
}
