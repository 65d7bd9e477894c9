package response

import (
	"time"

	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceResponse struct {
	Original int64 `json:"original"`
	Selling  int64 `json:"selling"`
}

type BundleItemResponse struct {
	VoucherTemplateID uuid.UUID `json:"voucherTemplateId"`
	Quantity          int32     `json:"quantity"`
	DisplayName       string    `json:"displayName"`
}

type BundleTemplateResponse struct {
	ID                   uuid.UUID            `json:"id"`
	BrandID              uuid.UUID            `json:"brandId"`
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	CashPrice            *PriceResponse       `json:"cashPrice,omitempty"`
	PointPrice           *PriceResponse       `json:"pointPrice,omitempty"`
	Items                []BundleItemResponse `json:"items"`
	VoucherValidityDays  int32                `json:"voucherValidityDays"`
	PurchaseLimitPerUser *int32               `json:"purchaseLimitPerUser,omitempty"`
	IsActive             bool                 `json:"isActive"`
	TotalSold            int64                `json:"totalSold"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

type BundleTemplateListResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	CashPrice  *PriceResponse `json:"cashPrice,omitempty"`
	PointPrice *PriceResponse `json:"pointPrice,omitempty"`
	IsActive   bool           `json:"isActive"`
	TotalSold  int64          `json:"totalSold"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type BundleInstanceResponse struct {
	ID                  uuid.UUID            `json:"id"`
	TemplateID          uuid.UUID            `json:"templateId"`
	UserID              *uuid.UUID           `json:"userId,omitempty"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Items               []BundleItemResponse `json:"items"`
	VoucherValidityDays int32                `json:"voucherValidityDays"`
	PaymentMethod       string               `json:"paymentMethod"`
	FinalPrice          int64                `json:"finalPrice"`
	Note                *string              `json:"note,omitempty"`
	PurchasedAt         time.Time            `json:"purchasedAt"`
}

type RedemptionResponse struct {
	PointsUsed      int64                      `json:"pointsUsed"`
	RemainingPoints int64                      `json:"remainingPoints"`
	Instance        *BundleInstanceResponse    `json:"instance"`
	Vouchers        []*VoucherInstanceResponse `json:"vouchers"`
}

type PurchaseLimitResponse struct {
	CanPurchase    bool   `json:"canPurchase"`
	PurchasedCount int64  `json:"purchasedCount"`
	RemainingLimit *int32 `json:"remainingLimit,omitempty"`
	TotalLimit     *int32 `json:"totalLimit,omitempty"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBundleTemplateView(rm *queries.BundleTemplateView) *BundleTemplateResponse {
	return &BundleTemplateResponse{
		ID:                   rm.ID,
		BrandID:              rm.BrandID,
		Name:                 rm.Name,
		Description:          rm.Description,
		CashPrice:            fromPriceView(rm.CashPrice),
		PointPrice:           fromPriceView(rm.PointPrice),
		Items:                fromItemViews(rm.Items),
		VoucherValidityDays:  rm.VoucherValidityDays,
		PurchaseLimitPerUser: rm.PurchaseLimitPerUser,
		IsActive:             rm.IsActive,
		TotalSold:            rm.TotalSold,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}
}

func FromBundleTemplateListItem(rm *queries.BundleTemplateListItem) *BundleTemplateListResponse {
	return &BundleTemplateListResponse{
		ID:         rm.ID,
		Name:       rm.Name,
		CashPrice:  fromPriceView(rm.CashPrice),
		PointPrice: fromPriceView(rm.PointPrice),
		IsActive:   rm.IsActive,
		TotalSold:  rm.TotalSold,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromBundleInstanceView(rm *queries.BundleInstanceView) *BundleInstanceResponse {
	return &BundleInstanceResponse{
		ID:                  rm.ID,
		TemplateID:          rm.TemplateID,
		UserID:              rm.UserID,
		Name:                rm.Name,
		Description:         rm.Description,
		Items:               fromItemViews(rm.Items),
		VoucherValidityDays: rm.VoucherValidityDays,
		PaymentMethod:       rm.PaymentMethod,
		FinalPrice:          rm.FinalPrice,
		Note:                rm.Note,
		PurchasedAt:         rm.PurchasedAt,
	}
}

func FromRedemptionResult(result *commands.RedemptionResult) *RedemptionResponse {
	vouchers := make([]*VoucherInstanceResponse, len(result.Vouchers))
	for i, v := range result.Vouchers {
		vouchers[i] = FromVoucherInstanceView(v)
	}
	return &RedemptionResponse{
		PointsUsed:      result.PointsUsed,
		RemainingPoints: result.RemainingPoints,
		Instance:        FromBundleInstanceView(result.Instance),
		Vouchers:        vouchers,
	}
}

func FromLimitStatus(status *commands.LimitStatus) *PurchaseLimitResponse {
	return &PurchaseLimitResponse{
		CanPurchase:    status.CanPurchase,
		PurchasedCount: status.PurchasedCount,
		RemainingLimit: status.RemainingLimit,
		TotalLimit:     status.TotalLimit,
	}
}

func fromPriceView(p *queries.PriceView) *PriceResponse {
	if p == nil {
		return nil
	}
	return &PriceResponse{Original: p.Original, Selling: p.Selling}
}

func fromItemViews(items []queries.BundleItemView) []BundleItemResponse {
	result := make([]BundleItemResponse, len(items))
	for i, it := range items {
		result[i] = BundleItemResponse{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       it.DisplayName,
		}
	}
	return result
}
