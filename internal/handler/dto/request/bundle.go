package request

import (
	"strings"

	"plateful/internal/usecase/commands"

	"github.com/google/uuid"
)

type PriceBody struct {
	Original int64 `json:"original" binding:"min=0"`
	Selling  int64 `json:"selling" binding:"min=0"`
}

type BundleItemBody struct {
	VoucherTemplateID uuid.UUID `json:"voucher_template_id" binding:"required"`
	Quantity          int32     `json:"quantity" binding:"required,min=1"`
	DisplayName       string    `json:"display_name"`
}

type CreateBundleTemplateRequest struct {
	Name                 string           `json:"name" binding:"required"`
	Description          string           `json:"description"`
	CashPrice            *PriceBody       `json:"cash_price,omitempty"`
	PointPrice           *PriceBody       `json:"point_price,omitempty"`
	Items                []BundleItemBody `json:"items" binding:"required,min=1,dive"`
	VoucherValidityDays  int32            `json:"voucher_validity_days" binding:"min=0"`
	PurchaseLimitPerUser *int32           `json:"purchase_limit_per_user,omitempty"`
}

func (r CreateBundleTemplateRequest) ToCommand() commands.CreateBundleTemplateRequest {
	return commands.CreateBundleTemplateRequest{
		Name:                 strings.TrimSpace(r.Name),
		Description:          strings.TrimSpace(r.Description),
		CashPrice:            toPriceInput(r.CashPrice),
		PointPrice:           toPriceInput(r.PointPrice),
		Items:                toItemInputs(r.Items),
		VoucherValidityDays:  r.VoucherValidityDays,
		PurchaseLimitPerUser: r.PurchaseLimitPerUser,
	}
}

type UpdateBundleTemplateRequest struct {
	Name                 *string          `json:"name,omitempty"`
	Description          *string          `json:"description,omitempty"`
	CashPrice            *PriceBody       `json:"cash_price,omitempty"`
	PointPrice           *PriceBody       `json:"point_price,omitempty"`
	Items                []BundleItemBody `json:"items,omitempty" binding:"omitempty,min=1,dive"`
	VoucherValidityDays  *int32           `json:"voucher_validity_days,omitempty"`
	PurchaseLimitPerUser *int32           `json:"purchase_limit_per_user,omitempty"`
	IsActive             *bool            `json:"is_active,omitempty"`
}

func (r UpdateBundleTemplateRequest) ToCommand() commands.UpdateBundleTemplateRequest {
	return commands.UpdateBundleTemplateRequest{
		Name:                 r.Name,
		Description:          r.Description,
		CashPrice:            toPriceInput(r.CashPrice),
		PointPrice:           toPriceInput(r.PointPrice),
		Items:                toItemInputs(r.Items),
		VoucherValidityDays:  r.VoucherValidityDays,
		PurchaseLimitPerUser: r.PurchaseLimitPerUser,
		IsActive:             r.IsActive,
	}
}

type RedeemBundleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash points"`
}

type UpdateInstanceNoteRequest struct {
	Note string `json:"note" binding:"max=500"`
}

func toPriceInput(p *PriceBody) *commands.PriceInput {
	if p == nil {
		return nil
	}
	return &commands.PriceInput{Original: p.Original, Selling: p.Selling}
}

func toItemInputs(items []BundleItemBody) []commands.BundleItemInput {
	if items == nil {
		return nil
	}
	result := make([]commands.BundleItemInput, len(items))
	for i, it := range items {
		result[i] = commands.BundleItemInput{
			VoucherTemplateID: it.VoucherTemplateID,
			Quantity:          it.Quantity,
			DisplayName:       strings.TrimSpace(it.DisplayName),
		}
	}
	return result
}
