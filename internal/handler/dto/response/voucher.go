package response

import (
	"time"

	"plateful/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherTemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	BrandID     uuid.UUID `json:"brandId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	TotalIssued int64     `json:"totalIssued"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type VoucherInstanceResponse struct {
	ID           uuid.UUID  `json:"id"`
	TemplateID   uuid.UUID  `json:"templateId"`
	TemplateName string     `json:"templateName"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	CreatedBy    *uuid.UUID `json:"createdBy,omitempty"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	IsUsed       bool       `json:"isUsed"`
	UsedAt       *time.Time `json:"usedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromVoucherTemplateView(rm *queries.VoucherTemplateView) *VoucherTemplateResponse {
	return &VoucherTemplateResponse{
		ID:          rm.ID,
		BrandID:     rm.BrandID,
		Name:        rm.Name,
		Description: rm.Description,
		IsActive:    rm.IsActive,
		TotalIssued: rm.TotalIssued,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromVoucherInstanceView(rm *queries.VoucherInstanceView) *VoucherInstanceResponse {
	return &VoucherInstanceResponse{
		ID:           rm.ID,
		TemplateID:   rm.TemplateID,
		TemplateName: rm.TemplateName,
		UserID:       rm.UserID,
		CreatedBy:    rm.CreatedBy,
		ExpiresAt:    rm.ExpiresAt,
		IsUsed:       rm.IsUsed,
		UsedAt:       rm.UsedAt,
		CreatedAt:    rm.CreatedAt,
	}
}
