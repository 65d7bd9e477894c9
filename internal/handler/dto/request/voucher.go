package request

import (
	"strings"

	"plateful/internal/usecase/commands"
)

type CreateVoucherTemplateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CreateVoucherTemplateRequest) ToCommand() commands.CreateVoucherTemplateRequest {
	return commands.CreateVoucherTemplateRequest{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}

type UpdateVoucherTemplateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r UpdateVoucherTemplateRequest) ToCommand() commands.UpdateVoucherTemplateRequest {
	return commands.UpdateVoucherTemplateRequest{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}
