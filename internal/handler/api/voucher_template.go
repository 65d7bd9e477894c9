package api

import (
	"errors"
	"net/http"

	reqdto "plateful/internal/handler/dto/request"
	resdto "plateful/internal/handler/dto/response"
	"plateful/internal/handler/httperr"
	"plateful/internal/handler/middleware"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoucherTemplateHandler struct {
	commands commands.VoucherTemplateCommands
	queries  queries.VoucherQueries
}

func NewVoucherTemplateHandler(
	cmds commands.VoucherTemplateCommands,
	qs queries.VoucherQueries,
) *VoucherTemplateHandler {
	return &VoucherTemplateHandler{commands: cmds, queries: qs}
}

// @Summary List voucher templates
// @Description List the brand's voucher templates
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VoucherTemplateResponse
// @Router /voucher-templates [get]
func (h *VoucherTemplateHandler) ListVoucherTemplates(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	views, err := h.queries.ListTemplates(c.Request.Context(), brandID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result := make([]*resdto.VoucherTemplateResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromVoucherTemplateView(v)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get voucher template
// @Description Get one voucher template
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher template ID"
// @Success 200 {object} resdto.VoucherTemplateResponse
// @Failure 404 {object} map[string]string
// @Router /voucher-templates/{id} [get]
func (h *VoucherTemplateHandler) GetVoucherTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher template ID format", nil)
		return
	}

	view, err := h.queries.TemplateByID(c.Request.Context(), brandID, id)
	if err != nil {
		if errors.Is(err, queries.ErrVoucherTemplateNotFoundRead) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherTemplateView(view))
}

// @Summary Create voucher template
// @Description Create a voucher template
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherTemplateRequest true "Voucher template"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /voucher-templates [post]
func (h *VoucherTemplateHandler) CreateVoucherTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreateVoucherTemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Create(c.Request.Context(), brandID, req.ToCommand())
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.TemplateID})
}

// @Summary Update voucher template
// @Description Patch a voucher template; deactivation is guarded
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher template ID"
// @Param request body reqdto.UpdateVoucherTemplateRequest true "Fields to update"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /voucher-templates/{id} [put]
func (h *VoucherTemplateHandler) UpdateVoucherTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher template ID format", nil)
		return
	}

	var req reqdto.UpdateVoucherTemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.Update(c.Request.Context(), brandID, id, req.ToCommand()); err != nil {
		respondCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
