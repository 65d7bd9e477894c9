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

type BundleTemplateHandler struct {
	commands commands.BundleTemplateCommands
	queries  queries.BundleQueries
}

func NewBundleTemplateHandler(
	cmds commands.BundleTemplateCommands,
	qs queries.BundleQueries,
) *BundleTemplateHandler {
	return &BundleTemplateHandler{commands: cmds, queries: qs}
}

// @Summary List bundle templates
// @Description List the brand's bundle templates
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active templates"
// @Success 200 {array} resdto.BundleTemplateListResponse
// @Router /bundles [get]
func (h *BundleTemplateHandler) ListBundleTemplates(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	activeOnly := c.Query("active") == "true"

	items, err := h.queries.ListTemplates(c.Request.Context(), brandID, activeOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result := make([]*resdto.BundleTemplateListResponse, len(items))
	for i, item := range items {
		result[i] = resdto.FromBundleTemplateListItem(item)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get bundle template
// @Description Get one bundle template with its items
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle template ID"
// @Success 200 {object} resdto.BundleTemplateResponse
// @Failure 404 {object} map[string]string
// @Router /bundles/{id} [get]
func (h *BundleTemplateHandler) GetBundleTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle template ID format", nil)
		return
	}

	view, err := h.queries.TemplateByID(c.Request.Context(), brandID, id)
	if err != nil {
		if errors.Is(err, queries.ErrBundleTemplateNotFoundRead) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBundleTemplateView(view))
}

// @Summary Create bundle template
// @Description Create a bundle template referencing active voucher templates
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBundleTemplateRequest true "Bundle template"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bundles [post]
func (h *BundleTemplateHandler) CreateBundleTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBundleTemplateRequest
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

// @Summary Update bundle template
// @Description Patch a bundle template's editable fields
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle template ID"
// @Param request body reqdto.UpdateBundleTemplateRequest true "Fields to update"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bundles/{id} [put]
func (h *BundleTemplateHandler) UpdateBundleTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle template ID format", nil)
		return
	}

	var req reqdto.UpdateBundleTemplateRequest
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

// @Summary Delete bundle template
// @Description Delete a bundle template that has never been sold
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle template ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bundles/{id} [delete]
func (h *BundleTemplateHandler) DeleteBundleTemplate(c *gin.Context) {
	brandID, ok := middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle template ID format", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), brandID, id); err != nil {
		respondCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBundleTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle template not found", nil)
	case errors.Is(err, commands.ErrVoucherTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher template not found", nil)
	case errors.Is(err, commands.ErrVoucherTemplateInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Referenced voucher template is not active", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, commands.ErrTemplateInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Bundle template has sold instances", nil)
	case errors.Is(err, commands.ErrHasUnusedInstances):
		httperr.AbortWithError(c, http.StatusConflict, err, "Voucher template has unredeemed vouchers", nil)
	case errors.Is(err, commands.ErrUsedByBundle):
		httperr.AbortWithError(c, http.StatusConflict, err, "Voucher template is referenced by a bundle", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
