package api

import (
	"errors"
	"net/http"

	reqdto "plateful/internal/handler/dto/request"
	resdto "plateful/internal/handler/dto/response"
	"plateful/internal/handler/httperr"
	"plateful/internal/handler/middleware"
	"plateful/internal/pkg/errs"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	redemption     commands.RedemptionCommands
	bundleQueries  queries.BundleQueries
	voucherQueries queries.VoucherQueries
}

func NewRedemptionHandler(
	redemption commands.RedemptionCommands,
	bundleQueries queries.BundleQueries,
	voucherQueries queries.VoucherQueries,
) *RedemptionHandler {
	return &RedemptionHandler{
		redemption:     redemption,
		bundleQueries:  bundleQueries,
		voucherQueries: voucherQueries,
	}
}

// @Summary Redeem bundle
// @Description Purchase a bundle with points or cash and receive its vouchers
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle template ID"
// @Param request body reqdto.RedeemBundleRequest true "Redemption request"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bundles/{id}/redeem [post]
func (h *RedemptionHandler) RedeemBundle(c *gin.Context) {
	userID, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle template ID format", nil)
		return
	}

	var req reqdto.RedeemBundleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	var result *commands.RedemptionResult
	if req.PaymentMethod == "points" {
		result, err = h.redemption.RedeemWithPoints(c.Request.Context(), brandID, templateID, userID)
	} else {
		result, err = h.redemption.CreateCashInstance(c.Request.Context(), brandID, templateID, &userID)
	}
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRedemptionResult(result))
}

// @Summary Check purchase limit
// @Description Check how many more of this bundle the caller may purchase
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle template ID"
// @Success 200 {object} resdto.PurchaseLimitResponse
// @Failure 404 {object} map[string]string
// @Router /bundles/{id}/limit [get]
func (h *RedemptionHandler) CheckPurchaseLimit(c *gin.Context) {
	userID, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle template ID format", nil)
		return
	}

	status, err := h.redemption.CheckPurchaseLimit(c.Request.Context(), brandID, templateID, &userID)
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLimitStatus(status))
}

// @Summary List my bundles
// @Description List the caller's purchased bundle instances
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BundleInstanceResponse
// @Router /me/bundles [get]
func (h *RedemptionHandler) GetMyBundles(c *gin.Context) {
	userID, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	views, err := h.bundleQueries.ListInstancesByUser(c.Request.Context(), brandID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result := make([]*resdto.BundleInstanceResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromBundleInstanceView(v)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get bundle instance
// @Description Get one purchased bundle instance
// @Tags bundles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle instance ID"
// @Success 200 {object} resdto.BundleInstanceResponse
// @Failure 404 {object} map[string]string
// @Router /me/bundles/{id} [get]
func (h *RedemptionHandler) GetMyBundle(c *gin.Context) {
	_, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle instance ID format", nil)
		return
	}

	view, err := h.bundleQueries.InstanceByID(c.Request.Context(), brandID, instanceID)
	if err != nil {
		if errors.Is(err, queries.ErrBundleInstanceNotFoundRead) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle instance not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBundleInstanceView(view))
}

// @Summary Update bundle instance note
// @Description Attach a free-form note to a purchased bundle instance
// @Tags bundles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle instance ID"
// @Param request body reqdto.UpdateInstanceNoteRequest true "Note"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /me/bundles/{id}/note [patch]
func (h *RedemptionHandler) UpdateBundleNote(c *gin.Context) {
	userID, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle instance ID format", nil)
		return
	}

	var req reqdto.UpdateInstanceNoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.redemption.UpdateInstanceNote(c.Request.Context(), brandID, instanceID, userID, req.Note); err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List my bundle vouchers
// @Description List the vouchers materialized from one bundle instance
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bundle instance ID"
// @Success 200 {array} resdto.VoucherInstanceResponse
// @Router /me/bundles/{id}/vouchers [get]
func (h *RedemptionHandler) GetBundleVouchers(c *gin.Context) {
	_, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bundle instance ID format", nil)
		return
	}

	views, err := h.voucherQueries.ListInstancesByBundleInstance(c.Request.Context(), brandID, instanceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result := make([]*resdto.VoucherInstanceResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromVoucherInstanceView(v)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List my vouchers
// @Description List the caller's voucher instances
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VoucherInstanceResponse
// @Router /me/vouchers [get]
func (h *RedemptionHandler) GetMyVouchers(c *gin.Context) {
	userID, brandID, ok := requireIdentity(c)
	if !ok {
		return
	}

	views, err := h.voucherQueries.ListInstancesByUser(c.Request.Context(), brandID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result := make([]*resdto.VoucherInstanceResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromVoucherInstanceView(v)
	}
	c.JSON(http.StatusOK, result)
}

var errMissingIdentity = errs.New("authenticated identity missing from request context")

func requireIdentity(c *gin.Context) (userID, brandID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	brandID, ok = middleware.GetBrandID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, brandID, true
}

func respondRedemptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBundleTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle template not found", nil)
	case errors.Is(err, commands.ErrBundleInstanceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle instance not found", nil)
	case errors.Is(err, commands.ErrTemplateInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bundle template is not active", nil)
	case errors.Is(err, commands.ErrNoPointPrice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bundle cannot be purchased with points", nil)
	case errors.Is(err, commands.ErrNoCashPrice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Bundle cannot be purchased with cash", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, commands.ErrPurchaseLimitExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Purchase limit reached for this bundle", nil)
	case errors.Is(err, commands.ErrInsufficientPoints):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient points", nil)
	case errors.Is(err, shared.ErrLedgerInsufficientFunds):
		// The ledger itself lost the balance race; same outcome for the caller.
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient points", nil)
	case errors.Is(err, commands.ErrLedgerDebitFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Points ledger rejected the debit", nil)
	case errors.Is(err, shared.ErrLedgerUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Points ledger is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
