//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"plateful/internal/handler/api"
	resdto "plateful/internal/handler/dto/response"
	"plateful/internal/handler/middleware"
	"plateful/internal/usecase/commands"
	"plateful/internal/usecase/queries"
	"plateful/internal/usecase/shared"
	"plateful/tests/common/builder"
	"plateful/tests/common/httptest"
	"plateful/tests/common/testutil"
	commandsmock "plateful/tests/mock/commands"
	queriesmock "plateful/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockRedemption     *commandsmock.MockRedemptionCommands
	mockBundleQueries  *queriesmock.MockBundleQueries
	mockVoucherQueries *queriesmock.MockVoucherQueries
	handler            *api.RedemptionHandler

	userID  uuid.UUID
	brandID uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRedemption = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockBundleQueries = queriesmock.NewMockBundleQueries(s.mockCtrl)
	s.mockVoucherQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockRedemption, s.mockBundleQueries, s.mockVoucherQueries)

	s.userID = uuid.New()
	s.brandID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("brand_id", s.brandID)
		c.Set("user_role", middleware.RoleUser)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bundles/:id/redeem", authMiddleware, s.handler.RedeemBundle)
	s.router.GET("/bundles/:id/limit", authMiddleware, s.handler.CheckPurchaseLimit)
	s.router.GET("/me/bundles", authMiddleware, s.handler.GetMyBundles)
	s.router.GET("/me/bundles/:id", authMiddleware, s.handler.GetMyBundle)
	s.router.PATCH("/me/bundles/:id/note", authMiddleware, s.handler.UpdateBundleNote)
	s.router.GET("/me/bundles/:id/vouchers", authMiddleware, s.handler.GetBundleVouchers)
	s.router.GET("/me/vouchers", authMiddleware, s.handler.GetMyVouchers)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) instanceView(templateID uuid.UUID) *queries.BundleInstanceView {
	tmpl := builder.NewBundleTemplateBuilder().BuildView()
	return &queries.BundleInstanceView{
		ID:                  uuid.New(),
		TemplateID:          templateID,
		BrandID:             s.brandID,
		UserID:              &s.userID,
		Name:                tmpl.Name,
		Description:         tmpl.Description,
		Items:               tmpl.Items,
		VoucherValidityDays: tmpl.VoucherValidityDays,
		PaymentMethod:       "points",
		FinalPrice:          800,
		PurchasedAt:         time.Now().UTC(),
	}
}

func (s *RedemptionHandlerTestSuite) voucherView(bundleInstanceID uuid.UUID) *queries.VoucherInstanceView {
	return &queries.VoucherInstanceView{
		ID:           uuid.New(),
		TemplateID:   uuid.New(),
		TemplateName: "Free Drink",
		BrandID:      s.brandID,
		UserID:       &s.userID,
		CreatedBy:    &bundleInstanceID,
		ExpiresAt:    time.Now().UTC().AddDate(0, 0, 30),
		CreatedAt:    time.Now().UTC(),
	}
}

// ================================================================================
// TestRedeemBundle
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestRedeemBundle() {
	templateID := uuid.New()
	url := "/bundles/" + templateID.String() + "/redeem"

	instance := s.instanceView(templateID)
	result := &commands.RedemptionResult{
		PointsUsed:      800,
		RemainingPoints: 4200,
		Instance:        instance,
		Vouchers: []*queries.VoucherInstanceView{
			s.voucherView(instance.ID),
			s.voucherView(instance.ID),
			s.voucherView(instance.ID),
		},
	}

	pointsBody := map[string]any{"payment_method": "points"}
	cashBody := map[string]any{"payment_method": "cash"}

	s.Run("success: points redemption returns 201 with instance and vouchers", func() {
		s.mockRedemption.EXPECT().
			RedeemWithPoints(gomock.Any(), s.brandID, templateID, s.userID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, pointsBody, "bearer-token")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(800), response.PointsUsed)
		s.Equal(int64(4200), response.RemainingPoints)
		s.Equal(instance.ID, response.Instance.ID)
		s.Len(response.Vouchers, 3)
	})

	s.Run("success: cash redemption routes to the cash path", func() {
		cashResult := &commands.RedemptionResult{Instance: instance, Vouchers: result.Vouchers}
		s.mockRedemption.EXPECT().
			CreateCashInstance(gomock.Any(), s.brandID, templateID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, userID *uuid.UUID) (*commands.RedemptionResult, error) {
				s.Require().NotNil(userID)
				s.Equal(s.userID, *userID)
				return cashResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, cashBody, "bearer-token")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(0), response.PointsUsed)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: payment_method (required)", mutate: testutil.Field("payment_method", nil)},
			{name: "invalid payment_method value", mutate: testutil.Field("payment_method", "credit")},
			{name: "empty payment_method", mutate: testutil.Field("payment_method", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), pointsBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid template UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bundles/not-a-uuid/redeem", pointsBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bundle template ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, pointsBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "template not found",
				commandsError:  commands.ErrBundleTemplateNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Bundle template not found",
			},
			{
				name:           "template inactive",
				commandsError:  commands.ErrTemplateInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Bundle template is not active",
			},
			{
				name:           "no point price",
				commandsError:  commands.ErrNoPointPrice,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Bundle cannot be purchased with points",
			},
			{
				name:           "purchase limit exceeded",
				commandsError:  commands.ErrPurchaseLimitExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Purchase limit reached for this bundle",
			},
			{
				name:           "insufficient points",
				commandsError:  commands.ErrInsufficientPoints,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient points",
			},
			{
				name:           "ledger lost the balance race",
				commandsError:  shared.ErrLedgerInsufficientFunds,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient points",
			},
			{
				name:           "debit failed and was compensated",
				commandsError:  commands.ErrLedgerDebitFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Points ledger rejected the debit",
			},
			{
				name:           "ledger unavailable",
				commandsError:  shared.ErrLedgerUnavailable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Points ledger is unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRedemption.EXPECT().
					RedeemWithPoints(gomock.Any(), s.brandID, templateID, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, pointsBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 402 wins over 502 when both debit-failed and insufficient-funds apply", func() {
		// A compensated saga surfaces both identities on one error chain.
		combined := errors.Join(commands.ErrLedgerDebitFailed, shared.ErrLedgerInsufficientFunds)
		s.mockRedemption.EXPECT().
			RedeemWithPoints(gomock.Any(), s.brandID, templateID, s.userID).
			Return(nil, combined).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, pointsBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Insufficient points")
	})
}

// ================================================================================
// TestCheckPurchaseLimit
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestCheckPurchaseLimit() {
	templateID := uuid.New()
	url := "/bundles/" + templateID.String() + "/limit"

	s.Run("success: returns 200 OK with limit status", func() {
		remaining := int32(3)
		total := int32(5)
		s.mockRedemption.EXPECT().
			CheckPurchaseLimit(gomock.Any(), s.brandID, templateID, gomock.Any()).
			Return(&commands.LimitStatus{
				CanPurchase:    true,
				PurchasedCount: 2,
				RemainingLimit: &remaining,
				TotalLimit:     &total,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PurchaseLimitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CanPurchase)
		s.Equal(int64(2), response.PurchasedCount)
		s.Require().NotNil(response.RemainingLimit)
		s.Equal(int32(3), *response.RemainingLimit)
	})

	s.Run("success: unlimited template omits limit fields", func() {
		s.mockRedemption.EXPECT().
			CheckPurchaseLimit(gomock.Any(), s.brandID, templateID, gomock.Any()).
			Return(&commands.LimitStatus{CanPurchase: true, PurchasedCount: 7}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "remainingLimit")
		s.NotContains(body, "totalLimit")
	})

	s.Run("error: 404 Not Found for missing template", func() {
		s.mockRedemption.EXPECT().
			CheckPurchaseLimit(gomock.Any(), s.brandID, templateID, gomock.Any()).
			Return(nil, commands.ErrBundleTemplateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bundle template not found")
	})
}

// ================================================================================
// TestGetMyBundles / TestGetMyBundle
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestGetMyBundles() {
	url := "/me/bundles"

	s.Run("success: returns 200 OK with instance list", func() {
		views := []*queries.BundleInstanceView{
			s.instanceView(uuid.New()),
			s.instanceView(uuid.New()),
		}
		s.mockBundleQueries.EXPECT().
			ListInstancesByUser(gomock.Any(), s.brandID, s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BundleInstanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: empty list serializes as [] not null", func() {
		s.mockBundleQueries.EXPECT().
			ListInstancesByUser(gomock.Any(), s.brandID, s.userID).
			Return([]*queries.BundleInstanceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("[]", strings.TrimSpace(rec.Body.String()))
	})

	s.Run("error: 500 on query failure", func() {
		s.mockBundleQueries.EXPECT().
			ListInstancesByUser(gomock.Any(), s.brandID, s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RedemptionHandlerTestSuite) TestGetMyBundle() {
	instanceID := uuid.New()
	url := "/me/bundles/" + instanceID.String()

	s.Run("success: returns 200 OK with one instance", func() {
		view := s.instanceView(uuid.New())
		view.ID = instanceID
		s.mockBundleQueries.EXPECT().
			InstanceByID(gomock.Any(), s.brandID, instanceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BundleInstanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(instanceID, response.ID)
		s.Equal("points", response.PaymentMethod)
	})

	s.Run("error: 404 Not Found for missing instance", func() {
		s.mockBundleQueries.EXPECT().
			InstanceByID(gomock.Any(), s.brandID, instanceID).
			Return(nil, queries.ErrBundleInstanceNotFoundRead).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bundle instance not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/bundles/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bundle instance ID format")
	})
}

// ================================================================================
// TestUpdateBundleNote
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestUpdateBundleNote() {
	instanceID := uuid.New()
	url := "/me/bundles/" + instanceID.String() + "/note"
	reqBody := map[string]any{"note": "for Saturday lunch"}

	s.Run("success: returns 204 No Content", func() {
		s.mockRedemption.EXPECT().
			UpdateInstanceNote(gomock.Any(), s.brandID, instanceID, s.userID, "for Saturday lunch").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when note exceeds max length", func() {
		long := map[string]any{"note": strings.Repeat("a", 501)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, long, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found when instance belongs to someone else", func() {
		s.mockRedemption.EXPECT().
			UpdateInstanceNote(gomock.Any(), s.brandID, instanceID, s.userID, "for Saturday lunch").
			Return(commands.ErrBundleInstanceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bundle instance not found")
	})
}

// ================================================================================
// TestGetBundleVouchers / TestGetMyVouchers
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestGetBundleVouchers() {
	instanceID := uuid.New()
	url := "/me/bundles/" + instanceID.String() + "/vouchers"

	s.Run("success: returns 200 OK with voucher list", func() {
		views := []*queries.VoucherInstanceView{
			s.voucherView(instanceID),
			s.voucherView(instanceID),
			s.voucherView(instanceID),
		}
		s.mockVoucherQueries.EXPECT().
			ListInstancesByBundleInstance(gomock.Any(), s.brandID, instanceID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.VoucherInstanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
		s.Require().NotNil(response[0].CreatedBy)
		s.Equal(instanceID, *response[0].CreatedBy)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/bundles/invalid-uuid/vouchers", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bundle instance ID format")
	})
}

func (s *RedemptionHandlerTestSuite) TestGetMyVouchers() {
	url := "/me/vouchers"

	s.Run("success: returns 200 OK with caller's vouchers", func() {
		views := []*queries.VoucherInstanceView{s.voucherView(uuid.New())}
		s.mockVoucherQueries.EXPECT().
			ListInstancesByUser(gomock.Any(), s.brandID, s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.VoucherInstanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Free Drink", response[0].TemplateName)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
