package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"plateful/internal/handler/api"
	"plateful/internal/handler/middleware"
	"plateful/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bundleTemplateHandler *api.BundleTemplateHandler,
	voucherTemplateHandler *api.VoucherTemplateHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bundleTemplateHandler, voucherTemplateHandler, redemptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bundleTemplateHandler *api.BundleTemplateHandler,
	voucherTemplateHandler *api.VoucherTemplateHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bundles := apiGroup.Group("/bundles")
		{
			addRoutes(bundles, []route{
				{Method: http.MethodGet, Path: "", Handler: bundleTemplateHandler.ListBundleTemplates},
				{Method: http.MethodGet, Path: "/:id", Handler: bundleTemplateHandler.GetBundleTemplate},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: redemptionHandler.RedeemBundle},
				{Method: http.MethodGet, Path: "/:id/limit", Handler: redemptionHandler.CheckPurchaseLimit},
			})

			managerOnly := authMiddleware.RequireRoleAtLeast(middleware.RoleManager)
			addRoutes(bundles, []route{
				{Method: http.MethodPost, Path: "", Handler: bundleTemplateHandler.CreateBundleTemplate, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: bundleTemplateHandler.UpdateBundleTemplate, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: bundleTemplateHandler.DeleteBundleTemplate, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		voucherTemplates := apiGroup.Group("/voucher-templates")
		{
			addRoutes(voucherTemplates, []route{
				{Method: http.MethodGet, Path: "", Handler: voucherTemplateHandler.ListVoucherTemplates},
				{Method: http.MethodGet, Path: "/:id", Handler: voucherTemplateHandler.GetVoucherTemplate},
			})

			managerOnly := authMiddleware.RequireRoleAtLeast(middleware.RoleManager)
			addRoutes(voucherTemplates, []route{
				{Method: http.MethodPost, Path: "", Handler: voucherTemplateHandler.CreateVoucherTemplate, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: voucherTemplateHandler.UpdateVoucherTemplate, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		me := apiGroup.Group("/me")
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/bundles", Handler: redemptionHandler.GetMyBundles},
				{Method: http.MethodGet, Path: "/bundles/:id", Handler: redemptionHandler.GetMyBundle},
				{Method: http.MethodPatch, Path: "/bundles/:id/note", Handler: redemptionHandler.UpdateBundleNote},
				{Method: http.MethodGet, Path: "/bundles/:id/vouchers", Handler: redemptionHandler.GetBundleVouchers},
				{Method: http.MethodGet, Path: "/vouchers", Handler: redemptionHandler.GetMyVouchers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
