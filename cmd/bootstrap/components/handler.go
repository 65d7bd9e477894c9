package components

import (
	"plateful/internal/handler"
	"plateful/internal/handler/api"
	"plateful/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBundleTemplateHandler,
		api.NewVoucherTemplateHandler,
		api.NewRedemptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
