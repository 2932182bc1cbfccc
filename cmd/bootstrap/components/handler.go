package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
