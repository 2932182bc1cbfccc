package components

import (
	"storefront-api/internal/infra/memstore"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule provides the process-lifetime state: the immutable seed
// catalog and the single shared cart store.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewSeedCatalog,
			fx.As(new(commands.ProductReader)),
			fx.As(new(queries.CatalogReader)),
		),
		fx.Annotate(
			memstore.NewCartStore,
			fx.As(new(commands.CartRepository)),
			fx.As(new(queries.CartReader)),
		),
	),
)
