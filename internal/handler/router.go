package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, cartHandler, checkoutHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, cartHandler *api.CartHandler, checkoutHandler *api.CheckoutHandler, healthHandler *api.HealthHandler) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Check},
			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Checkout},
		})

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.Get},
			})
		}

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.View},
				{Method: http.MethodPost, Path: "", Handler: cartHandler.Add},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodPut, Path: "/:id", Handler: cartHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/:id", Handler: cartHandler.Remove},
			})
		}
	}
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
