package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth    *AuthHandler
	Ledger  *LedgerHandler
	Catalog *CatalogHandler
	Redeem  *RedeemHandler
}

// NewRouter wires every route under /api. rateLimit and auth run in that order on all /api routes,
// /api/auth skips auth.
func NewRouter(handlers Handlers, auth, rateLimit gin.HandlerFunc, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api", rateLimit)
	{
		api.POST("/auth", handlers.Auth.Authenticate)

		authenticated := api.Group("/", auth)
		{
			authenticated.POST("/mint", handlers.Ledger.Mint)
			authenticated.POST("/burn", handlers.Ledger.Burn)
			authenticated.POST("/burnFrom", handlers.Ledger.BurnFrom)
			authenticated.POST("/transfer", handlers.Ledger.Transfer)
			authenticated.GET("/balance/:"+AccountKey, handlers.Ledger.Balance)
			authenticated.GET("/supply", handlers.Ledger.Supply)
			authenticated.GET("/info", handlers.Ledger.GetInfo)

			authenticated.GET("/items", handlers.Catalog.ListItems)
			authenticated.GET("/catalog", handlers.Catalog.DisplayItems)
			authenticated.GET("/items/:"+ItemIDKey, handlers.Catalog.GetItem)
			authenticated.POST("/items", handlers.Catalog.AddItem)
			authenticated.PUT("/items/:"+ItemIDKey, handlers.Catalog.UpdateItemCost)
			authenticated.DELETE("/items/:"+ItemIDKey, handlers.Catalog.RemoveItem)

			authenticated.POST("/redeem/:"+ItemIDKey, handlers.Redeem.Redeem)
		}
	}

	return router
}
