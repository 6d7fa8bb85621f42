package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JunaidMachiyara/usmanglobal-books/config"
	"github.com/JunaidMachiyara/usmanglobal-books/controllers"
	"github.com/JunaidMachiyara/usmanglobal-books/middlewares"
	"github.com/JunaidMachiyara/usmanglobal-books/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding validations used by the request
// structs. "currency" accepts ISO-4217 style three-letter uppercase codes.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	})
}

func main() {
	config.LoadEnv()
	logger := config.GetLogger()

	st := store.NewStore()
	snapshotPath := config.GetSnapshotPath()
	if snapshotPath != "" {
		if err := st.LoadFromFile(snapshotPath); err != nil {
			config.LogError(logger, "server.go", "main", "LoadSnapshot", snapshotPath, err)
			os.Exit(1)
		}
	}

	registerValidators()
	router := gin.Default()
	router.Use(middlewares.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middlewares.AuthMiddleware())

	ctl := controllers.New(st, logger)
	registerRoutes(router, ctl)

	srv := &http.Server{
		Addr:    ":" + config.GetPort(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.LogError(logger, "server.go", "main", "ListenAndServe", srv.Addr, err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.LogError(logger, "server.go", "main", "Shutdown", nil, err)
	}
	if snapshotPath != "" {
		if err := st.SaveToFile(snapshotPath); err != nil {
			config.LogError(logger, "server.go", "main", "SaveSnapshot", snapshotPath, err)
		}
	}
}

func registerRoutes(router *gin.Engine, ctl *controllers.Controller) {
	api := router.Group("/api/v1")

	master := api.Group("/", middlewares.RequirePermission("master-data"))
	{
		master.POST("/suppliers", ctl.CreateSupplier)
		master.POST("/customers", ctl.CreateCustomer)
		master.POST("/agents", ctl.CreateAgent)
		master.POST("/items", ctl.CreateItem)
		master.POST("/original-types", ctl.CreateOriginalType)
		master.POST("/products", ctl.CreateProduct)
	}

	purchases := api.Group("/purchases", middlewares.RequirePermission("purchases"))
	{
		purchases.POST("", ctl.CreatePurchase)
		purchases.POST("/preview", ctl.LandedCostPreview)
		purchases.POST("/:id/correct-rate", ctl.CorrectPurchaseRate)
		purchases.DELETE("/:id", ctl.DeleteDocument(store.CollectionPurchases))
	}
	api.POST("/bundle-purchases", middlewares.RequirePermission("purchases"), ctl.CreateBundlePurchase)
	api.DELETE("/bundle-purchases/:id", middlewares.RequirePermission("purchases"), ctl.DeleteDocument(store.CollectionBundlePurchases))
	api.POST("/transfers/bale-to-raw", middlewares.RequirePermission("purchases"), ctl.TransferBaleToRaw)

	invoices := api.Group("/invoices", middlewares.RequirePermission("sales"))
	{
		invoices.POST("", ctl.CreateSalesInvoice)
		invoices.POST("/:id/post", ctl.PostSalesInvoice)
		invoices.DELETE("/:id", ctl.DeleteDocument(store.CollectionSalesInvoices))
	}

	orders := api.Group("/orders", middlewares.RequirePermission("sales"))
	{
		orders.POST("", ctl.CreateOrder)
		orders.POST("/:id/ship", ctl.ShipOrder)
		orders.POST("/:id/cancel", ctl.CancelOrder)
	}

	openings := api.Group("/openings", middlewares.RequirePermission("production"))
	{
		openings.POST("", ctl.CreateOpening)
		openings.DELETE("/:id", ctl.DeleteDocument(store.CollectionOriginalOpenings))
	}

	stock := api.Group("/stock")
	{
		stock.GET("/raw", ctl.RawStock)
		stock.GET("/raw/summary", ctl.RawStockSummary)
		stock.GET("/items/:id", ctl.ItemStock)
	}

	tools := api.Group("/tools", middlewares.RequireAdmin())
	{
		tools.POST("/convert-prices", ctl.ConvertItemPrices)
		tools.POST("/bulk-price-update", ctl.BulkPriceUpdate)
		tools.POST("/purchases/delete-range", ctl.DeletePurchasesInRange)
		tools.GET("/backup", ctl.BackupDownload)
		tools.POST("/restore", ctl.BackupRestore)
		tools.POST("/hard-reset", ctl.HardReset)
	}
}
