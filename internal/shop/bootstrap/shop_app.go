package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/pkg/logging"
	"github.com/guildworks/guildshop/internal/shop/application"
	httpwrap "github.com/guildworks/guildshop/internal/shop/transport/http"
	"github.com/guildworks/guildshop/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/guildworks/guildshop/internal/shop/infrastructure/postgres"
)

const (
	shutdownTimeout = 5 * time.Second
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ShopApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, "."); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	itemsRepository := postgres.NewItemsRepository(dbpool)
	itemLocker := postgres.NewItemLocker()
	walletsRepository := postgres.NewWalletsRepository(dbpool)
	purchaser := postgres.NewPurchaser()
	inventoryRepository := postgres.NewInventoryRepository(dbpool)
	adminRepository := postgres.NewAdminRepository(dbpool)

	purchaseCase := application.NewPurchaseCase(itemsRepository, itemLocker, walletsRepository, purchaser, txManager)
	catalogCase := application.NewCatalogCase(itemsRepository)
	userInfoCase := application.NewUserInfoCase(inventoryRepository, walletsRepository)
	adminCase := application.NewAdminCase(adminRepository, walletsRepository, txManager)

	shopHandler := httpwrap.NewShopHandler(purchaseCase, catalogCase, userInfoCase, logger)
	adminHandler := httpwrap.NewAdminHandler(adminCase, logger)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", shopHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/purchase", shopHandler.Purchase)
		api.GET("/items", shopHandler.ListItems)
		api.GET("/items/:"+httpwrap.ItemIDKey, shopHandler.GetItem)
		api.GET("/users/:"+httpwrap.UserIDKey+"/inventory", shopHandler.GetInventory)
		api.GET("/users/:"+httpwrap.UserIDKey+"/wallet", shopHandler.GetWallet)

		admin := api.Group("/admin")
		{
			admin.POST("/items", adminHandler.UpsertItem)
			admin.POST("/items/:"+httpwrap.ItemIDKey+"/enabled", adminHandler.SetItemEnabled)
			admin.POST("/wallets/:"+httpwrap.UserIDKey, adminHandler.EnsureWallet)
			admin.POST("/wallets/:"+httpwrap.UserIDKey+"/credit", adminHandler.CreditWallet)
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "port", a.cfg.HttpPort)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *ShopApp) Shutdown() {
	if a.dbpool == nil {
		return
	}

	a.logger.Info("closing database pool")
	a.dbpool.Close()
}
