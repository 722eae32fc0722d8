package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aashutoshk/shopfront/internal/config"
	"github.com/aashutoshk/shopfront/internal/modules/catalog"
	"github.com/aashutoshk/shopfront/internal/modules/order"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment as-is")
	}
	cfg := config.Load()

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	var catalogRepo catalog.Repository
	var orderRepo order.Repository

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatal("ping database", zap.Error(err))
		}
		logger.Info("connected to postgres")

		catalogRepo = catalog.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		logger.Info("DATABASE_URL not set, serving the demo catalog from memory")
		memCatalog := catalog.NewMemoryRepository(demoCatalog())
		catalogRepo = memCatalog
		orderRepo = order.NewMemoryRepository(memCatalog)
	}

	catalog.NewHandler(catalog.NewService(catalogRepo)).RegisterRoutes(router)
	order.NewHandler(order.NewService(orderRepo)).RegisterRoutes(router)

	logger.Info("shopfront API listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func demoCatalog() []catalog.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []catalog.Product{
		{ID: 1, Name: "Mechanical Keyboard", Category: "Electronics", StockQty: 12, Price: price("89.99")},
		{ID: 2, Name: "Wireless Mouse", Category: "Electronics", StockQty: 30, Price: price("24.50")},
		{ID: 3, Name: "Desk Lamp", Category: "Home", StockQty: 8, Price: price("34.00")},
		{ID: 4, Name: "Ceramic Mug", Category: "Home", StockQty: 50, Price: price("9.99")},
		{ID: 5, Name: "Notebook", Category: "Stationery", StockQty: 100, Price: price("4.25")},
		{ID: 6, Name: "Fountain Pen", Category: "Stationery", StockQty: 15, Price: price("18.75")},
	}
}
