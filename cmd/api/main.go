package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "furnimart-backend/internal/adapter/http"
	idemp "furnimart-backend/internal/adapter/middleware"
	"furnimart-backend/internal/adapter/repository/mysql"
	"furnimart-backend/internal/config"
	"furnimart-backend/internal/infrastructure/cache"
	"furnimart-backend/internal/infrastructure/db"
	contractUC "furnimart-backend/internal/usecase/contract"
	planUC "furnimart-backend/internal/usecase/plan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// A dead DB does not keep the catalog from serving the fallback plans,
	// but contract submission needs the store; fail fast here.
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	planRepo := mysql.NewPlanRepository(gdb)
	contractRepo := mysql.NewContractRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	plans := planUC.NewUsecase(planRepo)
	contracts := contractUC.NewUsecase(plans, contractRepo, uow, contractUC.LogNotifier{})

	h := httpadp.NewHandler()
	planHandler := httpadp.NewPlanHandler(plans)
	contractHandler := httpadp.NewContractHandler(contracts)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/plans", planHandler.ListPlans)
	e.POST("/contracts/quote", contractHandler.Quote)
	e.GET("/contracts/:contract_number", contractHandler.GetContract)

	// Submissions go through the Redis idempotency guard: one in-flight
	// submission per draft, duplicates replayed.
	submitTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	e.POST("/contracts", contractHandler.CreateContract, idemp.IdempotencyMiddleware(rdb, submitTTL))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
