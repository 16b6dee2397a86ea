package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MarKarl30/UTS-BackEnd-Prog/config"
	"github.com/MarKarl30/UTS-BackEnd-Prog/repositories"
	"github.com/MarKarl30/UTS-BackEnd-Prog/routes"
	"github.com/MarKarl30/UTS-BackEnd-Prog/services"
	"github.com/MarKarl30/UTS-BackEnd-Prog/utils/redislog"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s starting in %s on :%s", cfg.AppName, cfg.Env, cfg.HTTPPort)

	// 2) Initialize infrastructure: Mongo (required), Redis (optional).
	db := config.InitMongo(cfg)
	rdb := config.InitRedis(cfg) // nil when redis_addr unset

	// 3) Build the Redis audit logger (list key: logs:app); no-op on nil client.
	rlog := redislog.New(rdb, "logs:app", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"mongo": cfg.MongoDB,
	})

	// 4) Construct repositories and services (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)

	userSvc := services.NewUserService(userRepo, rlog)
	productSvc := services.NewProductService(productRepo, rlog)
	purchaseSvc := services.NewPurchaseService(purchaseRepo, productRepo, rlog)

	// 5) Create the Gin engine and wire routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none, safe default
	routes.Setup(r, userSvc, productSvc, purchaseSvc, cfg.JWTSecret, cfg.JWTExpiry())

	// 6) Start the HTTP server; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
