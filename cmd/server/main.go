package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/MDMahidul/bistro-boss-server/internal/gateway"
	"github.com/MDMahidul/bistro-boss-server/internal/handlers"
	"github.com/MDMahidul/bistro-boss-server/internal/logging"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
	"github.com/MDMahidul/bistro-boss-server/internal/service"
	"github.com/MDMahidul/bistro-boss-server/pkg/auth"
	"github.com/MDMahidul/bistro-boss-server/pkg/config"
	"github.com/MDMahidul/bistro-boss-server/pkg/db"
	"github.com/MDMahidul/bistro-boss-server/pkg/mq"
	"github.com/MDMahidul/bistro-boss-server/pkg/obs"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewDefault()

	// prices render as JSON numbers, matching the API clients expect
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.OTLPEndpoint != "" {
		shutdown := obs.InitTracer("bistro-boss-server", cfg.OTLPEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	gdb := db.Open(cfg.DatabaseDSN)

	users := repository.NewUserRepo(gdb)
	menu := repository.NewMenuRepo(gdb)
	carts := repository.NewCartRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, menu, carts, payments} {
		if err := m.Migrate(); err != nil {
			log.Fatal(err)
		}
	}

	var pub *mq.Publisher
	if cfg.AMQPURL != "" {
		pub, err = mq.NewPublisher(cfg.AMQPURL, cfg.MQExchange)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
	}

	tokens := auth.NewTokenService([]byte(cfg.AccessTokenSecret), time.Duration(cfg.TokenExpireMin)*time.Minute)
	dir := service.NewDirectory(users)
	checkout := service.NewCheckoutService(payments, pub, logger)
	stats := service.NewStatsService(users, menu, payments)
	intents := gateway.NewStripeGateway(cfg.PaymentSecretKey)

	r := gin.Default()
	handlers.Register(r, handlers.Deps{
		Tokens:   tokens,
		Dir:      dir,
		Menu:     menu,
		Carts:    carts,
		Intents:  intents,
		Checkout: checkout,
		Stats:    stats,
	})

	log.Println("bistro boss is running on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
