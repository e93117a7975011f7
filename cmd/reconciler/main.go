package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MDMahidul/bistro-boss-server/internal/logging"
	"github.com/MDMahidul/bistro-boss-server/internal/reconcile"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
	"github.com/MDMahidul/bistro-boss-server/pkg/config"
	"github.com/MDMahidul/bistro-boss-server/pkg/db"
	"github.com/MDMahidul/bistro-boss-server/pkg/mq"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the reconciler")
	}
	logger := logging.NewDefault()

	gdb := db.Open(cfg.DatabaseDSN)
	carts := repository.NewCartRepo(gdb)

	cons, err := mq.NewConsumer(cfg.AMQPURL, cfg.MQExchange, "payment.reconcile.q",
		[]string{reconcile.RKPaymentRecorded})
	if err != nil {
		log.Fatal(err)
	}
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := cons.Deliveries(ctx)
	if err != nil {
		log.Fatal(err)
	}

	w := reconcile.NewWorker(carts, logger)
	go func() {
		if err := w.Run(ctx, msgs); err != nil {
			log.Printf("reconciler run: %v", err)
		}
	}()
	log.Println("reconciler consuming", reconcile.RKPaymentRecorded)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
}
