package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-delivery-db/config"
	"food-delivery-db/database"
	"food-delivery-db/handlers"
	"food-delivery-db/metrics"
	"food-delivery-db/routes"
	"food-delivery-db/seed"
	"food-delivery-db/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const usage = `usage: fooddb <command>

commands:
  migrate   create or update the eight tables
  seed      load the sample restaurants, menu items and delivery personnel
  reset     drop all tables, migrate and seed
  stats     print row counts per table
  serve     migrate, then run the read-only inspection server (default)

write commands (order status changes publish notifications when KAFKA_ENABLED is set):
  order-status <order_id> <status>
  payment-status <order_id> <status>
  dispatch <order_id> <delivery_id>
  pickup <order_id>                       stamps picked_up_at, status out_for_delivery
  deliver <order_id>                      stamps delivered_at, status delivered
  menu-price <item_id> <price>
  menu-availability <item_id> <true|false>
  delete-restaurant <restaurant_id>
`

const shutdownTimeout = 10 * time.Second

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		fmt.Print(usage)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := config.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cmd, os.Args[min(2, len(os.Args)):], cfg, log); err != nil {
		log.WithError(err).WithField("command", cmd).Fatal("command failed")
	}
}

func run(ctx context.Context, cmd string, args []string, cfg *config.Config, log *logrus.Logger) error {
	db, err := database.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	if isWriteCommand(cmd) {
		st, closeStore, err := newStore(cfg, db, log)
		if err != nil {
			return err
		}
		defer closeStore()
		a := &app{store: st, catalog: newCatalog(cfg, st), out: os.Stdout, now: time.Now}
		return a.exec(ctx, cmd, args)
	}

	switch cmd {
	case "migrate":
		return migrate(db, log)
	case "seed":
		if err := migrate(db, log); err != nil {
			return err
		}
		_, err := seed.Load(ctx, db, log)
		return err
	case "reset":
		if err := database.Reset(db); err != nil {
			return err
		}
		log.Warn("all tables dropped")
		if err := migrate(db, log); err != nil {
			return err
		}
		_, err := seed.Load(ctx, db, log)
		return err
	case "stats":
		counts, err := store.New(db, log).Counts(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	case "serve":
		if err := migrate(db, log); err != nil {
			return err
		}
		return serve(ctx, cfg, db, log)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	metrics.MigrationsRun.Inc()
	log.Info("database migrated")
	return nil
}

func serve(ctx context.Context, cfg *config.Config, db *gorm.DB, log *logrus.Logger) error {
	// The server only reads, so it gets no notifier.
	st := store.New(db, log)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	engine := routes.NewEngine(&handlers.Handler{
		DB:       db,
		Store:    st,
		Catalog:  newCatalog(cfg, st),
		Currency: cfg.Currency,
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("inspection server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
