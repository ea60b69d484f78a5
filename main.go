package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busbook/internal/config"
	"busbook/internal/db"
	router "busbook/internal/http"
	"busbook/internal/http/handlers"
	"busbook/internal/locks"
	"busbook/internal/repositories"
	"busbook/internal/services"
	"busbook/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatalf("busbook: %v", err)
	}
}

func run() error {
	var configPath, addr string

	flagSet := pflag.NewFlagSet("busbook", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (env vars override it)")
	flagSet.StringVar(&addr, "addr", "", "listen address, overrides app_addr / APP_ADDR")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	env, err := intconfig.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		env.AppAddr = addr
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	shutdownTracing, err := tracing.Init(context.Background(), env.OTLPEndpoint, version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing()

	conn, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		return err
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.EnsureSchema(ctx, conn)
	cancel()
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	guard, closeGuard, err := bookingGuard(env)
	if err != nil {
		return err
	}
	defer closeGuard()

	r := router.NewRouter(env, newHandlers(env, db.New(conn), guard))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           otelhttp.NewHandler(r, "busbook"),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (booking_lock=%s)", env.AppAddr, env.BookingLock)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("server stopped cleanly")
	return nil
}

func bookingGuard(env intconfig.Env) (locks.Locker, func(), error) {
	switch env.BookingLock {
	case intconfig.LockNone:
		return locks.Noop{}, func() {}, nil
	case intconfig.LockRedis:
		rl, err := locks.NewRedis(env.RedisAddr, env.RedisPassword, env.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("booking lock: %w", err)
		}
		return rl, func() { _ = rl.Close() }, nil
	default:
		return locks.NewMemory(), func() {}, nil
	}
}

func newHandlers(env intconfig.Env, gw db.Gateway, guard locks.Locker) handlers.Handlers {
	buses := repositories.BusRepository{GW: gw}
	seats := repositories.SeatRepository{GW: gw}
	routes := repositories.RouteRepository{GW: gw}
	occupancy := repositories.OccupancyRepository{GW: gw}
	intents := repositories.IntentRepository{GW: gw}

	return handlers.Handlers{
		Catalog: services.CatalogService{Buses: buses, Seats: seats, Routes: routes, Intents: intents},
		Ledger:  services.SeatLedger{Buses: buses, Seats: seats, Occupancy: occupancy, Guard: guard},
		Admin: services.AdminEditService{
			Buses:         buses,
			Seats:         seats,
			Routes:        routes,
			GW:            gw,
			Transactional: env.AdminEditTx,
		},
		Auth: services.AuthService{
			Admins:   repositories.AdminRepository{GW: gw},
			Secret:   []byte(env.JWTSecret),
			TokenTTL: env.TokenTTL,
		},
		Intents:      services.IntentService{Buses: buses, Intents: intents},
		Tickets:      services.TicketService{Occupancy: occupancy, Buses: buses, Routes: routes},
		SecureCookie: env.GinMode == gin.ReleaseMode,
	}
}
