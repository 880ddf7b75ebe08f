package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	"github.com/rogerio-castellano/ops-dashboard/internal/config"
	"github.com/rogerio-castellano/ops-dashboard/internal/db"
	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/serve"
	"github.com/rogerio-castellano/ops-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/rogerio-castellano/ops-dashboard/internal/services"
)

// @title Ops Dashboard API
// @version 1.0
// @description REST API for the business operations dashboard: catalog, customers, orders, integrations and reports.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal("❌ ", err)
	}
}

// run owns every resource so its deferred closes happen before main exits.
func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer store.Close(context.Background())

	refresh, closeRefresh := refreshStore(ctx, cfg)
	defer closeRefresh()

	pub := publisher(cfg)
	defer pub.Close()

	authSvc := auth.NewService(store.Users(), auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL), refresh, cfg.Refresh.TTL)
	if created, err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		return fmt.Errorf("could not create admin user: %w", err)
	} else if created {
		log.Printf("👤 created admin user %s", cfg.Admin.Email)
	}

	if cfg.Seed.Enabled {
		seeded, err := services.SeedSampleData(ctx, store)
		if err != nil {
			log.Printf("⚠️ sample data not seeded: %v", err)
		} else if seeded {
			log.Println("🌱 seeded sample data")
		}
	}

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx)

	srv := handlers.NewServer(store, report.NewEngine(store, cfg.Report.Timeout), authSvc, pub)
	httpServer := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			Server:    srv,
			Limiter:   limiter,
			StaticDir: cfg.Static.Dir,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("✅ Server running on :%s", cfg.Port)
	if err := serve.Run(ctx, httpServer, 10*time.Second); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	log.Println("🛑 shut down")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (repo.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoDB.URI)
		if err != nil {
			return nil, err
		}
		store, err := repo.NewMongoStore(ctx, client, cfg.MongoDB.Database)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Printf("🍃 connected to mongodb %s", cfg.MongoDB.Database)
		return store, nil
	case config.DriverPostgres:
		database, err := db.ConnectPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		store, err := repo.NewPostgresStore(ctx, database)
		if err != nil {
			database.Close()
			return nil, err
		}
		log.Println("🐘 connected to postgres")
		return store, nil
	default:
		log.Println("⚠️ using the in-memory store, data is lost on restart")
		return repo.NewMemoryStore(), nil
	}
}

// refreshStore prefers redis when configured and falls back to memory.
func refreshStore(ctx context.Context, cfg *config.Config) (auth.RefreshStore, func()) {
	if cfg.Redis.Addr != "" {
		rs, err := redissvc.Connect(ctx, cfg.Redis.Addr)
		if err == nil {
			log.Printf("🔑 refresh tokens stored in redis at %s", cfg.Redis.Addr)
			return auth.NewRedisRefreshStore(rs.Rdb()), func() { rs.Close() }
		}
		log.Printf("⚠️ %v, keeping refresh tokens in memory", err)
	}
	mem := auth.NewMemoryRefreshStore()
	go mem.StartCleaner(ctx, 30*time.Minute)
	return mem, func() {}
}

func publisher(cfg *config.Config) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.LogPublisher{}
	}
	pub, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Printf("⚠️ kafka unavailable (%v), logging events instead", err)
		return events.LogPublisher{}
	}
	log.Printf("📣 publishing events to kafka topic %s", cfg.Kafka.Topic)
	return pub
}
