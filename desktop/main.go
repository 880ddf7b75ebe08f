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
	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/serve"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/rogerio-castellano/ops-dashboard/internal/snapshot"
)

// The desktop build keeps everything in memory, mirrors it to a JSON file
// and only listens on loopback.
func main() {
	if err := run(); err != nil {
		log.Fatal("❌ ", err)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := repo.NewMemoryStore()
	state := snapshot.NewState(store)
	files := snapshot.NewFileStore(cfg.Snapshot.Path)

	loaded := files.Load()
	switch {
	case !loaded.Success:
		log.Printf("⚠️ could not read %s: %s, starting from defaults", files.Path(), loaded.Error)
		state.Replace(snapshot.DefaultData())
	case loaded.Data == nil:
		log.Printf("📄 no saved data at %s, starting from defaults", files.Path())
		state.Replace(snapshot.DefaultData())
	default:
		log.Printf("📂 loaded %s", files.Path())
		state.Replace(*loaded.Data)
	}

	autosaver := snapshot.NewAutosaver(files, cfg.Snapshot.Interval, state.Snapshot)
	autosaver.Start(ctx)
	defer func() {
		if res := autosaver.Stop(); !res.Success {
			log.Printf("❌ final save failed: %s", res.Error)
		}
	}()

	authSvc := auth.NewService(store.Users(), auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL), auth.NewMemoryRefreshStore(), cfg.Refresh.TTL)
	if _, err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		return fmt.Errorf("could not create admin user: %w", err)
	}

	srv := handlers.NewServer(store, report.NewEngine(store, cfg.Report.Timeout), authSvc, events.LogPublisher{})
	httpServer := &http.Server{
		Addr: "127.0.0.1:" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			Server:    srv,
			Desktop:   handlers.NewDesktop(state, files),
			StaticDir: cfg.Static.Dir,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("🖥️ Desktop dashboard on http://%s", httpServer.Addr)
	if err := serve.Run(ctx, httpServer, 5*time.Second); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
