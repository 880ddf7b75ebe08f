package handlers_integrated_test_suite

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	"github.com/rogerio-castellano/ops-dashboard/internal/db"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// TestMain skips the suite when no database is configured.
func TestMain(m *testing.M) {
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		log.Println("DATABASE_URL not set, skipping integrated handler tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	database, err = db.ConnectPostgres(ctx, dbUrl)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	store, err = repo.NewPostgresStore(ctx, database)
	if err != nil {
		log.Fatal("❌ Could not prepare schema:", err)
	}

	authSvc = auth.NewService(store.Users(), auth.NewIssuer("secret", time.Hour), auth.NewMemoryRefreshStore(), time.Hour)
	if _, err := authSvc.EnsureAdmin(ctx, adminEmail, adminPassword, "Admin"); err != nil {
		log.Fatal("❌ Could not create admin:", err)
	}

	token, err = generateToken(newRouter(), adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}

	code := m.Run()
	database.Close()
	os.Exit(code)
}
