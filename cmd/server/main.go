package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	web "clubplan/internal/adapters/http"
	"clubplan/internal/adapters/storage"
	sessionStore "clubplan/internal/adapters/storage/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode, foreign keys and a busy timeout keep concurrent readers happy.
	dbPath := envOrDefault("CLUBPLAN_DB", "clubplan.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stores := &web.Stores{
		SessionStore: sessionStore.NewSQLiteStore(db),
	}

	staticDir := envOrDefault("CLUBPLAN_STATIC_DIR", "static")
	handler := web.NewMux(staticDir, stores)

	addr := envOrDefault("CLUBPLAN_ADDR", ":8090")
	log.Printf("clubplan %s listening on %s (db %s)", version, addr, dbPath)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
