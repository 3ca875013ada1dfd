// Package cli defines Cobra command definitions for the planctl CLI.
// This file contains the root command and shared flags.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"clubplan/internal/adapters/storage"
	sessionStore "clubplan/internal/adapters/storage/session"
)

var (
	dbPath  string
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Weekly session planning toolbox",
	Long: `Planctl works on the club's session database without going through
the HTTP server: it imports session fixtures and prints the computed
weekly planning layout.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "clubplan.db", "path to the sqlite database")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(weekCmd)
}

// openStore opens the sqlite database and returns a ready session store.
// The caller owns closing the returned *sql.DB.
func openStore() (*sessionStore.SQLiteStore, *sql.DB, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := storage.InitDB(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	return sessionStore.NewSQLiteStore(db), db, nil
}
