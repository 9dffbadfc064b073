package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/licensure/licensure/internal/config"
)

const migrationsDir = "./migrations"

const (
	exitOK      = 0
	exitUsage   = 2
	exitMigrate = 4
)

var osExit = os.Exit

// handleCLICommand intercepts migrate and help invocations. It returns
// false when the process should continue into the server path.
func handleCLICommand(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "migrate":
		osExit(runMigrate(args[1:]))
		return true
	case "help", "-h", "--help":
		printHelp()
		osExit(exitOK)
		return true
	default:
		return false
	}
}

func runMigrate(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "missing migrate subcommand (up|down|status)")
		return exitUsage
	}
	subcmd := args[0]
	switch subcmd {
	case "up", "down", "status":
	default:
		fmt.Fprintf(os.Stderr, "unknown migrate subcommand: %s\n", subcmd)
		return exitUsage
	}

	cfg := config.Must()

	if err := migrate(subcmd, cfg.Database.Master.DSN()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s failed: %v\n", subcmd, err)
		return exitMigrate
	}

	return exitOK
}

func migrate(subcmd, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch subcmd {
	case "up":
		return goose.Up(db, migrationsDir)
	case "down":
		return goose.Down(db, migrationsDir)
	case "status":
		return goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unsupported migrate subcommand %q", subcmd)
	}
}

func printHelp() {
	fmt.Println("Licensure CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  licensure                 Start API server, worker and scheduler")
	fmt.Println("  licensure migrate up      Apply all pending migrations")
	fmt.Println("  licensure migrate down    Roll back one migration")
	fmt.Println("  licensure migrate status  Show migration status")
}
