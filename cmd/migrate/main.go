// Command migrate applies or reverts the canteen schema.
//
//	migrate up           apply every pending migration
//	migrate down [n]     revert n migrations (default 1)
//	migrate version      print the current schema version
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"canteen/cmd"
	"canteen/internal/adapters/out/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up | down [n] | version")
		os.Exit(2)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	m, err := migrations.New(configs.DatabaseURL())
	if err != nil {
		log.Fatalf("Error opening migrations: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := run(m, os.Args[1:]); err != nil {
		log.Fatalf("Error running migrate %s: %v", os.Args[1], err)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return fmt.Errorf("%q is not a positive number of steps", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("no migrations applied")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("schema version %d (dirty: %t)\n", version, dirty)
	return nil
}
