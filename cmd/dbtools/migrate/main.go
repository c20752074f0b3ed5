// cmd/dbtools/migrate/main.go

// Applies the embedded schema migrations to a SQLite database file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/db"
)

func main() {
	dbPath := flag.String("db", "data/clubcancha.db", "path to the SQLite database file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	m, sqlDB, err := db.NewMigrate(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare migrations")
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && verr != migrate.ErrNilVersion {
			log.Fatal().Err(verr).Msg("Failed to read version")
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return
	default:
		log.Fatal().Str("command", command).Msg("Unknown command (want up, down or version)")
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Str("command", command).Msg("Migration failed")
	}
	log.Info().Str("command", command).Msg("Done")
}
