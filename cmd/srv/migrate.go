package main

import (
	"log"

	"github.com/boostbuddies/backend/internal/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := migration.MigrateTable(s.seedContext()); err != nil {
		return err
	}

	log.Println("Migrated database tables")
	return nil
}
