package repository

import (
	"embed"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/zlog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the processed_images schema up to date.
func (s *Storage) RunMigrations() error {
	const op = "repository.RunMigrations"

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := goose.Up(s.DB.Master, "migrations"); err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			zlog.Logger.Info().Msg("No migrations to apply")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
