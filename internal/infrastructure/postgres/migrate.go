package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/pedidos-api/pkg/logger"
)

const migrationsDir = "migrations"

// RunMigrations ejecuta en orden los archivos SQL del directorio /migrations.
// Son idempotentes (IF NOT EXISTS / OR REPLACE), así que correrlas en cada
// arranque es seguro.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("leer migraciones: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("leer migración %s: %w", name, err)
		}
		log.Info().Str("file", name).Msg("aplicando migración")
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("aplicar migración %s: %w", name, err)
		}
	}

	log.Info().Int("count", len(filenames)).Msg("migraciones aplicadas")
	return nil
}
