package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// Names возвращает имена файлов миграций в порядке применения
func Names() ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Apply выполняет все миграции по порядку; скрипты идемпотентны (IF NOT EXISTS)
// Каждый файл уходит одним запросом без аргументов, lib/pq допускает несколько выражений
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	names, err := Names()
	if err != nil {
		return fmt.Errorf("migrations: list files: %w", err)
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrations: read %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("migrations: apply %s: %w", name, err)
		}
	}

	return nil
}
