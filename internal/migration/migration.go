// Package migration applies the ordered NNN_name.sql schema files exactly once.
package migration

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/db"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/metrics"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

var versionPattern = regexp.MustCompile(`^(\d+)_`)

// Source is where migration files are read from
type Source struct {
	FS  fs.FS
	Dir string
}

// EmbeddedSource returns the migrations compiled into the binary
func EmbeddedSource() Source {
	return Source{FS: db.Migrations, Dir: db.MigrationsDir}
}

// NewSource returns a source reading from dir, or the embedded migrations when dir is empty
func NewSource(dir string) Source {
	if dir == "" {
		return EmbeddedSource()
	}
	return Source{FS: os.DirFS(dir), Dir: "."}
}

// File is one migration file available in the source
type File struct {
	Filename string `json:"filename"`
	Version  int    `json:"version"`
}

// Status is the executed and pending migration sets
type Status struct {
	Executed []schema.SchemaMigration `json:"executed"`
	Pending  []string                 `json:"pending"`
}

// Runner reports and applies schema migrations
//
//go:generate mockgen -source=migration.go -destination=../mocks/migration_runner.go -package=mocks -mock_names=Runner=MockMigrationRunner
type Runner interface {
	// Status lists executed migrations and the pending files in apply order
	Status(ctx context.Context) (*Status, error)
	// Run applies every pending migration and returns how many were applied.
	// Each file is executed atomically together with its version row; the first
	// failure is rolled back and stops the run.
	Run(ctx context.Context) (int, error)
}

type runner struct {
	store  store.Store
	source Source
}

// NewRunner creates a migration runner over st reading files from source
func NewRunner(st store.Store, source Source) Runner {
	return &runner{
		store:  st,
		source: source,
	}
}

// ParseVersion returns the leading number of a NNN_name.sql filename, 0 when there is none
func ParseVersion(filename string) int {
	m := versionPattern.FindStringSubmatch(filename)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

// Available lists the .sql files of the source ordered by version, then filename
func (r *runner) Available() ([]File, error) {
	entries, err := fs.ReadDir(r.source.FS, r.source.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, File{
			Filename: entry.Name(),
			Version:  ParseVersion(entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Version != files[j].Version {
			return files[i].Version < files[j].Version
		}
		return files[i].Filename < files[j].Filename
	})

	return files, nil
}

func (r *runner) pending(ctx context.Context) ([]schema.SchemaMigration, []File, error) {
	if err := r.store.EnsureMigrationsTable(ctx); err != nil {
		return nil, nil, err
	}

	executed, err := r.store.GetExecutedMigrations(ctx)
	if err != nil {
		return nil, nil, err
	}

	available, err := r.Available()
	if err != nil {
		return nil, nil, err
	}

	done := make(map[string]struct{}, len(executed))
	for _, m := range executed {
		done[m.Filename] = struct{}{}
	}

	pending := make([]File, 0, len(available))
	for _, f := range available {
		if _, ok := done[f.Filename]; !ok {
			pending = append(pending, f)
		}
	}

	return executed, pending, nil
}

// Status lists executed migrations and the pending files in apply order
func (r *runner) Status(ctx context.Context) (*Status, error) {
	executed, pending, err := r.pending(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Executed: executed,
		Pending:  make([]string, len(pending)),
	}
	for i, f := range pending {
		status.Pending[i] = f.Filename
	}
	return status, nil
}

// Run applies every pending migration in order
func (r *runner) Run(ctx context.Context) (int, error) {
	_, pending, err := r.pending(ctx)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		logger.InfoCtx(ctx, "No pending migrations")
		return 0, nil
	}

	logger.InfoCtx(ctx, "Running migrations", zap.Int("count", len(pending)))

	applied := 0
	for _, f := range pending {
		if err := r.apply(ctx, f); err != nil {
			metrics.MigrationFailures.Inc()
			logger.ErrorCtx(ctx, err, zap.String("filename", f.Filename), zap.Int("applied", applied))
			return applied, err
		}

		applied++
		metrics.MigrationsApplied.Inc()
		logger.InfoCtx(ctx, "Migration executed", zap.String("filename", f.Filename), zap.Int("version", f.Version))
	}

	logger.InfoCtx(ctx, "All migrations completed", zap.Int("applied", applied))
	return applied, nil
}

func (r *runner) apply(ctx context.Context, f File) error {
	content, err := fs.ReadFile(r.source.FS, path.Join(r.source.Dir, f.Filename))
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", f.Filename, err)
	}

	err = r.store.RunAtomic(ctx, func(tx store.Store) error {
		if err := tx.ExecMigration(ctx, string(content)); err != nil {
			return err
		}
		return tx.RecordMigration(ctx, f.Filename, f.Version)
	})
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", f.Filename, err)
	}
	return nil
}
