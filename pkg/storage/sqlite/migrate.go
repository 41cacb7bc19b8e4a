package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kasuboski/tvsort/pkg/logger"
)

const migrationsTable = "schema_migrations"

var (
	ErrMigrationGap    = errors.New("migration versions are not contiguous")
	ErrDirtySchema     = errors.New("schema is in a dirty state")
	ErrUnknownVersion  = errors.New("unknown schema version")
	ErrMissingRollback = errors.New("migration has no rollback")
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationVersions lists the embedded migration versions and verifies they run 1..N with a
// forward and rollback script for each.
func migrationVersions(fsys fs.FS) ([]uint, error) {
	src, err := iofs.New(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	defer src.Close()

	var versions []uint
	v, err := src.First()
	for err == nil {
		versions = append(versions, v)
		v, err = src.Next(v)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	for i, v := range versions {
		if v != uint(i+1) {
			return nil, fmt.Errorf("%w: expected version %d, found %d", ErrMigrationGap, i+1, v)
		}
		if err := hasScript(src.ReadUp, v); err != nil {
			return nil, fmt.Errorf("%w: version %d has no forward script", ErrMigrationGap, v)
		}
		if err := hasScript(src.ReadDown, v); err != nil {
			return nil, fmt.Errorf("%w: version %d", ErrMissingRollback, v)
		}
	}

	return versions, nil
}

func hasScript(read func(uint) (io.ReadCloser, string, error), version uint) error {
	r, _, err := read(version)
	if err != nil {
		return err
	}
	return r.Close()
}

// LatestVersion is the highest schema version the embedded migrations can reach
func (s *SQLite) LatestVersion() (uint, error) {
	versions, err := migrationVersions(migrationFiles)
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, nil
	}
	return versions[len(versions)-1], nil
}

// SchemaVersion returns the applied schema version. A database without migration bookkeeping is at version 0.
func (s *SQLite) SchemaVersion(ctx context.Context) (uint, error) {
	version, dirty, err := readVersion(ctx, s.db)
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}
	return version, nil
}

func readVersion(ctx context.Context, db *sql.DB) (uint, bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
	if err := db.QueryRowContext(ctx, query, migrationsTable).Scan(&count); err != nil {
		return 0, false, err
	}
	if count == 0 {
		return 0, false, nil
	}

	var v sql.NullInt64
	var dirty bool
	err := db.QueryRowContext(ctx, `SELECT version, dirty FROM `+migrationsTable+` LIMIT 1`).Scan(&v, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return uint(v.Int64), dirty, nil
}

// Migrate moves the schema one version at a time toward target. Rolling forward to an older
// version, or back to a newer one, leaves the schema untouched.
func (s *SQLite) Migrate(ctx context.Context, target uint, rollback bool) error {
	return s.migrate(ctx, migrationFiles, target, rollback)
}

func (s *SQLite) migrate(ctx context.Context, fsys fs.FS, target uint, rollback bool) error {
	log := logger.FromCtx(ctx)

	versions, err := migrationVersions(fsys)
	if err != nil {
		return err
	}

	var latest uint
	if len(versions) > 0 {
		latest = versions[len(versions)-1]
	}
	if target > latest {
		return fmt.Errorf("%w: %d, latest is %d", ErrUnknownVersion, target, latest)
	}

	m, closeMigrator, err := s.newMigrator(fsys)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeMigrator(); err != nil {
			log.Warnw("failed to close migrator", "error", err)
		}
	}()

	current, err := migratorVersion(m)
	if err != nil {
		return err
	}

	if current == target || (rollback && current < target) || (!rollback && current > target) {
		log.Debugw("schema already in place", "version", current, "target", target, "rollback", rollback)
		return nil
	}

	step := 1
	if rollback {
		step = -1
	}

	for current != target {
		if err := ctx.Err(); err != nil {
			return err
		}

		expected := uint(int(current) + step)
		log.Infow("migrating schema", "from", current, "to", expected)

		if err := m.Steps(step); err != nil {
			return fmt.Errorf("failed to migrate schema from version %d to %d: %w", current, expected, err)
		}

		current, err = migratorVersion(m)
		if err != nil {
			return err
		}
		if current != expected {
			return fmt.Errorf("%w: expected version %d after step, found %d", ErrMigrationGap, expected, current)
		}
	}

	return nil
}

// newMigrator opens a dedicated connection whose transactions take an exclusive lock, so no other
// writer can interleave with a migration step.
func (s *SQLite) newMigrator(fsys fs.FS) (*migrate.Migrate, func() error, error) {
	db, err := sql.Open("sqlite3", dsn(s.path, "_txlock=exclusive", "_busy_timeout=5000"))
	if err != nil {
		return nil, nil, err
	}

	sourceDriver, err := iofs.New(fsys, "migrations")
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	dbDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		sourceDriver.Close()
		db.Close()
		return nil, nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", dbDriver)
	if err != nil {
		sourceDriver.Close()
		dbDriver.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, func() error {
		srcErr, dbErr := m.Close()
		return errors.Join(srcErr, dbErr)
	}, nil
}

func migratorVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}
	return version, nil
}
