package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/tvsort/pkg/logger"
	"github.com/kasuboski/tvsort/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed schema/schema.sql
var baselineSchema string

// dbtx is satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type SQLite struct {
	db   *sql.DB
	path string

	closeOnce sync.Once
	closeErr  error
}

// New opens the episode database at filePath and migrates it to the latest schema version.
// A missing database file is created with the baseline schema first.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	s, err := open(ctx, filePath)
	if err != nil {
		return nil, err
	}

	latest, err := s.LatestVersion()
	if err != nil {
		s.Close()
		return nil, err
	}

	if err := s.Migrate(ctx, latest, false); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// Open opens the episode database at filePath without migrating it
func Open(ctx context.Context, filePath string) (storage.Storage, error) {
	return open(ctx, filePath)
}

func open(ctx context.Context, filePath string) (*SQLite, error) {
	log := logger.FromCtx(ctx)

	_, err := os.Stat(filePath)
	fresh := errors.Is(err, fs.ErrNotExist)
	if err != nil && !fresh {
		return nil, fmt.Errorf("failed to stat database %s: %w", filePath, err)
	}

	db, err := sql.Open("sqlite3", dsn(filePath, "_foreign_keys=on", "_busy_timeout=5000"))
	if err != nil {
		return nil, err
	}
	// keeps transactions from contending with each other inside one process
	db.SetMaxOpenConns(1)

	s := &SQLite{
		db:   db,
		path: filePath,
	}

	if fresh {
		log.Infow("creating episode database", "path", filePath)
		if err := s.Init(ctx, baselineSchema); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to create baseline schema: %w", err)
		}
	}

	return s, nil
}

func dsn(filePath string, params ...string) string {
	out := "file:" + filePath
	for i, p := range params {
		if i == 0 {
			out += "?" + p
			continue
		}
		out += "&" + p
	}
	return out
}

// Init applies the provided schema file contents to the database
func (s *SQLite) Init(ctx context.Context, schemas ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, s := range schemas {
		_, err := tx.ExecContext(ctx, s)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Close releases the database handle. Calling it more than once is safe.
func (s *SQLite) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

// inTx runs fn inside a transaction, rolling back when it fails
func (s *SQLite) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warnw("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}
