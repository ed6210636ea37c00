// Package sqlstore provides the relational catalog store backed by
// database/sql. SQLite is the default; MySQL and PostgreSQL share the same
// two-table schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"example.com/catalog-api/internal/infra/persistence/sqlstore/schema"
)

// Store owns the process-wide database handle.
type Store struct {
	db      *sql.DB
	dialect dialect
	log     logrus.FieldLogger
}

// Open connects to the store selected by driver and verifies the
// connection. The caller must Close the returned Store.
func Open(ctx context.Context, driver, dsn string, logger logrus.FieldLogger) (*Store, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s dsn is required", d.name)
	}

	db, err := sql.Open(d.sqlDriver, d.dsn(dsn))
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", d.name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", d.name, err)
	}

	logger.WithField("driver", d.name).Info("store opened")
	return &Store{db: db, dialect: d, log: logger}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the catalog tables when they do not exist yet.
// Existing tables are left untouched; there is no migration step.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl, err := fs.ReadFile(schema.FS, s.dialect.name+".sql")
	if err != nil {
		return fmt.Errorf("read %s schema: %w", s.dialect.name, err)
	}
	for _, stmt := range splitStatements(string(ddl)) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// splitStatements breaks a DDL file into single statements; the MySQL
// driver rejects multi-statement Exec calls.
func splitStatements(ddl string) []string {
	var out []string
	for _, part := range strings.Split(ddl, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
