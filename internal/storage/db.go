package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// timeLayout is how every timestamp column is stored.
const timeLayout = "2006-01-02 15:04:05"

type DB struct {
	connection *sql.DB
	dialect    Dialect
	now        func() time.Time
}

// NewDB opens a PostgreSQL or SQLite database depending on the DSN:
// postgres:// and postgresql:// URLs (or key=value DSNs) go to lib/pq;
// sqlite://path, file:..., :memory: and *.db paths go to SQLite.
func NewDB(dataSourceName string) (*DB, error) {
	dialect, dsn := detectDialect(dataSourceName)

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, &QueryError{Op: "open", Cause: err}
	}

	switch dialect {
	case DialectSQLite:
		// Single writer; also keeps a :memory: database on one connection.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &QueryError{Op: "ping", Cause: err}
	}

	return &DB{connection: db, dialect: dialect, now: time.Now}, nil
}

func detectDialect(dsn string) (Dialect, string) {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, dsn
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, dsn[len("sqlite://"):]
	case strings.HasPrefix(lower, "file:"), lower == ":memory:",
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return DialectSQLite, dsn
	}
	return DialectPostgres, dsn
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		slog.Error("error closing the database connection", "error", err)
	}
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) timestamp() string {
	return db.now().UTC().Format(timeLayout)
}

// rebind rewrites ? placeholders to $n for PostgreSQL. Queries in this
// package never contain a literal question mark inside quotes.
func (db *DB) rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.connection.ExecContext(ctx, db.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.connection.QueryRowContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.connection.QueryContext(ctx, db.rebind(query), args...)
}

// withTx runs fn inside a transaction, rolling back on error.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// helper to split comma-separated values
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
