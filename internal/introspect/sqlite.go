package introspect

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

const sqliteDriver = "sqlite"

const tableInfoQuery = `SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`

// SQLiteIntrospector reads column metadata from a SQLite database
type SQLiteIntrospector struct {
	builder
	db *sql.DB
}

// OpenSQLite opens the database at dsn and verifies the connection
func OpenSQLite(ctx context.Context, dsn string, opts Options) (*SQLiteIntrospector, error) {
	db, err := sql.Open(sqliteDriver, dsn)
	if err != nil {
		return nil, errors.Wrap(errors.IntrospectionErrorCode, "failed to open database", err).
			WithContext("dsn", dsn)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.IntrospectionErrorCode, "failed to connect to database", err).
			WithContext("dsn", dsn)
	}
	return NewSQLiteIntrospector(db, opts), nil
}

// NewSQLiteIntrospector wraps an open database handle
func NewSQLiteIntrospector(db *sql.DB, opts Options) *SQLiteIntrospector {
	return &SQLiteIntrospector{
		builder: builder{opts: opts, resolver: NewJavaTypeResolver()},
		db:      db,
	}
}

// Close closes the database handle
func (s *SQLiteIntrospector) Close() error {
	return s.db.Close()
}

// Introspect reads the columns of table through PRAGMA table_info. Declared
// columns in the configuration are ignored; overrides still apply.
func (s *SQLiteIntrospector) Introspect(ctx context.Context, table config.TableConfig) (*models.IntrospectedTable, error) {
	rows, err := s.db.QueryContext(ctx, tableInfoQuery, table.TableName)
	if err != nil {
		return nil, errors.WrapIntrospectionError(table.TableName, err)
	}
	defer rows.Close()

	var raw []rawColumn
	for rows.Next() {
		var (
			name, declared string
			notNull, pk    int
		)
		if err := rows.Scan(&name, &declared, &notNull, &pk); err != nil {
			return nil, errors.WrapIntrospectionError(table.TableName, err)
		}
		raw = append(raw, rawColumn{
			name:     name,
			jdbcType: SQLiteJDBCType(declared),
			nullable: notNull == 0 && pk == 0,
			pkSeq:    pk,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapIntrospectionError(table.TableName, err)
	}
	if len(raw) == 0 {
		return nil, errors.Newf(errors.IntrospectionErrorCode, "table '%s' was not found", table.TableName).
			WithContext("table", table.TableName).
			WithSuggestion("Check the tableName and the jdbcConnection dsn")
	}
	return s.build(table, raw)
}
