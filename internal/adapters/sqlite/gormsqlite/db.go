package gormsqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	gormdriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DB splits reads and writes over two pools on the same file. The writer
// pool holds a single connection so SQLite never sees concurrent writers.
type DB struct {
	R *gorm.DB
	W *gorm.DB
}

type Tx struct {
	*gorm.DB
}

type cbfn func(tx *Tx) error

func (db *DB) ReadTX(ctx context.Context, fn cbfn) error {
	return db.R.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Tx{DB: tx})
	}, &sql.TxOptions{ReadOnly: true})
}

func (db *DB) WriteTX(ctx context.Context, fn cbfn) error {
	return db.W.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Tx{DB: tx})
	})
}

func (db *DB) WriteSQLDB() (*sql.DB, error) {
	return db.W.DB()
}

func (db *DB) Close() error {
	var firstErr error
	for _, g := range []*gorm.DB{db.R, db.W} {
		if err := closeGORM(g); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ io.Closer = (*DB)(nil)

// Open opens the reader and writer pools for file. SQL statements are logged
// through log at debug level; slow queries are reported as warnings.
func Open(file string, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}
	gormLogger := logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	reader, err := openPool(buildDSN(file, true), gormLogger, runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("open read db: %w", err)
	}
	writer, err := openPool(buildDSN(file, false), gormLogger, 1)
	if err != nil {
		_ = closeGORM(reader)
		return nil, fmt.Errorf("open write db: %w", err)
	}

	return &DB{R: reader, W: writer}, nil
}

func openPool(dsn string, gormLogger logger.Interface, maxConns int) (*gorm.DB, error) {
	g, err := gorm.Open(gormdriver.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		PrepareStmt: true,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := g.DB()
	if err != nil {
		_ = closeGORM(g)
		return nil, fmt.Errorf("sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.Ping(); err != nil {
		_ = closeGORM(g)
		return nil, fmt.Errorf("ping: %w", err)
	}
	return g, nil
}

// buildDSN encodes the pragmas into the DSN so the driver applies them to
// every new connection in the pool, not just the first one.
func buildDSN(file string, readOnly bool) string {
	pragmas := []string{
		"journal_mode(WAL)",
		"synchronous(NORMAL)",
		"temp_store(MEMORY)",
		"wal_autocheckpoint(1000)",
		"cache_size(-20000)",
		"mmap_size(268435456)",
		"foreign_keys(1)",
		"busy_timeout(5000)",
		"trusted_schema(OFF)",
	}
	if readOnly {
		pragmas = append(pragmas, "query_only(1)")
	} else {
		pragmas = append(pragmas, "query_only(0)")
	}

	var b strings.Builder
	b.WriteString("file:")
	b.WriteString(file)
	sep := "?"
	if !readOnly {
		b.WriteString("?_txlock=immediate")
		sep = "&"
	}
	for _, p := range pragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

func closeGORM(g *gorm.DB) error {
	if g == nil {
		return nil
	}
	sqlDB, err := g.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
