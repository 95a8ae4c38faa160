package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/atvirokodosprendimai/showsapi/internal/adapters/httpapi"
	sqliteadapter "github.com/atvirokodosprendimai/showsapi/internal/adapters/sqlite"
	"github.com/atvirokodosprendimai/showsapi/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/showsapi/internal/core/usecase"
	"github.com/atvirokodosprendimai/showsapi/migrations"
)

type Config struct {
	Addr   string
	DBPath string
	// APIKey enables key authentication on /api/v1 when non-empty.
	APIKey     string
	APIKeyName string
	Logger     *slog.Logger
}

// NewServer opens and migrates the database, wires the services and returns
// an http.Server plus a closer for the database pools.
func NewServer(ctx context.Context, cfg Config) (*http.Server, io.Closer, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	db, err := gormsqlite.Open(cfg.DBPath, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	writeSQLDB, err := db.WriteSQLDB()
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("resolve writer sql db: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := migrations.Up(migrateCtx, writeSQLDB); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if v, err := migrations.Version(migrateCtx, writeSQLDB); err == nil {
		log.Info("database ready", "path", cfg.DBPath, "schema_version", v)
	}

	showService := usecase.NewShowService(sqliteadapter.NewShowRepository(db), usecase.NewShowValidator())
	auditService := usecase.NewAuditService(sqliteadapter.NewAuditTrailRepository(db))

	var authService *usecase.AuthService
	if cfg.APIKey != "" {
		authService = usecase.NewAuthService(sqliteadapter.NewAPIKeyRepository(db))
		if err := authService.Register(migrateCtx, cfg.APIKey, cfg.APIKeyName); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("register api key: %w", err)
		}
		log.Info("api key authentication enabled")
	}

	handler, err := httpapi.NewHandler(showService, auditService, authService, log)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	return server, db, nil
}
