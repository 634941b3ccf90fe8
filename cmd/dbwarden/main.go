package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-warden/internal/client"
	"github.com/MKhiriev/go-db-warden/internal/config"
	"github.com/MKhiriev/go-db-warden/internal/logger"
	"github.com/MKhiriev/go-db-warden/internal/provider"
	"github.com/MKhiriev/go-db-warden/internal/provider/postgres"
	"github.com/MKhiriev/go-db-warden/internal/provider/sqlite"
	"github.com/MKhiriev/go-db-warden/internal/server"
	"github.com/MKhiriev/go-db-warden/internal/tui"
	"github.com/MKhiriev/go-db-warden/locator"
	"github.com/MKhiriev/go-db-warden/manager"
	"github.com/MKhiriev/go-db-warden/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("db-warden").Fatal().Err(err).Msg("error getting configs")
	}

	// flags before the command: dbwarden -driver sqlite -d warden.db upgrade
	command := flag.Arg(0)
	if command == "" {
		command = "serve"
	}

	if command == "tui" {
		runTUI(cfg)
		return
	}

	log := logger.NewLogger("db-warden")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	m, upg, closeDB, err := buildManager(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error building database manager")
	}
	defer closeDB()

	m.OnStateChange(func(change manager.StateChange) {
		log.Info().
			Stringer("from", change.From).
			Stringer("to", change.To).
			Int("from_version", change.FromVersion).
			Int("to_version", change.ToVersion).
			Msg("database state changed")
	})

	m.Initialize(ctx)
	log.Info().
		Stringer("state", m.State()).
		Int("version", m.Version()).
		Msg("database detected")

	switch command {
	case "serve":
		runServe(ctx, cfg, m, upg, log)
	case "status":
		printStatus(m)
	case "upgrade":
		runUpgrade(ctx, cfg, m, upg, log)
		printStatus(m)
	case "cleanup":
		if err := m.Cleanup(ctx); err != nil {
			log.Fatal().Err(err).Msg("cleanup failed")
		}
		printStatus(m)
	case "backup":
		runBackup(ctx, cfg, m, log)
	case "restore":
		runRestore(ctx, m, log)
		printStatus(m)
	default:
		log.Fatal().Str("command", command).Msg("unknown command")
	}
}

// runServe optionally auto-upgrades the database and then serves the admin
// HTTP API until shutdown.
func runServe(ctx context.Context, cfg *config.StructuredConfig, m *manager.Manager, upg manager.Upgrader, log *logger.Logger) {
	if cfg.Upgrade.Auto && (m.State() == models.StateNew || m.State() == models.StateReadyOld) {
		runUpgrade(ctx, cfg, m, upg, log)
	}

	separator := resolveSeparator(cfg.Storage.Scripts.Separator)
	handler := server.NewHandler(m, upg, separator, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func runUpgrade(ctx context.Context, cfg *config.StructuredConfig, m *manager.Manager, upg manager.Upgrader, log *logger.Logger) {
	target := cfg.Upgrade.TargetVersion
	if target == 0 {
		if upg == nil {
			log.Fatal().Msg("no upgrader configured")
		}
		target = upg.MaxVersion(m)
	}

	log.Info().Int("target_version", target).Msg("upgrading database")
	if err := m.Upgrade(ctx, target); err != nil {
		log.Fatal().Err(err).Int("target_version", target).Msg("upgrade failed")
	}
}

func runBackup(ctx context.Context, cfg *config.StructuredConfig, m *manager.Manager, log *logger.Logger) {
	target := flag.Arg(1)
	if target == "" {
		name := fmt.Sprintf("warden-%s.bak", time.Now().Format("20060102-150405"))
		target = filepath.Join(cfg.Storage.Backup.Dir, name)
	}

	if err := m.Backup(ctx, target); err != nil {
		log.Fatal().Err(err).Str("target", target).Msg("backup failed")
	}
	fmt.Printf("Backup written: %s\n", target)
}

func runRestore(ctx context.Context, m *manager.Manager, log *logger.Logger) {
	source := flag.Arg(1)
	if source == "" {
		log.Fatal().Msg("restore requires a backup file argument")
	}

	if err := m.Restore(ctx, source); err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("restore failed")
	}
}

// runTUI connects to a remote warden server and shows the terminal status
// screen. It does not touch the database itself.
func runTUI(cfg *config.StructuredConfig) {
	log := logger.NewTUILogger("db-warden-tui")

	clientCfg, err := config.NewClientConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting client configs")
	}

	adminClient, err := client.NewHTTPAdminClient(clientCfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin client")
	}

	if err := tui.New(adminClient).Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ui error")
	}
}

// buildManager wires the driver-specific provider, detector, and backup with
// the script locator, upgrader, and cleanup processor. The returned close
// function releases the database connection pool.
func buildManager(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*manager.Manager, manager.Upgrader, func(), error) {
	separator := resolveSeparator(cfg.Storage.Scripts.Separator)

	loc, err := buildLocator(cfg.Storage.Scripts, log)
	if err != nil {
		return nil, nil, nil, err
	}

	upgrader := func(placeholder sq.PlaceholderFormat) *provider.ScriptUpgrader {
		return provider.NewScriptUpgrader(separator, placeholder, log)
	}
	cleanup := provider.NewScriptCleanup(separator, log)

	switch cfg.Storage.DB.Driver {
	case config.DriverPostgres:
		p, err := postgres.NewProvider(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, nil, nil, err
		}
		upg := upgrader(sq.Dollar)
		m := manager.New(p, postgres.NewDetector(p.DB(), log), loc, log.Logger).
			WithUpgrader(upg).
			WithCleanup(cleanup)
		return m, upg, func() { _ = p.Close() }, nil

	case config.DriverSQLite:
		p, err := sqlite.NewProvider(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, nil, nil, err
		}
		upg := upgrader(sq.Question)
		m := manager.New(p, sqlite.NewDetector(p.DB(), log), loc, log.Logger).
			WithUpgrader(upg).
			WithBackup(sqlite.NewFileBackup(p, log)).
			WithCleanup(cleanup)
		return m, upg, func() { _ = p.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("database driver is required: set -driver to %q or %q", config.DriverPostgres, config.DriverSQLite)
	}
}

func buildLocator(cfg config.Scripts, log *logger.Logger) (locator.Locator, error) {
	if cfg.Dir == "" {
		log.Warn().Msg("no scripts directory configured, no batches will be available")
		return locator.NewMemory(locator.WithLogger(log.Logger)), nil
	}

	loc, err := locator.NewFS(os.DirFS(cfg.Dir), ".", locator.WithLogger(log.Logger))
	if err != nil {
		return nil, fmt.Errorf("reading scripts directory %q: %w", cfg.Dir, err)
	}

	log.Info().Str("dir", cfg.Dir).Strs("batches", loc.Names()).Msg("script batches loaded")
	return loc, nil
}

// resolveSeparator applies the script separator convention: empty means the
// default "GO", the literal "none" disables splitting entirely.
func resolveSeparator(s string) string {
	switch s {
	case "":
		return locator.DefaultSeparator
	case "none":
		return ""
	default:
		return s
	}
}

func printStatus(m *manager.Manager) {
	fmt.Printf("State:   %s\n", m.State())
	fmt.Printf("Version: %d\n", m.Version())
	fmt.Printf("Batches: %v\n", m.GetBatchNames())
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
