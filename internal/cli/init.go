// Package cli wires configuration, storage and services for the arth command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"arthsaathi/internal/backend"
	"arthsaathi/internal/cache"
	"arthsaathi/internal/config"
	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/log"
	"arthsaathi/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the stderr logger for level and makes it the default.
func SetupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := log.DefaultConfig()
	cfg.Level = lvl
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads configuration from the environment, applies
// overrides in order and validates the result.
func LoadAndValidateConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App holds the wired services for one process.
type App struct {
	Config *config.Config
	Logger *log.Logger

	Accounts    *services.AccountService
	Timeline    *services.TimelineService
	Simulations *services.SimulationService
	Assessments *services.AssessmentService
	Podcasts    *services.PodcastService
	Replay      *services.ReplayService

	cleanup backend.CleanupFunc
	logger  *log.Logger
}

// NewApp opens the configured store and builds every service on top of it.
func NewApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger).CreateStore(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	catalogs := cache.NewCatalog(cfg.CatalogCacheSize, cfg.CatalogCacheTTL, loadFixtures(logger), logger)
	accounts := services.NewAccountService(res.Store, cfg.MockVerificationCode, logger)
	timeline := services.NewTimelineService(res.Store, cfg.TimelineCap, logger)
	sims := services.NewSimulationService(catalogs, services.SimulationConfig{
		PersonasFile: cfg.PersonasFile,
		MaxEvents:    cfg.MaxSessionEvents,
	}, timeline, accounts, logger)

	logger.WithComponent(log.ComponentApp).InfoContext(ctx, "Application ready",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, cfg.DataBackend)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Accounts:    accounts,
		Timeline:    timeline,
		Simulations: sims,
		Assessments: services.NewAssessmentService(timeline, accounts, logger),
		Podcasts:    services.NewPodcastService(timeline, accounts, logger),
		Replay:      services.NewReplayService(sims, cfg.ReplayConcurrency, logger),
		cleanup:     res.Cleanup,
		logger:      logger.WithComponent(log.ComponentApp),
	}, nil
}

// Close releases the store. Calling it again is a no-op.
func (a *App) Close() error {
	if a.cleanup == nil {
		return nil
	}
	cleanup := a.cleanup
	a.cleanup = nil
	if a.logger != nil {
		a.logger.Debug("Closing store", log.FieldOperation, log.OpShutdown)
	}
	return cleanup()
}

// loadFixtures decodes persona catalogues on cache misses and logs what was read.
func loadFixtures(logger *log.Logger) cache.LoadFunc {
	fl := logger.WithComponent(log.ComponentFixtures)
	return func(path string) (*fixtures.Catalog, error) {
		cat, err := fixtures.Load(path)
		if err != nil {
			return nil, err
		}
		if path == "" {
			path = "embedded"
		}
		fl.Debug("Persona catalogue decoded", log.FieldPath, path, log.FieldCount, cat.Len())
		return cat, nil
	}
}

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context, logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received",
				log.FieldOperation, log.OpShutdown,
				"signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
