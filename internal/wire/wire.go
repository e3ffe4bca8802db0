// Package wire provides dependency injection for the leadfunnel application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/leadfunnel/internal/adapters/cli"
	"github.com/example/leadfunnel/internal/adapters/filesystem"
	"github.com/example/leadfunnel/internal/adapters/redis"
	"github.com/example/leadfunnel/internal/adapters/sqlite"
	"github.com/example/leadfunnel/internal/app"
	"github.com/example/leadfunnel/internal/config"
	"github.com/example/leadfunnel/internal/db"
	"github.com/example/leadfunnel/internal/logging"
	"github.com/example/leadfunnel/internal/ports/primary"
	"github.com/example/leadfunnel/internal/ports/secondary"
)

var (
	workDir       string
	cfg           *config.Config
	logger        *logrus.Logger
	leadService   primary.LeadService
	reportService primary.ReportService
	closers       []io.Closer
	once          sync.Once
)

// UseDir sets the project directory that config is resolved from.
// It must be called before any service is requested; the default is the working directory.
func UseDir(dir string) {
	workDir = dir
}

// Close releases the database, Redis client and log file, newest first.
func Close() {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && logger != nil {
			logger.WithError(err).Warn("failed to close resource")
		}
	}
	closers = nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir := workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logrus.Fatalf("failed to get working directory: %v", err)
		}
		dir = wd
	}

	var err error
	cfg, err = config.Resolve(dir)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	var logCloser io.Closer
	logger, logCloser, err = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   cfg.LogPath(),
	})
	if err != nil {
		logrus.Fatalf("failed to initialize logging: %v", err)
	}
	logging.Install(logger)
	closers = append(closers, logCloser)

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("failed to load timezone: %v", err)
	}

	log := logger.WithField("app_id", cfg.AppID)

	// Create repository adapter (secondary port) for the configured backend
	repo := openLeadRepository(cfg, log)
	store := app.LoadLeadStore(context.Background(), repo, cfg.AppID, log)
	log.WithFields(logrus.Fields{"backend": cfg.Backend, "leads": store.Len()}).Debug("services wired")

	// Create effect executor with injected repository
	executor := app.NewEffectExecutor(repo, log)

	settings := app.Settings{
		AppID:       cfg.AppID,
		PhoneRegion: cfg.PhoneRegion,
		Location:    loc,
	}

	// Create services (primary ports implementation)
	leadService = app.NewLeadService(store, executor, log, settings)
	reportService = app.NewReportService(store, log, settings)
}

// openLeadRepository never fails: a backend that cannot be opened is replaced
// by one that fails every call, so the store starts empty and saves are dropped.
func openLeadRepository(c *config.Config, log logrus.FieldLogger) secondary.LeadRepository {
	repo, err := newLeadRepository(c)
	if err != nil {
		log.WithError(err).WithField("backend", c.Backend).Warn("storage unavailable, changes will not be saved")
		return unavailableRepository{err: err}
	}
	return repo
}

func newLeadRepository(c *config.Config) (secondary.LeadRepository, error) {
	switch c.Backend {
	case config.BackendFile:
		return filesystem.NewLeadFileRepository(c.SnapshotDir()), nil
	case config.BackendRedis:
		client := redis.NewClient(c.RedisAddr)
		closers = append(closers, client)
		return redis.NewLeadRepository(client), nil
	case config.BackendSQLite:
		database, err := db.GetDB(c.DatabasePath())
		if err != nil {
			return nil, err
		}
		closers = append(closers, closerFunc(db.Close))
		return sqlite.NewLeadRepository(database), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// unavailableRepository stands in for a backend that failed to open.
type unavailableRepository struct {
	err error
}

func (r unavailableRepository) Load(context.Context, string) ([]*secondary.LeadRecord, error) {
	return nil, fmt.Errorf("storage unavailable: %w", r.err)
}

func (r unavailableRepository) Save(context.Context, string, []*secondary.LeadRecord) error {
	return fmt.Errorf("storage unavailable: %w", r.err)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// LeadAdapter returns a new LeadAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func LeadAdapter() *cliadapter.LeadAdapter {
	return LeadAdapterWithOutput(os.Stdout)
}

// LeadAdapterWithOutput returns a new LeadAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func LeadAdapterWithOutput(out io.Writer) *cliadapter.LeadAdapter {
	once.Do(initServices)
	return cliadapter.NewLeadAdapter(leadService, out)
}

// ReportAdapter returns a new ReportAdapter writing format to stdout.
func ReportAdapter(format string) *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout, format)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer, format string) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out, format)
}
