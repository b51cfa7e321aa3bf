// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/runoshun/fixed-skips/internal/domain"
	"github.com/runoshun/fixed-skips/internal/infra/config"
	"github.com/runoshun/fixed-skips/internal/infra/env"
	"github.com/runoshun/fixed-skips/internal/infra/executor"
	"github.com/runoshun/fixed-skips/internal/infra/git"
	"github.com/runoshun/fixed-skips/internal/infra/gitrepo"
	"github.com/runoshun/fixed-skips/internal/infra/grep"
	"github.com/runoshun/fixed-skips/internal/infra/logging"
	"github.com/runoshun/fixed-skips/internal/infra/reportfile"
	"github.com/runoshun/fixed-skips/internal/usecase"
)

// Options holds what the command line decides before the container is built.
// Fields are ordered to minimize memory padding.
type Options struct {
	Env        domain.Environment   // nil means the process environment
	Runner     domain.ProcessRunner // nil means os/exec
	Stderr     io.Writer            // Diagnostic stream
	Dir        string               // Working tree root
	ConfigPath string               // Explicit config file; empty means Dir/.fixed-skips.toml
	ReportPath string               // YAML report destination; empty disables it
	Debug      bool
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Env       domain.Environment
	Runner    domain.ProcessRunner
	CommitLog domain.CommitLog
	Searcher  domain.Searcher
	Reports   domain.ReportWriter
	Logger    domain.Logger

	// Configuration
	Config *domain.Config
}

// New loads the configuration and creates a Container.
func New(opts Options) (*Container, error) {
	var loader domain.ConfigLoader
	if opts.ConfigPath != "" {
		loader = config.NewLoaderWithPath(opts.ConfigPath)
	} else {
		loader = config.NewLoader(opts.Dir)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg.Dir = opts.Dir
	cfg.Debug = opts.Debug || cfg.Log.Level == "debug"

	return NewWithConfig(cfg, opts)
}

// NewWithConfig creates a Container for an already loaded configuration.
func NewWithConfig(cfg *domain.Config, opts Options) (*Container, error) {
	level := logging.ParseLevel(cfg.Log.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(opts.Stderr, level)
	for _, w := range cfg.Warnings {
		logger.Warn("config", w)
	}

	environment := opts.Env
	if environment == nil {
		environment = env.OS{}
	}
	runner := opts.Runner
	if runner == nil {
		runner = executor.NewClient()
	}

	var commitLog domain.CommitLog
	switch cfg.Git.Backend {
	case domain.GitBackendExec, "":
		commitLog = git.NewClient(runner, cfg.Dir)
	case domain.GitBackendGoGit:
		commitLog = gitrepo.New(cfg.Dir)
	default:
		return nil, domain.NewError(domain.KindConfiguration,
			fmt.Errorf("%w: %q", domain.ErrUnknownGitBackend, cfg.Git.Backend))
	}

	var reports domain.ReportWriter
	if opts.ReportPath != "" {
		reports = reportfile.New(opts.ReportPath)
	}

	return &Container{
		Env:       environment,
		Runner:    runner,
		CommitLog: commitLog,
		Searcher:  grep.NewSearcher(runner, logger, cfg.Dir),
		Reports:   reports,
		Logger:    logger,
		Config:    cfg,
	}, nil
}

// UseCase factory methods

// ReadChangeMessageUseCase returns a new ReadChangeMessage use case.
func (c *Container) ReadChangeMessageUseCase() *usecase.ReadChangeMessage {
	return usecase.NewReadChangeMessage(c.Env)
}

// ReadCommitLogUseCase returns a new ReadCommitLog use case.
func (c *Container) ReadCommitLogUseCase() *usecase.ReadCommitLog {
	return usecase.NewReadCommitLog(c.Env, c.CommitLog, c.Logger)
}

// ScanSkipsUseCase returns a new ScanSkips use case.
func (c *Container) ScanSkipsUseCase() *usecase.ScanSkips {
	filter := domain.NewFileFilter(c.Config.Scan.Extensions, c.Config.Scan.Scripts)
	return usecase.NewScanSkips(c.Searcher, filter, c.Logger)
}

// CheckFixedSkipsUseCase returns a new CheckFixedSkips use case.
func (c *Container) CheckFixedSkipsUseCase() (*usecase.CheckFixedSkips, error) {
	extractor, err := domain.NewIssueRefExtractor(c.Config.Fixes.Verbs)
	if err != nil {
		return nil, domain.NewError(domain.KindConfiguration, err)
	}
	return usecase.NewCheckFixedSkips(
		c.ReadChangeMessageUseCase(),
		c.ReadCommitLogUseCase(),
		c.ScanSkipsUseCase(),
		extractor,
		c.Reports,
		c.Logger,
	), nil
}
