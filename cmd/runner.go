package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/avolette/jobtrack/internal/journal"
	"github.com/avolette/jobtrack/internal/session"
	"github.com/avolette/jobtrack/internal/shared"
	"github.com/avolette/jobtrack/internal/store"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	store      store.Store
	journal    *journal.Journal
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Store      store.Store
	Journal    *journal.Journal
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		store:      opts.Store,
		journal:    opts.Journal,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, appsCommand, syncCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the Runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// recordStore returns the configured store, building the GitHub-backed one on
// first use so commands fail with a config error instead of a nil service.
func (r *Runner) recordStore() (store.Store, error) {
	if r.store != nil {
		return r.store, nil
	}

	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	r.store = store.NewGitHubStore("", r.config.GitHub, nil)
	return r.store, nil
}

// syncJournal opens the local journal database. Journal trouble is logged
// and reported as a nil journal; it never blocks a command.
func (r *Runner) syncJournal() *journal.Journal {
	if r.journal != nil {
		return r.journal
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Warn("sync journal unavailable", "error", err)
		return nil
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Warn("sync journal migrations failed", "error", err)
		db.Close()
		return nil
	}

	r.journal = journal.New(db)
	return r.journal
}

// openSession builds a session over the configured store and loads the
// remote dataset.
func (r *Runner) openSession(ctx context.Context) (*session.Session, error) {
	st, err := r.recordStore()
	if err != nil {
		return nil, err
	}

	sess := session.New(st, r.syncJournal(), r.logger)
	if err := sess.Load(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
