// Package app implements the application layer for scriptjob.
package app

import (
	"context"

	"go.trai.ch/scriptjob/internal/adapters/local"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/scriptjob/internal/engine/launch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// engineName identifies the interpreter engine exposed to running scripts.
const engineName = "starlark"

// App represents the main application logic.
type App struct {
	jobLoader ports.JobLoader
	launcher  *launch.Launcher
	factory   ports.InterpreterFactory
	logger    ports.Logger
}

// New creates a new App instance.
func New(jobLoader ports.JobLoader, launcher *launch.Launcher, factory ports.InterpreterFactory, logger ports.Logger) *App {
	return &App{
		jobLoader: jobLoader,
		launcher:  launcher,
		factory:   factory,
		logger:    logger,
	}
}

// RunOptions configures a Run invocation.
type RunOptions struct {
	// Args are the runtime arguments made available to every job.
	Args map[string]string

	// Parallel bounds how many jobs run at once. Values below 1 mean
	// sequential execution.
	Parallel int
}

// Run executes the jobs defined in the given files.
func (a *App) Run(ctx context.Context, jobFiles []string, opts RunOptions) error {
	if len(jobFiles) == 0 {
		return domain.ErrNoJobsSpecified
	}

	limit := opts.Parallel
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, path := range jobFiles {
		g.Go(func() error {
			return a.runOne(ctx, path, opts.Args)
		})
	}
	return g.Wait()
}

func (a *App) runOne(ctx context.Context, path string, args map[string]string) error {
	spec, err := a.jobLoader.Load(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load job"), "path", path)
	}

	spec, err = spec.Resolved(args)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	execCtx := local.NewContext(args, a.factory, engineName)
	return a.launcher.Run(ctx, spec, execCtx)
}

// Check validates the jobs defined in the given files without running them.
func (a *App) Check(ctx context.Context, jobFiles []string) error {
	if len(jobFiles) == 0 {
		return domain.ErrNoJobsSpecified
	}

	for _, path := range jobFiles {
		spec, err := a.jobLoader.Load(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load job"), "path", path)
		}
		if err := a.launcher.Check(ctx, spec); err != nil {
			return zerr.With(err, "path", path)
		}
		a.logger.Info("job check passed: " + path)
	}
	return nil
}
