// Package launch drives the compile-and-run lifecycle of one job: stage
// dependencies, compile the source through an interpreter, resolve the entry
// point, and invoke it exactly once, releasing every resource on every exit
// path.
package launch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher owns the interpreter and dependency-bundle lifecycle for both the
// deploy-time check and the run-time execution of a job.
type Launcher struct {
	stager  ports.Stager
	factory ports.InterpreterFactory
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a Launcher. factory may be nil, in which case deploy-time
// checks are skipped.
func New(stager ports.Stager, factory ports.InterpreterFactory, logger ports.Logger, tracer ports.Tracer) *Launcher {
	return &Launcher{
		stager:  stager,
		factory: factory,
		logger:  logger,
		tracer:  tracer,
	}
}

// Check compiles the job at definition time to surface configuration and
// compilation errors before deployment. It is best-effort: it runs only when
// the check is enabled, the source and dependencies are already resolved, and
// a standalone interpreter is available. The entry point is dry-resolved,
// never invoked. Any real failure blocks deployment.
func (l *Launcher) Check(ctx context.Context, spec domain.JobSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if !spec.CheckAtDeploy {
		return nil
	}
	if !spec.Source.IsFixed() || spec.Dependencies.IsDeferred() {
		l.logger.Info("deploy check skipped: job fields are not resolved yet")
		return nil
	}
	if l.factory == nil {
		l.logger.Info("deploy check skipped: no standalone interpreter")
		return nil
	}

	interp, err := l.factory.New()
	if err != nil {
		if errors.Is(err, domain.ErrInterpreterUnavailable) {
			l.logger.Info("deploy check skipped: interpreter unavailable")
			return nil
		}
		return zerr.Wrap(err, "failed to construct interpreter")
	}
	defer l.release(interp)

	if spec.Dependencies.IsFixed() {
		bundle, err := l.stage(ctx, spec.Dependencies.Value())
		if err != nil {
			return err
		}
		defer l.discard(bundle)
		if err := l.attach(interp, bundle); err != nil {
			return err
		}
	}

	if err := l.compile(ctx, interp, spec.Source.Value()); err != nil {
		return err
	}

	// The entry point itself may still be deferred; only validate it when
	// its name is known.
	if spec.EntryPoint.IsFixed() {
		if _, err := Resolve(interp.Loader(), spec.EntryPoint.Value(), nil); err != nil {
			return err
		}
	}
	return nil
}

// Run is the authoritative execution path: it obtains a fresh interpreter
// from the live execution context, compiles, resolves, and invokes the entry
// point exactly once. The dependency bundle and the interpreter are released
// unconditionally, bundle after interpreter; a cleanup failure never masks
// the primary error.
func (l *Launcher) Run(ctx context.Context, spec domain.JobSpec, execCtx ports.ExecutionContext) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if !spec.Source.IsFixed() || !spec.EntryPoint.IsFixed() {
		return zerr.Wrap(domain.ErrInvalidJobSpec, "job fields unresolved at run time")
	}

	runID := uuid.NewString()
	ctx, span := l.tracer.Start(ctx, "job.run")
	defer span.End()
	span.SetAttribute("run_id", runID)
	span.SetAttribute("entry_point", spec.EntryPoint.Value())
	l.logger.Info(fmt.Sprintf("starting job run %s (entry point %s)", runID, spec.EntryPoint.Value()))

	err := l.run(ctx, spec, execCtx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (l *Launcher) run(ctx context.Context, spec domain.JobSpec, execCtx ports.ExecutionContext) error {
	interpFromContext := func() (ports.Interpreter, error) {
		interp, err := execCtx.NewInterpreter()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to obtain interpreter from execution context")
		}
		return interp, nil
	}

	// Bundle first, interpreter second: the deferred releases then close the
	// interpreter before deleting the directory it was pointed at.
	if !spec.Dependencies.IsAbsent() {
		bundle, err := l.stage(ctx, spec.Dependencies.Value())
		if err != nil {
			return err
		}
		defer l.discard(bundle)

		interp, err := interpFromContext()
		if err != nil {
			return err
		}
		defer l.release(interp)

		if err := l.attach(interp, bundle); err != nil {
			return err
		}
		return l.compileAndInvoke(ctx, interp, spec, execCtx)
	}

	// No dependency spec: no directory is created at all.
	interp, err := interpFromContext()
	if err != nil {
		return err
	}
	defer l.release(interp)

	return l.compileAndInvoke(ctx, interp, spec, execCtx)
}

func (l *Launcher) compileAndInvoke(ctx context.Context, interp ports.Interpreter, spec domain.JobSpec, execCtx ports.ExecutionContext) error {
	if err := l.compile(ctx, interp, spec.Source.Value()); err != nil {
		return err
	}

	_, span := l.tracer.Start(ctx, "job.resolve")
	plan, err := Resolve(interp.Loader(), spec.EntryPoint.Value(), execCtx)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.SetAttribute("shape", plan.Shape.String())
	span.End()

	_, span = l.tracer.Start(ctx, "job.invoke")
	defer span.End()
	if err := plan.Invoke(); err != nil {
		// The user's failure, propagated as-is.
		span.RecordError(err)
		return err
	}
	return nil
}

func (l *Launcher) stage(ctx context.Context, depSpec string) (ports.Bundle, error) {
	_, span := l.tracer.Start(ctx, "job.stage")
	defer span.End()

	bundle, err := l.stager.Stage(depSpec)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("files", len(bundle.Files()))
	return bundle, nil
}

func (l *Launcher) attach(interp ports.Interpreter, bundle ports.Bundle) error {
	if err := interp.AddSearchPath([]string{bundle.Dir()}); err != nil {
		return zerr.Wrap(err, "failed to register dependency bundle with interpreter")
	}
	return nil
}

func (l *Launcher) compile(ctx context.Context, interp ports.Interpreter, source string) error {
	ctx, span := l.tracer.Start(ctx, "job.compile")
	defer span.End()

	if err := interp.Compile(ctx, source); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// release closes the interpreter. Close failures never mask the primary
// error; they are only logged.
func (l *Launcher) release(interp ports.Interpreter) {
	if err := interp.Close(); err != nil {
		l.logger.Error(zerr.Wrap(err, "failed to release interpreter"))
	}
}

// discard deletes a staged dependency bundle, logging instead of failing.
func (l *Launcher) discard(bundle ports.Bundle) {
	if err := bundle.Remove(); err != nil {
		l.logger.Error(zerr.Wrap(err, "failed to delete dependency bundle"))
	}
}
