// Package starlark adapts the go.starlark.net interpreter to the ports
// expected by the launch engine: compile a script, expose its top-level
// symbols as invocable programs, and tear the whole thing down.
package starlark

import (
	"context"
	"errors"
	"strings"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Interpreter = (*Interpreter)(nil)

// Interpreter holds one compiled script and the module cache populated by its
// load() statements. It is single-use: Compile once, resolve, Close.
type Interpreter struct {
	logger      ports.Logger
	searchPaths []string
	globals     starlarkLib.StringDict
	modules     map[string]*loadEntry
	closed      bool
}

// NewInterpreter creates an empty interpreter.
func NewInterpreter(logger ports.Logger) *Interpreter {
	return &Interpreter{
		logger:  logger,
		modules: map[string]*loadEntry{},
	}
}

// AddSearchPath appends directories consulted by the script's load()
// statements.
func (i *Interpreter) AddSearchPath(paths []string) error {
	if i.closed {
		return domain.ErrInterpreterReleased
	}
	i.searchPaths = append(i.searchPaths, paths...)
	return nil
}

// Compile executes the script's top level, capturing its global symbols.
// Cancelling ctx aborts a runaway script.
func (i *Interpreter) Compile(ctx context.Context, source string) error {
	if i.closed {
		return domain.ErrInterpreterReleased
	}

	thread := i.newThread("job")
	stop := cancelOn(ctx, thread)
	defer stop()

	globals, err := starlarkLib.ExecFile(thread, "job.star", source, i.predeclared())
	if err != nil {
		return compileError(err)
	}
	i.globals = globals
	return nil
}

// Loader exposes the compiled script's top-level symbols.
func (i *Interpreter) Loader() ports.Loader {
	return &Loader{interp: i}
}

// Close drops the compiled globals and module cache. Safe to call more than
// once.
func (i *Interpreter) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	i.globals = nil
	i.modules = nil
	return nil
}

func (i *Interpreter) newThread(name string) *starlarkLib.Thread {
	return &starlarkLib.Thread{
		Name: name,
		Load: i.load,
		Print: func(_ *starlarkLib.Thread, msg string) {
			i.logger.Info(msg)
		},
	}
}

func (i *Interpreter) predeclared() starlarkLib.StringDict {
	return starlarkLib.StringDict{
		"struct": starlarkLib.NewBuiltin("struct", starlarkstruct.Make),
	}
}

// cancelOn propagates ctx cancellation into the thread. The returned stop
// function must be called once the thread's work is done.
func cancelOn(ctx context.Context, thread *starlarkLib.Thread) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()
	return func() { close(done) }
}

// compileError converts a script failure into a compilation error carrying
// the script's backtrace when one exists.
func compileError(err error) error {
	var evalErr *starlarkLib.EvalError
	if errors.As(err, &evalErr) {
		wrapped := zerr.Wrap(domain.ErrCompilation, evalErr.Msg)
		return zerr.With(wrapped, "backtrace", strings.TrimSpace(evalErr.Backtrace()))
	}
	return zerr.Wrap(domain.ErrCompilation, err.Error())
}

var _ ports.Loader = (*Loader)(nil)

// Loader resolves entry-point names against the interpreter's compiled
// globals, wrapping invocable values into program adapters.
type Loader struct {
	interp *Interpreter
}

// Load looks up a top-level symbol and classifies it.
func (l *Loader) Load(name string) (any, error) {
	if l.interp.closed {
		return nil, domain.ErrInterpreterReleased
	}
	if l.interp.globals == nil {
		return nil, zerr.Wrap(domain.ErrCompilation, "no compiled script")
	}

	value, ok := l.interp.globals[name]
	if !ok {
		err := zerr.Wrap(domain.ErrEntryPointNotFound, "unknown top-level symbol")
		return nil, zerr.With(err, "entry_point", name)
	}
	return l.interp.classify(value), nil
}
