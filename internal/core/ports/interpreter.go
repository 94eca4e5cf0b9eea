// Package ports defines the core interfaces for the application.
package ports

import "context"

// Interpreter compiles user source text into a loadable program. An
// interpreter instance is scoped to exactly one compile-and-run cycle and is
// never shared or reused across jobs.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type Interpreter interface {
	// Compile compiles the source text, making its top-level symbols
	// available through Loader. Compilation failures carry the engine
	// diagnostics.
	Compile(ctx context.Context, source string) error

	// AddSearchPath registers directories the compiled program may load
	// modules from. Must be called before Compile for loads to resolve.
	AddSearchPath(paths []string) error

	// Loader returns the symbol loader for the compiled program. The loader
	// is only valid until Close.
	Loader() Loader

	// Close releases the interpreter and everything it compiled. Idempotent;
	// safe to call after a failed compile.
	Close() error
}

// Loader resolves top-level symbols of a compiled program by name. Returned
// symbols are classified by type assertion against the program capability
// interfaces.
type Loader interface {
	Load(name string) (any, error)
}

// InterpreterFactory constructs standalone interpreters outside a live
// execution context, for deploy-time checks. New may fail with an
// unavailability error, in which case the check is skipped rather than
// blocking deployment.
type InterpreterFactory interface {
	New() (Interpreter, error)
}
