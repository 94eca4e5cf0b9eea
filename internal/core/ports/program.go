package ports

// The program capability interfaces describe the three calling conventions an
// entry-point symbol may expose. A single concrete type can carry at most one
// Run signature, so the context and engine variants are structurally
// exclusive; the main fallback may coexist with either.

// ContextProgram is implemented by entry points that run with the job-side
// execution context.
type ContextProgram interface {
	Run(ec ExecutionContext) error
}

// EngineProgram is implemented by entry points that run with the lower-level
// engine context.
type EngineProgram interface {
	Run(ec EngineContext) error
}

// MainProgram is the static entry-point fallback: a main function taking the
// job's runtime arguments rendered as a POSIX argument vector.
type MainProgram interface {
	Main(args []string) error
}
