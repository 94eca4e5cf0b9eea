package ports

// ExecutionContext is the host-provided handle giving a running job access to
// its runtime arguments and environment services.
//
//go:generate go run go.uber.org/mock/mockgen -source=execution.go -destination=mocks/mock_execution.go -package=mocks
type ExecutionContext interface {
	// RuntimeArguments returns the job's runtime arguments.
	RuntimeArguments() map[string]string

	// NewInterpreter obtains a fresh interpreter bound to this context.
	NewInterpreter() (Interpreter, error)

	// Engine returns the lower-level projection of this context, or nil if
	// the host does not expose one.
	Engine() EngineContext
}

// EngineContext is the reduced, engine-level projection of an execution
// context, passed to entry points that run against the engine directly.
type EngineContext interface {
	// EngineName identifies the underlying execution engine.
	EngineName() string
}
