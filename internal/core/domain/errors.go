package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidJobSpec is returned when a job spec is missing required fields
	// or carries unresolved fields at run time.
	ErrInvalidJobSpec = zerr.New("invalid job spec")

	// ErrEntryPointNotFound is returned when the entry-point name does not
	// match any symbol in the compiled program.
	ErrEntryPointNotFound = zerr.New("entry point does not exist")

	// ErrMissingMain is returned when the entry-point symbol matches none of
	// the calling conventions and has no main(args) function.
	ErrMissingMain = zerr.New("entry point must define a main(args) function")

	// ErrCompilation is returned when the user source fails to compile.
	ErrCompilation = zerr.New("compilation failed")

	// ErrStaging is returned when a dependency bundle cannot be materialized.
	ErrStaging = zerr.New("dependency staging failed")

	// ErrInterpreterReleased is returned when a compiled program is used after
	// its interpreter has been closed.
	ErrInterpreterReleased = zerr.New("interpreter already released")

	// ErrInterpreterUnavailable signals that no standalone interpreter can be
	// constructed in the current environment. Deploy-time checks treat this as
	// a skip, not a failure.
	ErrInterpreterUnavailable = zerr.New("interpreter unavailable")

	// ErrUnresolvedPlaceholder is returned when a deferred field references a
	// placeholder with no matching runtime argument.
	ErrUnresolvedPlaceholder = zerr.New("unresolved placeholder")

	// ErrPlanAlreadyInvoked is returned when an invocation plan is executed
	// more than once.
	ErrPlanAlreadyInvoked = zerr.New("invocation plan already executed")

	// ErrNoJobsSpecified is returned when a run is requested without job files.
	ErrNoJobsSpecified = zerr.New("no job files specified")
)
