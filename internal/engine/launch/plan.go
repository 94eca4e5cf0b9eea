package launch

import (
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

// InvocationPlan is the resolved binding of one entry point: the calling
// convention, the program, and the single argument it will receive. A plan is
// plain data; building it never runs user code, which is what makes dry
// deploy-time validation possible.
type InvocationPlan struct {
	// Shape is the resolved calling convention.
	Shape domain.Shape

	// Name is the entry-point symbol name, for error reporting.
	Name string

	context ports.ContextProgram
	engine  ports.EngineProgram
	main    ports.MainProgram

	execCtx   ports.ExecutionContext
	engineCtx ports.EngineContext
	args      []string

	invoked bool
}

// Invoke executes the resolved entry point. A plan may be invoked at most
// once. Errors raised by the user's code are returned unmodified; they are
// the job's failure, not ours to wrap.
func (p *InvocationPlan) Invoke() error {
	if p.invoked {
		return zerr.With(zerr.Wrap(domain.ErrPlanAlreadyInvoked, "refusing second invocation"), "entry_point", p.Name)
	}
	p.invoked = true

	switch p.Shape {
	case domain.ShapeContext:
		return p.context.Run(p.execCtx)
	case domain.ShapeEngine:
		return p.engine.Run(p.engineCtx)
	case domain.ShapeMain:
		return p.main.Main(p.args)
	default:
		return zerr.With(zerr.New("unresolved invocation plan"), "entry_point", p.Name)
	}
}
