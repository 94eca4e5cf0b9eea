package launch

import (
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolve loads the named entry point and classifies its calling convention.
// Classification is ordered and first-match-wins: job-context programs are
// preferred over engine-context programs, which are preferred over the static
// main fallback. A symbol matching no shape is a configuration error; there
// is no further fallback.
//
// execCtx may be nil for dry validation, in which case the plan is built with
// placeholder arguments and must not be invoked.
func Resolve(loader ports.Loader, entryPoint string, execCtx ports.ExecutionContext) (*InvocationPlan, error) {
	sym, err := loader.Load(entryPoint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load entry point"), "entry_point", entryPoint)
	}

	plan := &InvocationPlan{Name: entryPoint}
	switch prog := sym.(type) {
	case ports.ContextProgram:
		plan.Shape = domain.ShapeContext
		plan.context = prog
		plan.execCtx = execCtx
	case ports.EngineProgram:
		plan.Shape = domain.ShapeEngine
		plan.engine = prog
		if execCtx != nil {
			plan.engineCtx = execCtx.Engine()
		}
	case ports.MainProgram:
		plan.Shape = domain.ShapeMain
		plan.main = prog
		if execCtx != nil {
			plan.args = domain.PosixArgs(execCtx.RuntimeArguments())
		}
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingMain, "entry point matches no calling convention"), "entry_point", entryPoint)
	}
	return plan, nil
}
