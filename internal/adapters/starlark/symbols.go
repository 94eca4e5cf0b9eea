package starlark

import (
	"sort"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

// classify wraps a top-level script value into a program adapter. A value
// exposing a run attribute becomes a context program; a zero-parameter
// function is treated as a constructor whose instance must expose run; a
// one-parameter function or a value exposing main becomes a main program.
// Anything else is returned untouched so the caller can reject it.
func (i *Interpreter) classify(value starlarkLib.Value) any {
	if fn := attrOf(value, "run"); fn != nil {
		return &contextProgram{interp: i, run: fn}
	}

	if fn, ok := value.(*starlarkLib.Function); ok {
		switch fn.NumParams() {
		case 0:
			return &contextProgram{interp: i, ctor: fn}
		case 1:
			return &mainProgram{interp: i, fn: fn}
		}
	}

	if fn := attrOf(value, "main"); fn != nil {
		return &mainProgram{interp: i, fn: fn}
	}
	return value
}

// attrOf returns the named callable attribute of value, or nil.
func attrOf(value starlarkLib.Value, name string) starlarkLib.Callable {
	hasAttrs, ok := value.(starlarkLib.HasAttrs)
	if !ok {
		return nil
	}
	attr, err := hasAttrs.Attr(name)
	if err != nil || attr == nil {
		return nil
	}
	callable, ok := attr.(starlarkLib.Callable)
	if !ok {
		return nil
	}
	return callable
}

var _ ports.ContextProgram = (*contextProgram)(nil)

// contextProgram invokes a script's run function with a context struct. When
// ctor is set, the instance is constructed immediately before the call.
type contextProgram struct {
	interp *Interpreter
	run    starlarkLib.Callable
	ctor   *starlarkLib.Function
}

func (p *contextProgram) Run(ec ports.ExecutionContext) error {
	thread := p.interp.newThread("job.run")

	run := p.run
	if run == nil {
		instance, err := starlarkLib.Call(thread, p.ctor, nil, nil)
		if err != nil {
			return callError(err)
		}
		if run = attrOf(instance, "run"); run == nil {
			return zerr.With(zerr.New("constructed value has no run function"), "value", instance.String())
		}
	}

	ctxValue, err := contextValue(ec)
	if err != nil {
		return err
	}
	if _, err := starlarkLib.Call(thread, run, starlarkLib.Tuple{ctxValue}, nil); err != nil {
		return callError(err)
	}
	return nil
}

var _ ports.MainProgram = (*mainProgram)(nil)

// mainProgram invokes a script function with the job's arguments as a list
// of strings.
type mainProgram struct {
	interp *Interpreter
	fn     starlarkLib.Callable
}

func (p *mainProgram) Main(args []string) error {
	thread := p.interp.newThread("job.main")
	if _, err := starlarkLib.Call(thread, p.fn, starlarkLib.Tuple{stringList(args)}, nil); err != nil {
		return callError(err)
	}
	return nil
}

// contextValue builds the struct handed to a context program's run function:
// args as a dict, argv as the POSIX-style list, and the engine name.
func contextValue(ec ports.ExecutionContext) (starlarkLib.Value, error) {
	args := map[string]string{}
	engine := ""
	if ec != nil {
		args = ec.RuntimeArguments()
		if eng := ec.Engine(); eng != nil {
			engine = eng.EngineName()
		}
	}

	dict := starlarkLib.NewDict(len(args))
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	argv := make([]starlarkLib.Value, 0, len(args))
	for _, k := range keys {
		if err := dict.SetKey(starlarkLib.String(k), starlarkLib.String(args[k])); err != nil {
			return nil, zerr.Wrap(err, "failed to build arguments dict")
		}
		argv = append(argv, starlarkLib.String("--"+k+"="+args[k]))
	}

	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlarkLib.StringDict{
		"args":   dict,
		"argv":   starlarkLib.NewList(argv),
		"engine": starlarkLib.String(engine),
	}), nil
}

func stringList(values []string) *starlarkLib.List {
	elems := make([]starlarkLib.Value, 0, len(values))
	for _, v := range values {
		elems = append(elems, starlarkLib.String(v))
	}
	return starlarkLib.NewList(elems)
}

// callError keeps the script's own failure intact while surfacing the
// backtrace for eval errors.
func callError(err error) error {
	if evalErr, ok := err.(*starlarkLib.EvalError); ok {
		return zerr.With(err, "backtrace", evalErr.Backtrace())
	}
	return err
}
