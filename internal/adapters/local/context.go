// Package local provides an in-process execution context for running jobs on
// the local machine.
package local

import (
	"maps"

	"go.trai.ch/scriptjob/internal/core/ports"
)

var _ ports.ExecutionContext = (*Context)(nil)

// Context carries the runtime arguments and interpreter source for one job
// run.
type Context struct {
	args    map[string]string
	factory ports.InterpreterFactory
	engine  *engineContext
}

// NewContext creates an execution context. engineName may be empty, in which
// case no engine context is exposed.
func NewContext(args map[string]string, factory ports.InterpreterFactory, engineName string) *Context {
	c := &Context{
		args:    maps.Clone(args),
		factory: factory,
	}
	if engineName != "" {
		c.engine = &engineContext{name: engineName}
	}
	return c
}

// RuntimeArguments returns a copy of the run's arguments.
func (c *Context) RuntimeArguments() map[string]string {
	return maps.Clone(c.args)
}

// NewInterpreter returns a fresh interpreter for this run.
func (c *Context) NewInterpreter() (ports.Interpreter, error) {
	return c.factory.New()
}

// Engine returns the engine-level view of this context, or nil.
func (c *Context) Engine() ports.EngineContext {
	if c.engine == nil {
		return nil
	}
	return c.engine
}

type engineContext struct {
	name string
}

func (e *engineContext) EngineName() string {
	return e.name
}
