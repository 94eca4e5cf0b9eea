package starlark

import (
	"go.trai.ch/scriptjob/internal/core/ports"
)

var _ ports.InterpreterFactory = (*Factory)(nil)

// Factory hands out fresh interpreters, one per compile.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New returns a fresh, empty interpreter.
func (f *Factory) New() (ports.Interpreter, error) {
	return NewInterpreter(f.logger), nil
}
