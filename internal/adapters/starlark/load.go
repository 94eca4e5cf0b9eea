package starlark

import (
	"os"
	"path/filepath"

	starlarkLib "go.starlark.net/starlark"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/zerr"
)

// loadEntry caches one module loaded via load(). A nil globals with a nil
// error marks a load in progress, which means a cycle.
type loadEntry struct {
	globals starlarkLib.StringDict
	err     error
}

// load implements the thread's load() statement against the registered
// search paths, caching modules and rejecting cycles.
func (i *Interpreter) load(thread *starlarkLib.Thread, module string) (starlarkLib.StringDict, error) {
	if entry, ok := i.modules[module]; ok {
		if entry == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrCompilation, "cyclic dependency load"), "module", module)
		}
		return entry.globals, entry.err
	}

	path, err := i.findModule(module)
	if err != nil {
		return nil, err
	}

	i.modules[module] = nil // in progress
	src, err := os.ReadFile(path) //nolint:gosec // Path resolved from the staged bundle
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read dependency module"), "module", module)
		i.modules[module] = &loadEntry{err: err}
		return nil, err
	}

	globals, err := starlarkLib.ExecFile(i.newThread(module), path, src, i.predeclared())
	if err != nil {
		err = compileError(err)
	}
	i.modules[module] = &loadEntry{globals: globals, err: err}
	return globals, err
}

func (i *Interpreter) findModule(module string) (string, error) {
	for _, dir := range i.searchPaths {
		path := filepath.Join(dir, module)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrCompilation, "dependency module not found"), "module", module)
}
