package staging

import (
	"os"

	"go.trai.ch/scriptjob/internal/core/ports"
)

var _ ports.Bundle = (*Bundle)(nil)

// Bundle is a staged set of dependency files living in one temporary
// directory.
type Bundle struct {
	dir     string
	files   []string
	removed bool
}

// Dir returns the directory holding the staged files.
func (b *Bundle) Dir() string {
	return b.dir
}

// Files returns the base names of the staged files.
func (b *Bundle) Files() []string {
	return b.files
}

// Remove deletes the staging directory. It is safe to call more than once.
func (b *Bundle) Remove() error {
	if b == nil || b.removed || b.dir == "" {
		return nil
	}
	b.removed = true
	return os.RemoveAll(b.dir)
}
