package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// JobSpec is the immutable configuration of one submitted job. It is created
// once per submission and never mutated; resolution of deferred fields
// produces a new spec.
type JobSpec struct {
	// Source is the user program source text. Required.
	Source Field

	// EntryPoint is the name of the top-level symbol to invoke. Required.
	EntryPoint Field

	// Dependencies is an optional comma-separated list of dependency
	// locations: a file, a directory, or a directory ending in '*' meaning
	// all module files directly under it.
	Dependencies Field

	// CheckAtDeploy enables a best-effort compile at job-definition time.
	// Off by default; useful to disable when libraries are only available at
	// run time.
	CheckAtDeploy bool
}

// Validate checks that the required fields are present.
func (s JobSpec) Validate() error {
	var missing []string
	if s.Source.IsAbsent() {
		missing = append(missing, "source")
	}
	if s.EntryPoint.IsAbsent() {
		missing = append(missing, "entryPoint")
	}
	if len(missing) > 0 {
		return zerr.With(zerr.Wrap(ErrInvalidJobSpec, "missing required fields"), "fields", strings.Join(missing, ", "))
	}
	return nil
}

// Resolved returns a copy of the spec with all deferred fields expanded from
// the given runtime arguments. Run-time execution requires a fully resolved
// spec.
func (s JobSpec) Resolved(vars map[string]string) (JobSpec, error) {
	src, err := s.Source.Resolve(vars)
	if err != nil {
		return JobSpec{}, zerr.Wrap(err, "failed to resolve source")
	}
	entry, err := s.EntryPoint.Resolve(vars)
	if err != nil {
		return JobSpec{}, zerr.Wrap(err, "failed to resolve entry point")
	}
	deps, err := s.Dependencies.Resolve(vars)
	if err != nil {
		return JobSpec{}, zerr.Wrap(err, "failed to resolve dependencies")
	}
	return JobSpec{
		Source:        FixedField(src),
		EntryPoint:    FixedField(entry),
		Dependencies:  FixedField(deps),
		CheckAtDeploy: s.CheckAtDeploy,
	}, nil
}
