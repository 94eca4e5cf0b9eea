package ports

// Stager materializes job dependency specs into local bundles.
//
//go:generate go run go.uber.org/mock/mockgen -source=staging.go -destination=mocks/mock_staging.go -package=mocks
type Stager interface {
	// Stage copies every entry of the comma-separated dependency spec into a
	// freshly created temporary directory and returns the bundle. On failure
	// the partial directory is removed best-effort and the error propagates;
	// no bundle is returned.
	Stage(spec string) (Bundle, error)
}

// Bundle is one staged dependency directory. It is owned by the launcher for
// a single compile-and-run cycle and must be removed unconditionally at cycle
// end, on every exit path.
type Bundle interface {
	// Dir returns the staged directory path.
	Dir() string

	// Files returns the base names of the staged files.
	Files() []string

	// Remove deletes the staged directory and its contents. Idempotent.
	Remove() error
}
