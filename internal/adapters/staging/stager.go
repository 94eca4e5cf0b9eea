// Package staging materializes a job's dependency specification into a
// temporary directory that an interpreter can use as a module search path.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// DefaultExtensions are the file extensions matched by a trailing wildcard
// entry such as "libs/*".
var DefaultExtensions = []string{".star"}

// Stager copies dependency files into a fresh temporary directory per job.
type Stager struct {
	logger ports.Logger
	root   string
	exts   []string
}

// NewStager creates a Stager that stages into the system temp directory.
func NewStager(logger ports.Logger) *Stager {
	return &Stager{logger: logger, exts: DefaultExtensions}
}

// WithRoot overrides the parent directory for staged bundles.
func (s *Stager) WithRoot(root string) *Stager {
	s.root = root
	return s
}

// Stage resolves a comma-separated dependency specification into a new
// bundle. Each entry is a file, a directory (its regular files, not
// recursive), or a trailing-wildcard pattern like "dir/*" which matches only
// files with a recognized extension; the "*" must terminate a path, so a
// partial name such as "libs*" is rejected. Two entries staging the same
// base name is an error. On any failure the partially staged bundle is
// removed.
func (s *Stager) Stage(spec string) (ports.Bundle, error) {
	dir, err := os.MkdirTemp(s.root, "scriptjob-deps-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create staging directory")
	}
	bundle := &Bundle{dir: dir}

	if err := s.stageInto(bundle, spec); err != nil {
		if rmErr := bundle.Remove(); rmErr != nil {
			s.logger.Error(zerr.Wrap(rmErr, "failed to clean up staging directory"))
		}
		return nil, err
	}
	return bundle, nil
}

func (s *Stager) stageInto(bundle *Bundle, spec string) error {
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if err := s.stageEntry(bundle, entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stager) stageEntry(bundle *Bundle, entry string) error {
	if strings.HasSuffix(entry, "*") {
		return s.stageWildcard(bundle, strings.TrimSuffix(entry, "*"))
	}

	info, err := os.Stat(entry)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStaging, "dependency does not exist"), "path", entry)
	}
	if info.IsDir() {
		return s.stageDir(bundle, entry)
	}
	return s.stageFile(bundle, entry)
}

// stageWildcard stages the files of the pattern's parent directory that carry
// a recognized extension.
func (s *Stager) stageWildcard(bundle *Bundle, prefix string) error {
	if prefix != "" && !os.IsPathSeparator(prefix[len(prefix)-1]) {
		return zerr.With(zerr.Wrap(domain.ErrStaging, "wildcard must follow a directory separator"), "path", prefix+"*")
	}

	dir := filepath.Dir(filepath.Join(prefix, "x"))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStaging, "dependency directory does not exist"), "path", dir)
	}

	for _, e := range entries {
		if e.IsDir() || !s.recognized(e.Name()) {
			continue
		}
		if err := s.stageFile(bundle, filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stager) stageDir(bundle *Bundle, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStaging, "failed to read dependency directory"), "path", dir)
	}

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := s.stageFile(bundle, filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stager) stageFile(bundle *Bundle, path string) error {
	name := filepath.Base(path)
	dst := filepath.Join(bundle.dir, name)

	if _, err := os.Stat(dst); err == nil {
		return zerr.With(zerr.Wrap(domain.ErrStaging, "duplicate dependency name"), "name", name)
	}

	if err := copyFile(path, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stage dependency"), "path", path)
	}
	bundle.files = append(bundle.files, name)

	digest, err := fileDigest(dst)
	if err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("staged dependency %s (%016x)", name, digest))
	return nil
}

func (s *Stager) recognized(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range s.exts {
		if ext == e {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from the job definition
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // Destination is inside our temp dir
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is inside our temp dir
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open staged file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash staged file"), "path", path)
	}
	return hasher.Sum64(), nil
}
