// Package config provides the YAML job-definition loader for scriptjob.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/scriptjob/internal/core/domain"
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.JobLoader = (*FileJobLoader)(nil)

// FileJobLoader implements ports.JobLoader using a YAML file.
type FileJobLoader struct{}

// NewLoader creates a FileJobLoader.
func NewLoader() *FileJobLoader {
	return &FileJobLoader{}
}

// Load reads a job definition from the given path.
func (l *FileJobLoader) Load(path string) (domain.JobSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.JobSpec{}, zerr.Wrap(err, "failed to read job file")
	}

	var jobfile Jobfile
	if err := yaml.Unmarshal(data, &jobfile); err != nil {
		return domain.JobSpec{}, zerr.Wrap(err, "failed to parse job file")
	}

	dto := jobfile.Job
	source := dto.Source
	if dto.SourceFile != "" {
		if source != "" {
			return domain.JobSpec{}, zerr.Wrap(domain.ErrInvalidJobSpec, "source and sourceFile are mutually exclusive")
		}
		// Relative source files resolve against the job file's directory.
		srcPath := dto.SourceFile
		if !filepath.IsAbs(srcPath) {
			srcPath = filepath.Join(filepath.Dir(path), srcPath)
		}
		data, err := os.ReadFile(srcPath) //nolint:gosec // path is provided by user
		if err != nil {
			return domain.JobSpec{}, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", srcPath)
		}
		source = string(data)
	}

	spec := domain.JobSpec{
		Source:        domain.NewField(source),
		EntryPoint:    domain.NewField(dto.EntryPoint),
		Dependencies:  domain.NewField(dto.Dependencies),
		CheckAtDeploy: dto.CheckAtDeploy,
	}
	if err := spec.Validate(); err != nil {
		return domain.JobSpec{}, err
	}
	return spec, nil
}
