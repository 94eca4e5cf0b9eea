package ports

import "go.trai.ch/scriptjob/internal/core/domain"

// JobLoader reads a job definition file into a JobSpec.
//
//go:generate go run go.uber.org/mock/mockgen -source=job_loader.go -destination=mocks/mock_job_loader.go -package=mocks
type JobLoader interface {
	// Load reads the job definition at the given path.
	Load(path string) (domain.JobSpec, error)
}
