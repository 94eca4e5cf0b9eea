package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptjob/internal/core/ports"
)

const NodeID graft.ID = "adapter.job_loader"

func init() {
	graft.Register(graft.Node[ports.JobLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.JobLoader, error) {
			return NewLoader(), nil
		},
	})
}
