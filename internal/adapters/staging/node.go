package staging

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptjob/internal/adapters/logger"
	"go.trai.ch/scriptjob/internal/core/ports"
)

const NodeID graft.ID = "adapter.stager"

func init() {
	graft.Register(graft.Node[ports.Stager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Stager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(log), nil
		},
	})
}
