package launch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptjob/internal/adapters/logger"
	"go.trai.ch/scriptjob/internal/adapters/staging"
	"go.trai.ch/scriptjob/internal/adapters/starlark"
	"go.trai.ch/scriptjob/internal/adapters/telemetry"
	"go.trai.ch/scriptjob/internal/core/ports"
)

const NodeID graft.ID = "engine.launcher"

func init() {
	graft.Register(graft.Node[*Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{staging.NodeID, starlark.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Launcher, error) {
			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.InterpreterFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(stager, factory, log, tracer), nil
		},
	})
}
