package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptjob/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptjob/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptjob/internal/adapters/starlark" //nolint:depguard // Wired in app layer
	"go.trai.ch/scriptjob/internal/core/ports"
	"go.trai.ch/scriptjob/internal/engine/launch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			starlark.NodeID,
			launch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			jobLoader, err := graft.Dep[ports.JobLoader](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[*launch.Launcher](ctx)
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

			return New(jobLoader, launcher, factory, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
