package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptjob/internal/adapters/telemetry/progrock"
	"go.trai.ch/scriptjob/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			switch os.Getenv("SCRIPTJOB_TELEMETRY") {
			case "otel":
				return NewOTelTracer("scriptjob"), nil
			case "progrock":
				return progrock.New(), nil
			default:
				return NewNoOpTracer(), nil
			}
		},
	})
}
