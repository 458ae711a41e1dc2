package pool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ember/internal/core/ports"
)

// NodeID is the unique identifier for the task pool Graft node.
const NodeID graft.ID = "adapter.task_pool"

func init() {
	graft.Register(graft.Node[ports.TaskPool]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskPool, error) {
			return New(), nil
		},
	})
}
