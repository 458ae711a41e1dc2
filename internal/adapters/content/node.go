package content

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ember/internal/adapters/logger"
	"go.trai.ch/ember/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the workspace loader Graft node.
	LoaderNodeID graft.ID = "adapter.workspace_loader"
	// StoreNodeID is the unique identifier for the workspace store Graft node.
	StoreNodeID graft.ID = "adapter.workspace_store"
)

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.WorkspaceStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
