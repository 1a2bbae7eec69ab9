package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/ghoutput"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/solver"    //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/reconcile"
	"go.trai.ch/relock/internal/engine/transaction"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			transaction.NodeID,
			solver.NodeID,
			ghoutput.NodeID,
			manifest.NodeID,
			lockfile.StoreNodeID,
			fs.VerifierNodeID,
			reconcile.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	tx, err := graft.Dep[*transaction.Transaction](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*solver.Runner](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[*ghoutput.Writer](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*reconcile.Engine](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(tx, runner, outputs, manifests, store, verifier, engine, log), nil
}
