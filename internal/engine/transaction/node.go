package transaction

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/console"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/ghoutput"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/lockfile"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/solver"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/reconcile"
)

// NodeID is the unique identifier for the transaction Graft node.
const NodeID graft.ID = "engine.transaction"

func init() {
	graft.Register(graft.Node[*Transaction]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			lockfile.StoreNodeID,
			solver.NodeID,
			fs.BackupNodeID,
			ghoutput.NodeID,
			console.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			reconcile.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Transaction, error) {
	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*solver.Runner](ctx)
	if err != nil {
		return nil, err
	}

	backup, err := graft.Dep[ports.Backup](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[*ghoutput.Writer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
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

	engine, err := graft.Dep[*reconcile.Engine](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, store, runner, backup, outputs, reporter, log, tracer, engine), nil
}
