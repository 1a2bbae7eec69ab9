package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// Solver resolves an environment manifest into a lock file.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type Solver interface {
	// Solve runs the solver for manifestPath, writing the result to lockPath.
	//
	// A solver that ran but failed is reported through a non-zero
	// domain.SolveResult.ExitCode, not through the error. The error is reserved
	// for failures to run the solver at all.
	Solve(ctx context.Context, manifestPath, lockPath string) (domain.SolveResult, error)
}
