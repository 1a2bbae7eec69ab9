package ports

// Outputs publishes named boolean signals to the CI system.
//
//go:generate go run go.uber.org/mock/mockgen -source=outputs.go -destination=mocks/mock_outputs.go -package=mocks
type Outputs interface {
	// SetFlags writes env_relocked and merge_as_admin.
	SetFlags(relocked, mergeAsAdmin bool) error
}
