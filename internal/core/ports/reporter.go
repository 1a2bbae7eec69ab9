package ports

// Reporter receives the human-facing progress and result messages of a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Progress reports a step of the run on the diagnostic channel.
	Progress(msg string)

	// Result publishes a message that belongs to the run's result, such as the
	// change report, on the result channel.
	Result(msg string)
}
