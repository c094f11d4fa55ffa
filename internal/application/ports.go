package application

import "context"

// ShareLinkSink hands a finished text payload to an external share channel.
// The core only learns the resulting link; delivery is the channel's problem.
type ShareLinkSink interface {
	Share(ctx context.Context, destination, payload string) (string, error)
}

// FileSink persists a finished text payload under a suggested filename.
type FileSink interface {
	Export(ctx context.Context, filename, payload string) error
}
