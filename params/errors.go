package params

import "github.com/pkg/errors"

var (
	// ErrScopeClosed is returned by Register once the registration scope has
	// been closed.
	ErrScopeClosed = errors.New("registration scope is closed")

	// ErrReconfigured is returned by Builder.Build when a setter was invoked
	// after the tracker had already been synchronized.
	ErrReconfigured = errors.New("tracker reconfigured after first synchronization")
)
