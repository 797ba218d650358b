// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout is the default grace period for shutting down a component.
const DefaultTimeout = 10 * time.Second
