// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as server shutdown and
// initial connectivity pings.
const DefaultTimeout = 10 * time.Second
