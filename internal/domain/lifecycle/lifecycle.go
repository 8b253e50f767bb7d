// Package lifecycle holds shared start and stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 15 * time.Second
