// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis conversation context keys.
const SessionCachePrefix = "schedly:ctx:"

// DefaultSessionTTL is the fallback time-to-live for conversation contexts
// when SESSION_TTL_MINUTES is unset.
const DefaultSessionTTL = 30 * time.Minute
