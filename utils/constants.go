// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 12 * time.Hour

// DialogSessionTTL is how long an idle dialog session survives before it expires.
const DialogSessionTTL = 30 * time.Minute
