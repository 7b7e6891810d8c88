package cache

import "errors"

// ErrCacheMiss reports that a key is not in the cache. Callers fall back to
// the primary store on a miss; any other Get error is a transport failure.
var ErrCacheMiss = errors.New("cache miss")
