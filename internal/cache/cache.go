package cache

import "context"

// ResponseCache memoizes completed request results by key. GetOrCompute runs
// compute at most once per key while an entry is fresh; concurrent callers
// for the same key share a single in-flight computation. Failed computes are
// never stored.
type ResponseCache interface {
	GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) ([]byte, error)) ([]byte, error)
}
