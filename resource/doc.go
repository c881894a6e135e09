// Package resource bounds what concurrent clustering runs may consume.
//
// A Controller manages two resources:
//
//   - Memory: the working set of a run (cluster ids, centroids and the
//     per-worker accumulators). AcquireMemory is non-blocking and fails fast
//     with ErrMemoryLimitExceeded; WaitMemory blocks until memory frees up.
//   - Concurrency: the number of runs in flight across every engine sharing
//     the controller.
//
// Usage:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:  256 << 20,
//	    MaxConcurrentRuns: 2,
//	})
//
//	if err := rc.AcquireRun(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseRun()
//
//	if err := rc.AcquireMemory(workingSet); err != nil {
//	    return err // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(workingSet)
//
// All methods are safe for concurrent use and treat a nil *Controller as
// unlimited, so callers can pass one through without nil checks.
package resource
