// Package retry retries operations that fail with transient errors, waiting
// with exponential backoff between attempts.
//
//	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return pool.Ping(ctx)
//	})
//
// The Postgres cache uses it to ride out a database that is still starting.
package retry
