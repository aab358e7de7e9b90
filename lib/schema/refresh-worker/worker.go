package schemarefreshworker

import (
	"context"
	"time"
	"venue-hiring-backend/lib/schema"
	baseworker "venue-hiring-backend/lib/utils/base-worker"
)

// StartWorker refreshes cached table flags so tables provisioned after start
// are picked up. Nothing is started for a provider without a cache.
func StartWorker(ctx context.Context, provider schema.Provider, interval time.Duration) bool {
	refresher, ok := provider.(schema.Refresher)
	if !ok || interval <= 0 {
		return false
	}
	worker := baseworker.NewInstance("SchemaRefreshWorker", interval, interval)
	go worker.Run(ctx, func(ctx context.Context) {
		refresher.Refresh()
	})
	return true
}
