package contracts

import (
	"clinicsync-service/internal/app/models"
	"context"
)

// ResultCache memoizes the last successful response per query signature.
// Get reports both presence and freshness: a stale entry is still returned
// (ok true, fresh false) so callers can serve it while revalidating.
// Only the query orchestrator reads or writes the cache.
type ResultCache interface {
	Get(ctx context.Context, key string) (page *models.AppointmentPage, fresh bool, ok bool)
	Set(ctx context.Context, key string, page *models.AppointmentPage)
}
