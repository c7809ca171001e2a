package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schoolops/finance-service/internal/logger"
)

// reportCacheKey is where the serialized fleet summary lives in Redis.
const reportCacheKey = "reports:fleet_summary"

// ReportCacheRepository caches the serialized fleet summary in Redis so
// dashboard refreshes do not re-aggregate the full ledger on every hit.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewReportCacheRepository creates a cache repository with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetSummary fetches the cached summary payload.
func (r *ReportCacheRepository) GetSummary(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, reportCacheKey).Bytes()

	logger.Log.Infow(
		"key", reportCacheKey,
		"result", len(val),
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("fleet summary not found in cache")
		}
		return nil, err
	}

	return val, nil
}

// SetSummary stores a summary payload with the configured expiration.
func (r *ReportCacheRepository) SetSummary(ctx context.Context, payload []byte) error {
	err := r.client.Set(ctx, reportCacheKey, payload, r.exp).Err()

	logger.Log.Infow(
		"key", reportCacheKey,
		"size", len(payload),
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateSummary drops the cached summary. Called after every new
// transaction so the next dashboard load recomputes.
func (r *ReportCacheRepository) InvalidateSummary(ctx context.Context) error {
	err := r.client.Del(ctx, reportCacheKey).Err()

	logger.Log.Infow(
		"key", reportCacheKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
