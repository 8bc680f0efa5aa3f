package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

const (
	defaultCooldown = 30 * time.Second
	alertDedupTTL   = time.Hour
)

// CooldownGuard enforces the minimum interval between code reissues.
// Key format: otp:cooldown:<email>
type CooldownGuard struct {
	client *redis.Client
	window time.Duration
}

// NewCooldownGuard creates a guard with the given window; zero or negative
// falls back to the 30-second default.
func NewCooldownGuard(client *redis.Client, window time.Duration) *CooldownGuard {
	if window <= 0 {
		window = defaultCooldown
	}
	return &CooldownGuard{client: client, window: window}
}

// Acquire arms the cooldown window for email when it is not already armed.
// It reports false while a previous window is still running.
func (g *CooldownGuard) Acquire(ctx context.Context, email string) (bool, error) {
	ok, err := g.client.SetNX(ctx, "otp:cooldown:"+email, "1", g.window).Result()
	if err != nil {
		return false, fmt.Errorf("cooldown acquire: %w", err)
	}
	return ok, nil
}

// AlertDeduper suppresses repeat stock-alert notifications backed by Redis.
// Key format: alert:<item_id>:<status>
type AlertDeduper struct {
	client *redis.Client
}

func NewAlertDeduper(client *redis.Client) *AlertDeduper {
	return &AlertDeduper{client: client}
}

// IsDuplicate reports whether this item/status pair was already notified
// inside the dedup TTL.
func (d *AlertDeduper) IsDuplicate(ctx context.Context, itemID string, status domain.StockStatus) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(itemID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("alert dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a notification went out (expires after alertDedupTTL).
func (d *AlertDeduper) Mark(ctx context.Context, itemID string, status domain.StockStatus) error {
	return d.client.Set(ctx, d.key(itemID, status), "1", alertDedupTTL).Err()
}

func (d *AlertDeduper) key(itemID string, status domain.StockStatus) string {
	return fmt.Sprintf("alert:%s:%s", itemID, status)
}
