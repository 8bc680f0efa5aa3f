package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// challengeKey is the single fixed slot holding the pending OTP challenge.
// Writes are whole-record replacements; at most one challenge exists, so a
// second login overwrites the first.
const challengeKey = "otp:challenge"

// ChallengeStore persists the one pending challenge in Redis. The record is
// stored without a TTL: expiry is judged against the record's own deadline at
// verification time, and a stale record is simply overwritten by the next
// issue.
type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

func (s *ChallengeStore) Save(ctx context.Context, ch domain.Challenge) error {
	raw, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}
	if err := s.client.Set(ctx, challengeKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}
	return nil
}

func (s *ChallengeStore) Get(ctx context.Context) (domain.Challenge, error) {
	raw, err := s.client.Get(ctx, challengeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Challenge{}, domain.ErrNoChallenge
		}
		return domain.Challenge{}, fmt.Errorf("get challenge: %w", err)
	}

	var ch domain.Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		// A corrupt record is indistinguishable from a missing one for the
		// caller: the only recovery is requesting a new code.
		return domain.Challenge{}, domain.ErrNoChallenge
	}
	return ch, nil
}

func (s *ChallengeStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, challengeKey).Err()
}
