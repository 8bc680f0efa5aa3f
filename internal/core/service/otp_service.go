package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

const defaultChallengeTTL = 5 * time.Minute

// OTPService implements the one-slot challenge lifecycle: issue overwrites,
// verify reads, clear deletes. It holds no state of its own beyond the store.
type OTPService struct {
	store ports.ChallengeStore
	ttl   time.Duration
	now   func() time.Time
}

func NewOTPService(store ports.ChallengeStore, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = defaultChallengeTTL
	}
	return &OTPService{store: store, ttl: ttl, now: time.Now}
}

// IssueChallenge generates a 6-digit code, stores the challenge record for
// email (replacing any existing one), and returns the code for transmission.
func (s *OTPService) IssueChallenge(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("issue challenge: %w", err)
	}

	ch := domain.Challenge{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.store.Save(ctx, ch); err != nil {
		return "", fmt.Errorf("issue challenge: %w", err)
	}
	return code, nil
}

// VerifyChallenge checks the submitted code against the stored challenge.
// Checks run in a fixed order so each failure reports its precise reason:
// missing record, expiry, email mismatch, then code mismatch. The record is
// left in place on success; clearing is the caller's explicit step.
func (s *OTPService) VerifyChallenge(ctx context.Context, email, code string) error {
	ch, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	if ch.Expired(s.now()) {
		return domain.ErrChallengeExpired
	}
	if ch.Email != email {
		return domain.ErrEmailMismatch
	}
	if ch.Code != code {
		return domain.ErrInvalidCode
	}
	return nil
}

// ClearChallenge removes the stored challenge. A no-op when none exists.
func (s *OTPService) ClearChallenge(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// generateCode draws uniformly from [100000, 999999] so every 6-digit
// combination above the 5-digit boundary is equally likely.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
