package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// OTPService issues, stores, and verifies a short-lived numeric passcode tied
// to one email address. At most one challenge is pending at a time: issuing
// overwrites any prior record. The service never sends email and imposes no
// rate limit of its own.
type OTPService interface {
	// IssueChallenge stores a fresh challenge for email and returns the code
	// so the caller can transmit it.
	IssueChallenge(ctx context.Context, email string) (string, error)
	// VerifyChallenge checks a submitted code. Failures are reason-coded:
	// domain.ErrNoChallenge, ErrChallengeExpired, ErrEmailMismatch,
	// ErrInvalidCode, evaluated in that order. Success does not clear the
	// stored record; callers clear explicitly.
	VerifyChallenge(ctx context.Context, email, code string) error
	// ClearChallenge removes the stored challenge. Idempotent.
	ClearChallenge(ctx context.Context) error
}

// ChallengeStore persists the single pending challenge. Writes are
// whole-record replacements.
type ChallengeStore interface {
	Save(ctx context.Context, ch domain.Challenge) error
	// Get returns domain.ErrNoChallenge when no record is stored.
	Get(ctx context.Context) (domain.Challenge, error)
	Clear(ctx context.Context) error
}

// CooldownGuard enforces the caller-level minimum interval between code
// reissues. Acquire reports true when the caller may proceed and arms the
// window as a side effect.
type CooldownGuard interface {
	Acquire(ctx context.Context, email string) (bool, error)
}
