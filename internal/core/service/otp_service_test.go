package service

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// memChallengeStore keeps the single challenge slot in memory.
type memChallengeStore struct {
	ch  *domain.Challenge
	err error
}

func (s *memChallengeStore) Save(_ context.Context, ch domain.Challenge) error {
	if s.err != nil {
		return s.err
	}
	s.ch = &ch
	return nil
}

func (s *memChallengeStore) Get(_ context.Context) (domain.Challenge, error) {
	if s.err != nil {
		return domain.Challenge{}, s.err
	}
	if s.ch == nil {
		return domain.Challenge{}, domain.ErrNoChallenge
	}
	return *s.ch, nil
}

func (s *memChallengeStore) Clear(_ context.Context) error {
	s.ch = nil
	return nil
}

func newTestOTPService(store *memChallengeStore) (*OTPService, *time.Time) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := NewOTPService(store, 5*time.Minute)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestOTPService_IssueChallenge(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)

	code, err := svc.IssueChallenge(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("IssueChallenge returned error: %v", err)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(code) {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	n, _ := strconv.Atoi(code)
	if n < 100000 || n > 999999 {
		t.Fatalf("code %d out of range", n)
	}
	if store.ch == nil || store.ch.Email != "alice@example.com" || store.ch.Code != code {
		t.Fatalf("stored challenge does not match issued code: %+v", store.ch)
	}
}

func TestOTPService_Verify_Success_LeavesRecord(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)
	ctx := context.Background()

	code, _ := svc.IssueChallenge(ctx, "alice@example.com")
	if err := svc.VerifyChallenge(ctx, "alice@example.com", code); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	// Success does not consume the record; a second verify still passes.
	if err := svc.VerifyChallenge(ctx, "alice@example.com", code); err != nil {
		t.Fatalf("second verify failed: %v", err)
	}
	if store.ch == nil {
		t.Fatalf("expected challenge to remain stored after verification")
	}
}

func TestOTPService_Verify_NoChallenge(t *testing.T) {
	svc, _ := newTestOTPService(&memChallengeStore{})

	if err := svc.VerifyChallenge(context.Background(), "alice@example.com", "123456"); err != domain.ErrNoChallenge {
		t.Fatalf("expected ErrNoChallenge, got %v", err)
	}
}

func TestOTPService_Verify_Expired(t *testing.T) {
	store := &memChallengeStore{}
	svc, now := newTestOTPService(store)
	ctx := context.Background()

	code, _ := svc.IssueChallenge(ctx, "alice@example.com")

	// At the exact deadline the challenge is still valid.
	*now = now.Add(5 * time.Minute)
	if err := svc.VerifyChallenge(ctx, "alice@example.com", code); err != nil {
		t.Fatalf("expected challenge valid at deadline, got %v", err)
	}

	*now = now.Add(time.Second)
	if err := svc.VerifyChallenge(ctx, "alice@example.com", code); err != domain.ErrChallengeExpired {
		t.Fatalf("expected ErrChallengeExpired, got %v", err)
	}
}

func TestOTPService_Verify_EmailMismatchBeforeCode(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)
	ctx := context.Background()

	_, _ = svc.IssueChallenge(ctx, "alice@example.com")

	// Both email and code are wrong; the email check runs first.
	if err := svc.VerifyChallenge(ctx, "bob@example.com", "000000"); err != domain.ErrEmailMismatch {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}
}

func TestOTPService_Verify_InvalidCode(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)
	ctx := context.Background()

	code, _ := svc.IssueChallenge(ctx, "alice@example.com")
	wrong := "123456"
	if wrong == code {
		wrong = "654321"
	}
	if err := svc.VerifyChallenge(ctx, "alice@example.com", wrong); err != domain.ErrInvalidCode {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestOTPService_Issue_OverwritesPrevious(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)
	ctx := context.Background()

	first, _ := svc.IssueChallenge(ctx, "alice@example.com")
	second, err := svc.IssueChallenge(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}

	// The slot holds only the latest challenge; the first is dead.
	if err := svc.VerifyChallenge(ctx, "alice@example.com", first); err != domain.ErrEmailMismatch {
		t.Fatalf("expected first challenge to be overwritten, got %v", err)
	}
	if err := svc.VerifyChallenge(ctx, "bob@example.com", second); err != nil {
		t.Fatalf("latest challenge should verify: %v", err)
	}
}

func TestOTPService_ClearChallenge(t *testing.T) {
	store := &memChallengeStore{}
	svc, _ := newTestOTPService(store)
	ctx := context.Background()

	code, _ := svc.IssueChallenge(ctx, "alice@example.com")
	if err := svc.ClearChallenge(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := svc.VerifyChallenge(ctx, "alice@example.com", code); err != domain.ErrNoChallenge {
		t.Fatalf("expected ErrNoChallenge after clear, got %v", err)
	}
	// Clearing again is a no-op.
	if err := svc.ClearChallenge(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}

func TestGenerateCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode returned error: %v", err)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range", n)
		}
	}
}
