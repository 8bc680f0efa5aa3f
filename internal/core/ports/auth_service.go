package ports

import (
	"context"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// LoginResult is returned by Login. Exactly one of the two shapes is set:
// a pending OTP challenge (email verification required before a token is
// minted) or a completed session when the OTP step is bypassed.
type LoginResult struct {
	ChallengePending bool
	ExpiresInMinutes int
	Token            string
	User             *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	// Login checks credentials. When the OTP step is enabled it issues and
	// emails a challenge; otherwise it returns a signed token directly.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// VerifyOTP completes a challenge-gated login and mints the token.
	VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error)
	// ResendOTP reissues the challenge for an in-progress login, subject to
	// the resend cooldown.
	ResendOTP(ctx context.Context, email string) (*LoginResult, error)
}
