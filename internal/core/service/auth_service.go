package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventorypro/inventory-system/internal/api/metrics"
	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// AuthConfig captures the knobs of the login flow.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// OTPEnabled gates the email-verification step. When false, login goes
	// straight from credentials to token issue (development convenience).
	OTPEnabled bool
	OTPTTL     time.Duration
}

// AuthService implements registration and the OTP-gated login sequence:
// credentials → challenge → verification → token.
type AuthService struct {
	repo     ports.AuthRepository
	otp      ports.OTPService
	mailer   ports.Mailer
	cooldown ports.CooldownGuard
	cfg      AuthConfig
	logger   zerolog.Logger
}

func NewAuthService(
	repo ports.AuthRepository,
	otp ports.OTPService,
	mailer ports.Mailer,
	cooldown ports.CooldownGuard,
	cfg AuthConfig,
	logger zerolog.Logger,
) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = defaultChallengeTTL
	}
	return &AuthService{repo: repo, otp: otp, mailer: mailer, cooldown: cooldown, cfg: cfg, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, email, role string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login validates credentials. With the OTP step enabled it issues a
// challenge, emails the code, and reports the challenge as pending; the
// token is only minted later by VerifyOTP. With the step disabled the token
// is returned directly.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !s.cfg.OTPEnabled {
		token, err := s.generateToken(user)
		if err != nil {
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		return &ports.LoginResult{Token: token, User: user}, nil
	}

	if err := s.issueAndSend(ctx, user.Email); err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		ChallengePending: true,
		ExpiresInMinutes: int(s.cfg.OTPTTL / time.Minute),
	}, nil
}

// VerifyOTP completes a pending login. On success the challenge is cleared
// explicitly and a signed token is returned.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error) {
	if err := s.otp.VerifyChallenge(ctx, email, code); err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues(verifyReason(err)).Inc()
		return "", nil, err
	}
	if err := s.otp.ClearChallenge(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear verified challenge")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// ResendOTP reissues the challenge for email, honoring the cooldown window.
// The underlying manager has no rate limit of its own; the interval lives
// here, at the caller.
func (s *AuthService) ResendOTP(ctx context.Context, email string) (*ports.LoginResult, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return nil, err
	}

	ok, err := s.cooldown.Acquire(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cooldown check failed, allowing resend")
	} else if !ok {
		return nil, domain.ErrResendTooSoon
	}

	if err := s.issueAndSend(ctx, email); err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		ChallengePending: true,
		ExpiresInMinutes: int(s.cfg.OTPTTL / time.Minute),
	}, nil
}

func (s *AuthService) issueAndSend(ctx context.Context, email string) error {
	code, err := s.otp.IssueChallenge(ctx, email)
	if err != nil {
		return err
	}
	metrics.OTPIssuedTotal.Inc()

	ttlMinutes := int(s.cfg.OTPTTL / time.Minute)
	if err := s.mailer.SendCode(ctx, email, code, ttlMinutes); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("verification email send failed")
		return fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}

	// Arm the resend window; the first send starts the countdown.
	if _, err := s.cooldown.Acquire(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to arm resend cooldown")
	}

	s.logger.Info().Str("email", email).Msg("verification code sent")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"roles":    user.Roles,
		"exp":      time.Now().Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func verifyReason(err error) string {
	switch err {
	case domain.ErrNoChallenge:
		return "no_challenge"
	case domain.ErrChallengeExpired:
		return "expired"
	case domain.ErrEmailMismatch:
		return "email_mismatch"
	case domain.ErrInvalidCode:
		return "invalid_code"
	default:
		return "error"
	}
}
