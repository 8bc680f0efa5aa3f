package domain

import (
	"errors"
	"time"
)

// Verification failure reasons, ordered by the checks VerifyChallenge runs.
var ErrNoChallenge = errors.New("no pending challenge")
var ErrChallengeExpired = errors.New("challenge expired")
var ErrEmailMismatch = errors.New("challenge issued for a different email")
var ErrInvalidCode = errors.New("invalid verification code")

// ErrSendFailed marks a failure of the email collaborator, distinct from any
// verification failure.
var ErrSendFailed = errors.New("verification email could not be sent")

// ErrResendTooSoon is returned when a code reissue is requested inside the
// caller-enforced cooldown window.
var ErrResendTooSoon = errors.New("a code was sent recently, wait before resending")

// Challenge is the single pending OTP record awaiting verification. It is
// immutable once stored: verification reads it, only issue (overwrite) and
// clear (delete) ever write.
type Challenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge's deadline has passed at now.
func (c Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
