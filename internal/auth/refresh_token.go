package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/crm/internal/model"
)

var (
	// ErrInvalidFingerprint is raised when refresh token is used from another client
	ErrInvalidFingerprint = errors.New("invalid fingerprint for refresh token provided")
	// ErrRefreshTokenExpired is raised when refresh token lifetime is over
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// RefreshTokenIssuer issues refresh tokens according to config
type RefreshTokenIssuer struct {
	maxCount          int
	timeToLiveSeconds int
}

// NewRefreshTokenIssuer builds RefreshTokenIssuer
func NewRefreshTokenIssuer(maxCount int, ttl time.Duration) *RefreshTokenIssuer {
	return &RefreshTokenIssuer{
		maxCount:          maxCount,
		timeToLiveSeconds: int(ttl.Seconds()),
	}
}

// Sign issues new refresh token bound to user and client fingerprint
func (r *RefreshTokenIssuer) Sign(userID string, fingerprint string, at time.Time) *model.RefreshToken {
	return &model.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		Fingerprint: fingerprint,
		ExpiresIn:   r.timeToLiveSeconds,
		CreatedAt:   at,
	}
}

// TokensMaxCount is max number of live refresh tokens per user
func (r *RefreshTokenIssuer) TokensMaxCount() int {
	return r.maxCount
}

// VerifyRefreshToken checks token is used by the same client and not expired
func VerifyRefreshToken(t *model.RefreshToken, fingerprint string, now time.Time) error {
	if t.Fingerprint != fingerprint {
		return ErrInvalidFingerprint
	}

	if t.CreatedAt.Add(time.Duration(t.ExpiresIn) * time.Second).Before(now) {
		return ErrRefreshTokenExpired
	}
	return nil
}
