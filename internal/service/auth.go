package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

const (
	msgUserAlreadyRegistered  = "User already registered"
	msgInvalidLoginCredential = "Invalid login credentials"
)

// AuthService represents behavior of auth service
type AuthService interface {
	Signup(ctx context.Context, email string, password string) (*model.User, error)
	Login(ctx context.Context, email string, password string, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(ctx context.Context, refreshTokenID string) error
	Refresh(ctx context.Context, refreshTokenID string, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error)
	User(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	jwtIssuer      *auth.JwtIssuer
	rfrTokenIssuer *auth.RefreshTokenIssuer
	transactor     transactor.Transactor
	userRps        repository.UserRepository
	rfrTokenRps    repository.RefreshTokenRepository
}

// NewAuthService builds new AuthService
func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	rfrTokenIssuer *auth.RefreshTokenIssuer,
	transactor transactor.Transactor,
	userRps repository.UserRepository,
	rfrTokenRps repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		jwtIssuer:      jwtIssuer,
		rfrTokenIssuer: rfrTokenIssuer,
		transactor:     transactor,
		userRps:        userRps,
		rfrTokenRps:    rfrTokenRps,
	}
}

func (s *authService) Signup(ctx context.Context, email string, password string) (*model.User, error) {
	existing, err := s.userRps.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, msgUserAlreadyRegistered)
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRps.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email string, password string, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	user, err := s.userRps.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, s.invalidCredentials()
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, s.invalidCredentials()
	}

	token, err := s.jwtIssuer.Sign(user, at)
	if err != nil {
		return nil, nil, err
	}

	rfrToken := s.rfrTokenIssuer.Sign(user.ID, fingerprint, at)

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		userTokens, err := s.rfrTokenRps.FindTokensByUserID(txCtx, user.ID)
		if err != nil {
			return err
		}

		if len(userTokens) >= s.rfrTokenIssuer.TokensMaxCount() {
			if err := s.rfrTokenRps.DeleteByUserID(txCtx, user.ID); err != nil {
				return err
			}
		}

		return s.rfrTokenRps.Create(txCtx, rfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	return token, rfrToken, nil
}

func (s *authService) Refresh(ctx context.Context, refreshTokenID string, fingerprint string, at time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	rfrToken, err := s.rfrTokenRps.FindByID(ctx, refreshTokenID)
	if err != nil {
		return nil, nil, err
	}

	if rfrToken == nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "non-existing refresh token provided")
	}

	if verifyErr := auth.VerifyRefreshToken(rfrToken, fingerprint, at); verifyErr != nil {
		// expired or foreign token is never usable again
		if err := s.rfrTokenRps.DeleteByID(ctx, rfrToken.ID); err != nil {
			return nil, nil, err
		}
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, verifyErr.Error())
	}

	var token *auth.Jwt
	var newRfrToken *model.RefreshToken

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.rfrTokenRps.DeleteByID(txCtx, rfrToken.ID); err != nil {
			return err
		}

		user, err := s.userRps.FindByID(txCtx, rfrToken.UserID)
		if err != nil {
			return err
		}

		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "refresh token owner doesn't exist")
		}

		token, err = s.jwtIssuer.Sign(user, at)
		if err != nil {
			return err
		}

		newRfrToken = s.rfrTokenIssuer.Sign(user.ID, fingerprint, at)
		return s.rfrTokenRps.Create(txCtx, newRfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	return token, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshTokenID string) error {
	if err := s.rfrTokenRps.DeleteByID(ctx, refreshTokenID); err != nil {
		return err
	}
	return nil
}

func (s *authService) User(ctx context.Context, userID string) (*model.User, error) {
	return s.userRps.FindByID(ctx, userID)
}

func (s *authService) invalidCredentials() error {
	return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidLoginCredential)
}
