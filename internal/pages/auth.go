package pages

import (
	"context"
	"strings"

	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

const msgSignupSuccess = "Registration successful! Please check your email to verify your account."

// SignupForm is submitted by signup page
type SignupForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginForm is submitted by login page
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// AuthView is view model of signup and login pages
type AuthView struct {
	Email   string
	Success string
	Error   string
}

// LoginResult carries tokens of established session
type LoginResult struct {
	Token        *auth.Jwt
	RefreshToken *model.RefreshToken
}

// AuthPages controls signup, login and logout
type AuthPages struct {
	authSvc   service.AuthService
	validator Validator
	clock     Clock
}

// NewAuthPages builds AuthPages
func NewAuthPages(authSvc service.AuthService, validator Validator, clock Clock) *AuthPages {
	return &AuthPages{authSvc: authSvc, validator: validator, clock: clock}
}

// Signup registers account, form is cleared on success and kept on failure
func (p *AuthPages) Signup(ctx context.Context, form SignupForm) *AuthView {
	form.Email = strings.TrimSpace(form.Email)
	form.Password = strings.TrimSpace(form.Password)

	if err := p.validator.Validate(&form); err != nil {
		return &AuthView{Email: form.Email, Error: errorMessage(err)}
	}

	if _, err := p.authSvc.Signup(ctx, form.Email, form.Password); err != nil {
		return &AuthView{Email: form.Email, Error: errorMessage(err)}
	}

	return &AuthView{Success: msgSignupSuccess}
}

// Login verifies credentials, view is returned only when session wasn't established
func (p *AuthPages) Login(ctx context.Context, form LoginForm, fingerprint string) (*LoginResult, *AuthView) {
	form.Email = strings.TrimSpace(form.Email)
	form.Password = strings.TrimSpace(form.Password)

	if err := p.validator.Validate(&form); err != nil {
		return nil, &AuthView{Email: form.Email, Error: errorMessage(err)}
	}

	token, rfrToken, err := p.authSvc.Login(ctx, form.Email, form.Password, fingerprint, p.clock())
	if err != nil {
		return nil, &AuthView{Email: form.Email, Error: errorMessage(err)}
	}

	return &LoginResult{Token: token, RefreshToken: rfrToken}, nil
}

// Logout ends session bound to refresh token
func (p *AuthPages) Logout(ctx context.Context, refreshTokenID string) error {
	if refreshTokenID == "" {
		return nil
	}
	return p.authSvc.Logout(ctx, refreshTokenID)
}
