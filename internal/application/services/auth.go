package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"realty-office-api/config"
	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

// AuthService guards the admin area. There is no user table; the single
// admin identity comes from configuration, password stored as a bcrypt hash.
type AuthService struct {
	jwtService *jwt.Service
	cfg        config.APP
}

func NewAuthService(jwtService *jwt.Service, cfg config.APP) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		cfg:        cfg,
	}
}

func (as *AuthService) GenerateToken(email, requestPassword string) (string, error) {
	if email != as.cfg.AdminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(as.cfg.AdminPasswordHash),
		[]byte(requestPassword),
	); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(email, "admin", time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
