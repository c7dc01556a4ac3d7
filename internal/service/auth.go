package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/hash"
	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/tokens"
)

const accessTokenTTL = 12 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	admin, err := s.Repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bad credentials", ErrValidation)
		}
		return nil, err
	}
	if !hash.CheckPassword(admin.PasswordHash, password) {
		return nil, fmt.Errorf("%w: bad credentials", ErrValidation)
	}

	exp := time.Now().Add(accessTokenTTL).UTC()
	token, err := tokens.NewAccessToken(admin.Username, "admin", s.JWTSecret, exp)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}

// EnsureAdmin creates the bootstrap admin account on first start; it is
// a no-op when the username already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.Repo.GetAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	return s.Repo.CreateAdmin(ctx, &models.Admin{Username: username, PasswordHash: hashed})
}
