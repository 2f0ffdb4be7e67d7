package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
	"github.com/Kariqs/vastra-api/utils"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, email string) (string, error)
}

type AuthService struct {
	store  store.Store
	tokens TokenIssuer
}

func NewAuthService(st store.Store, tokens TokenIssuer) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and returns a token for it. Duplicate emails
// yield ErrEmailTaken and weak passwords a *PasswordPolicyError.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return dto.AuthResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return dto.AuthResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if problems := utils.PasswordProblems(req.Password); len(problems) > 0 {
		return dto.AuthResponse{}, &PasswordPolicyError{Problems: problems}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if _, getErr := s.store.GetUserByEmail(ctx, email); getErr == nil {
			return dto.AuthResponse{}, ErrEmailTaken
		}
		return dto.AuthResponse{}, fmt.Errorf("insert user: %w", err)
	}

	return s.issue(&user, "User registered successfully")
}

// Login answers ErrUnauthorized for an unknown email and for a wrong password alike.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		return dto.AuthResponse{}, ErrUnauthorized
	}
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return dto.AuthResponse{}, ErrUnauthorized
	}

	return s.issue(user, "Login successful")
}

func (s *AuthService) issue(user *models.User, message string) (dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("generate token: %w", err)
	}
	return dto.AuthResponse{
		Token:     token,
		Email:     user.Email,
		UserID:    user.ID,
		IsSuccess: true,
		Message:   message,
	}, nil
}
