package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrTokenGeneration    = errors.New("failed to generate token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	User        *models.UserProfile `json:"user"`
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	CurrentUser(ctx context.Context, userID string) (*models.UserProfile, error)
	// Authenticate validates a bearer token and refreshes its role from the user store.
	Authenticate(ctx context.Context, token string) (*utils.Claims, error)
}

// --- authService Implementation ---
type authService struct {
	users  repositories.UserRepository
	tokens repositories.TokenStore
	issuer *utils.TokenIssuer
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users repositories.UserRepository, tokens repositories.TokenStore, issuer *utils.TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens, issuer: issuer}
}

func toProfile(user *models.User) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	if err := copier.Copy(profile, user); err != nil {
		return nil, fmt.Errorf("building user profile: %w", err)
	}
	return profile, nil
}

// Login checks the password and issues an access token.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		// err is bcrypt.ErrMismatchedHashAndPassword for wrong password
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.issuer.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	profile, err := toProfile(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:        profile,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the token until it would have expired.
func (s *authService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%w: token has no ID", utils.ErrInvalidToken)
	}
	expiresAt := time.Now().Add(s.issuer.TTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.tokens.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// CurrentUser retrieves a user's profile by their ID.
func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user profile: %w", err)
	}
	return toProfile(user)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("checking token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	// Removed users lose access immediately and role changes apply to live tokens.
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading token user: %w", err)
	}
	claims.Username = user.Username
	claims.Role = user.Role
	return claims, nil
}
