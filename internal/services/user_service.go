package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
)

var (
	ErrUserValidation   = errors.New("invalid user data")
	ErrCannotRemoveSelf = errors.New("you cannot remove your own account")
)

var validate = validator.New()

// seedNamespace makes default account IDs stable across resets.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("restaurant-dashboard/users"))

// AddUserRequest DTO
type AddUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesall= "`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin manager staff"`
}

// UpdateUserRequest DTO. Omitted fields are left unchanged; passwords cannot be changed here.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32,excludesall= "`
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager staff"`
}

// UserService manages dashboard accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	AddUser(ctx context.Context, req AddUserRequest) (*models.UserProfile, error)
	RemoveUser(ctx context.Context, actingUserID, userID string) error
	UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*models.UserProfile, error)
	ResetUsers(ctx context.Context) ([]models.UserProfile, error)
}

type userService struct {
	users    repositories.UserRepository
	seed     []models.SeedUser
	hashCost int
	now      func() time.Time
}

// NewUserService creates a new instance of UserService. ResetUsers restores seed.
func NewUserService(users repositories.UserRepository, seed []models.SeedUser, hashCost int) UserService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &userService{users: users, seed: seed, hashCost: hashCost, now: time.Now}
}

// BuildSeedUsers hashes the default accounts. IDs are derived from usernames
// so a reset keeps existing sessions of default accounts valid.
func BuildSeedUsers(seed []models.SeedUser, hashCost int, now time.Time) ([]models.User, error) {
	users := make([]models.User, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), hashCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", s.Username, err)
		}
		users = append(users, models.User{
			ID:           uuid.NewSHA1(seedNamespace, []byte(s.Username)).String(),
			Username:     s.Username,
			PasswordHash: string(hash),
			Name:         s.Name,
			Role:         s.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrUserValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrUserValidation, strings.Join(msgs, "; "))
}

func profiles(users []models.User) ([]models.UserProfile, error) {
	out := []models.UserProfile{}
	if err := copier.Copy(&out, &users); err != nil {
		return nil, fmt.Errorf("building user profiles: %w", err)
	}
	return out, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return profiles(users)
}

func (s *userService) AddUser(ctx context.Context, req AddUserRequest) (*models.UserProfile, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	return toProfile(user)
}

func (s *userService) RemoveUser(ctx context.Context, actingUserID, userID string) error {
	if actingUserID != "" && actingUserID == userID {
		return ErrCannotRemoveSelf
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*models.UserProfile, error) {
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
	}
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toProfile(user)
}

// ResetUsers replaces every account with the default set.
func (s *userService) ResetUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := BuildSeedUsers(s.seed, s.hashCost, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.users.ReplaceAll(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to reset users: %w", err)
	}
	return profiles(users)
}
