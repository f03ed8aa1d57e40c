package repositories

import (
	"context"
	"sync"
	"time"

	"restaurant_dashboard/internal/models"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
	now   func() time.Time
}

// NewMemoryUserRepository creates a process-local UserRepository holding seed.
func NewMemoryUserRepository(seed []models.User) UserRepository {
	r := &memoryUserRepository{now: time.Now}
	r.users = append([]models.User(nil), seed...)
	return r
}

func (r *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.User{}, r.users...), nil
}

func (r *memoryUserRepository) indexOf(match func(models.User) bool) int {
	for i, u := range r.users {
		if match(u) {
			return i
		}
	}
	return -1
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(func(u models.User) bool { return u.Username == username })
	if i < 0 {
		return nil, ErrNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *memoryUserRepository) usernameTaken(username, exceptID string) bool {
	return r.indexOf(func(u models.User) bool {
		return u.ID != exceptID && u.Username == username
	}) >= 0
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.usernameTaken(user.Username, "") || r.indexOf(func(u models.User) bool { return u.ID == user.ID }) >= 0 {
		return ErrDuplicateKey
	}
	now := r.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	r.users = append(r.users, *user)
	return nil
}

// Update saves username, name and role; the stored password hash is kept.
func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(func(u models.User) bool { return u.ID == user.ID })
	if i < 0 {
		return ErrNotFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return ErrDuplicateKey
	}
	stored := &r.users[i]
	stored.Username = user.Username
	stored.Name = user.Name
	stored.Role = user.Role
	stored.UpdatedAt = r.now()
	*user = *stored
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

func (r *memoryUserRepository) ReplaceAll(_ context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append([]models.User(nil), users...)
	return nil
}
