package user_repository

import (
	"context"
	"sync"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"
)

// MemoryUserRepository keeps users in process memory. Used for local runs
// and tests.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*entity.User
	byUsername map[string]string
	order      []string
}

func NewMemoryUserRepository() UserRepository {
	return &MemoryUserRepository{
		users:      make(map[string]*entity.User),
		byUsername: make(map[string]string),
	}
}

func (m *MemoryUserRepository) CreateUser(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byUsername[username]; taken {
		return nil, apperror.Conflict("username already taken")
	}

	user := &entity.User{
		ID:       helper.GenerateUID(),
		Username: username,
		Log:      []entity.LogEntry{},
	}
	m.users[user.ID] = user
	m.byUsername[username] = user.ID
	m.order = append(m.order, user.ID)

	return copyUser(user, false), nil
}

func (m *MemoryUserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]entity.User, 0, len(m.order))
	for _, id := range m.order {
		users = append(users, *copyUser(m.users[id], false))
	}
	return users, nil
}

func (m *MemoryUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("unknown user id")
	}
	return copyUser(user, true), nil
}

func (m *MemoryUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return nil, apperror.NotFound("unknown username")
	}
	return copyUser(m.users[id], false), nil
}

func (m *MemoryUserRepository) AppendLogEntry(ctx context.Context, id string, entry entity.LogEntry) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("unknown user id")
	}
	user.Log = append(user.Log, entry)

	return copyUser(user, true), nil
}

func copyUser(u *entity.User, withLog bool) *entity.User {
	out := &entity.User{ID: u.ID, Username: u.Username}
	if withLog {
		out.Log = make([]entity.LogEntry, len(u.Log))
		copy(out.Log, u.Log)
	}
	return out
}
