package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-inspector/internal/config"
	"github.com/jonathan/ats-inspector/internal/db"
	"github.com/jonathan/ats-inspector/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserStore is an in-memory UserStore for tests.
type memoryUserStore struct {
	users map[uuid.UUID]*db.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (m *memoryUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUserStore) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (m *memoryUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u := m.users[userID]
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

func (m *memoryUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return m.users[userID], nil
}

func (m *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func testUserService() (*UserService, *memoryUserStore) {
	store := newMemoryUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserServiceRegister(t *testing.T) {
	svc, store := testUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, user.PasswordSet)

	// Hash lands in the store but never in the API type.
	stored := store.users[user.ID]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserServiceLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserServiceGet(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}

func TestUserServiceLoginUnknownEmail(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}
