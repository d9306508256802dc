package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dhruvsolvzz/SHOPING-CART/internal/entity"
)

type memUsers struct {
	byName map[string]*domain.User
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]*domain.User{}} }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	if _, ok := m.byName[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *u
	m.byName[u.Username] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func newUsersFixture() (*Users, *memUsers, *memCarts) {
	users := newMemUsers()
	carts := newMemCarts()
	return NewUsers(users, carts, plainHasher{}, staticSigner{}), users, carts
}

func TestRegisterCreatesUserCartAndToken(t *testing.T) {
	uc, _, carts := newUsersFixture()

	res, err := uc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "hashed:s3cret", res.User.PasswordHash)
	assert.Equal(t, "token-for-"+res.User.ID, res.Token)

	cart, err := carts.GetByUser(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := newUsersFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "   ", "pw")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = uc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _, _ := newUsersFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newUsersFixture()
	ctx := context.Background()

	reg, err := uc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	res, err := uc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	uc, _, _ := newUsersFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	// wrong password and unknown user fail identically
	_, err = uc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	uc, _, _ := newUsersFixture()
	ctx := context.Background()

	reg, err := uc.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	u, err := uc.Me(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = uc.Me(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
