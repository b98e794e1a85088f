package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internconnect/internal/domain"
	"internconnect/internal/store"
)

func sessionUser(role domain.Role) domain.SessionUser {
	return domain.SessionUser{
		ID:    "user-1",
		Name:  "Jane",
		Email: "jane@x.com",
		Role:  role,
		Token: "token",
	}
}

func TestManagerStartsLoggedOut(t *testing.T) {
	m := NewManager(store.NewMemory())
	require.NoError(t, m.Restore(context.Background()))

	assert.Nil(t, m.Current())
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsRecruiter())
	assert.False(t, m.IsApplicant())
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	require.NoError(t, m.Login(ctx, sessionUser(domain.RoleRecruiter)))
	require.NotNil(t, m.Current())
	assert.True(t, m.IsAuthenticated())

	require.NoError(t, m.Logout(ctx))
	assert.Nil(t, m.Current())
	assert.False(t, m.IsAuthenticated())
}

func TestRestoreReadsPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	require.NoError(t, NewManager(kv).Login(ctx, sessionUser(domain.RoleAdmin)))

	// a fresh manager over the same store picks the session up at startup
	m := NewManager(kv)
	require.NoError(t, m.Restore(ctx))
	require.NotNil(t, m.Current())
	assert.Equal(t, "jane@x.com", m.Current().Email)
	assert.True(t, m.IsRecruiter())
}

func TestDerivedFlagsFollowRole(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		role        domain.Role
		isRecruiter bool
		isApplicant bool
	}{
		{domain.RoleRecruiter, true, false},
		{domain.RoleAdmin, true, false},
		{domain.RoleApplicant, false, true},
		{domain.RoleUser, false, true},
	}
	for _, tc := range cases {
		m := NewManager(store.NewMemory())
		require.NoError(t, m.Login(ctx, sessionUser(tc.role)))
		assert.Equal(t, tc.isRecruiter, m.IsRecruiter(), "role %s", tc.role)
		assert.Equal(t, tc.isApplicant, m.IsApplicant(), "role %s", tc.role)
	}
}
