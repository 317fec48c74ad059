package session

import (
	"context"
	"testing"

	"minimalbites/internal/kv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWithMockCredentials(t *testing.T) {
	store := New(kv.NewMemoryStore())
	ctx := context.Background()

	assert.False(t, store.IsAuthenticated(ctx))

	ok := store.Login(ctx, MockEmail, MockPassword)
	require.True(t, ok)

	assert.True(t, store.IsAuthenticated(ctx))

	profile := store.CurrentUser(ctx)
	require.NotNil(t, profile)
	assert.Equal(t, MockEmail, profile.Email)
	assert.Equal(t, "Admin User", profile.Name)
	assert.Equal(t, "admin", profile.Role)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	store := New(kv.NewMemoryStore())
	ctx := context.Background()

	assert.False(t, store.Login(ctx, MockEmail, "wrong"))
	assert.False(t, store.Login(ctx, "someone@else.com", MockPassword))

	assert.False(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.CurrentUser(ctx))

	// A failed attempt after a successful login keeps the session
	require.True(t, store.Login(ctx, MockEmail, MockPassword))
	assert.False(t, store.Login(ctx, MockEmail, "wrong"))
	assert.True(t, store.IsAuthenticated(ctx))
}

func TestLogout(t *testing.T) {
	store := New(kv.NewMemoryStore())
	ctx := context.Background()

	require.True(t, store.Login(ctx, MockEmail, MockPassword))
	store.Logout(ctx)

	assert.False(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.CurrentUser(ctx))
}

func TestIsAuthenticatedRequiresTruthyFlag(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := New(mem)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, AuthKey, "false", 0))
	assert.False(t, store.IsAuthenticated(ctx))

	require.NoError(t, mem.Set(ctx, AuthKey, "true", 0))
	assert.True(t, store.IsAuthenticated(ctx))
}

func TestCurrentUserMalformedProfileYieldsNil(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := New(mem)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, UserKey, "{broken", 0))
	assert.Nil(t, store.CurrentUser(ctx))
}

func TestFlagAndProfileAreIndependent(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := New(mem)
	ctx := context.Background()

	require.True(t, store.Login(ctx, MockEmail, MockPassword))

	// The profile entry expiring on its own leaves the flag intact
	require.NoError(t, mem.Delete(ctx, UserKey))

	assert.True(t, store.IsAuthenticated(ctx))
	assert.Nil(t, store.CurrentUser(ctx))
}

func TestProperty_OnlyMockPairAuthenticates(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("arbitrary credentials never authenticate", prop.ForAll(
		func(email, password string) bool {
			if email == MockEmail && password == MockPassword {
				return true
			}

			store := New(kv.NewMemoryStore())
			ctx := context.Background()

			if store.Login(ctx, email, password) {
				return false
			}
			return !store.IsAuthenticated(ctx)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
