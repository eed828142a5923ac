package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apiclient"
)

type fakeAPI struct {
	token      string
	profile    *apiclient.Profile
	profileErr error
	calls      int
}

func (f *fakeAPI) SetToken(token string) {
	f.token = token
}

func (f *fakeAPI) Profile(ctx context.Context) (*apiclient.Profile, error) {
	f.calls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func TestNewWithoutPersistedTokenIsAnonymous(t *testing.T) {
	sess, err := New(&MemoryStore{}, &fakeAPI{})
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, sess.State())
	assert.Empty(t, sess.Token())
}

func TestNewWithPersistedTokenStartsChecking(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("persisted-token"))

	api := &fakeAPI{}
	sess, err := New(store, api)
	require.NoError(t, err)

	assert.Equal(t, StateChecking, sess.State())
	// The token is installed on the client before any call.
	assert.Equal(t, "persisted-token", api.token)
}

func TestResolveSuccessAuthenticates(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("persisted-token"))

	api := &fakeAPI{profile: &apiclient.Profile{Id: 1, Username: "alice"}}
	sess, err := New(store, api)
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, sess.Resolve(context.Background()))
	assert.Equal(t, "alice", sess.Profile().Username)
}

func TestResolveFailureDiscardsToken(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("stale-token"))

	api := &fakeAPI{profileErr: &apiclient.APIError{Status: 401, Message: "Invalid token"}}
	sess, err := New(store, api)
	require.NoError(t, err)

	assert.Equal(t, StateAnonymous, sess.Resolve(context.Background()))
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.Profile())
	assert.Empty(t, api.token)

	// Persisted copy is gone too.
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestResolveNetworkFailureAlsoDiscards(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("token"))

	api := &fakeAPI{profileErr: errors.New("connection refused")}
	sess, err := New(store, api)
	require.NoError(t, err)

	assert.Equal(t, StateAnonymous, sess.Resolve(context.Background()))
}

func TestResolveOutsideCheckingIsANoop(t *testing.T) {
	api := &fakeAPI{}
	sess, err := New(&MemoryStore{}, api)
	require.NoError(t, err)

	assert.Equal(t, StateAnonymous, sess.Resolve(context.Background()))
	assert.Zero(t, api.calls)
}

func TestLoginWithThenResolve(t *testing.T) {
	store := &MemoryStore{}
	api := &fakeAPI{profile: &apiclient.Profile{Id: 1, Username: "alice"}}
	sess, err := New(store, api)
	require.NoError(t, err)

	require.NoError(t, sess.LoginWith("fresh-token"))
	assert.Equal(t, StateChecking, sess.State())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", persisted)

	assert.Equal(t, StateAuthenticated, sess.Resolve(context.Background()))
}

func TestSignOut(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save("token"))

	api := &fakeAPI{profile: &apiclient.Profile{Id: 1, Username: "alice"}}
	sess, err := New(store, api)
	require.NoError(t, err)
	sess.Resolve(context.Background())
	require.Equal(t, StateAuthenticated, sess.State())

	require.NoError(t, sess.SignOut())
	assert.Equal(t, StateAnonymous, sess.State())
	assert.Nil(t, sess.Profile())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store, err := NewFileStore()
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("my-token"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-token", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}
