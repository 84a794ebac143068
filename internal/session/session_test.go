package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/storage"
)

func newSession(t *testing.T) (*session.Session, *storage.SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profoodie.db")
	kv, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	sess, err := session.New(kv, nil)
	require.NoError(t, err)
	return sess, kv, path
}

func completeProfile() model.Profile {
	return model.Profile{
		Age: 30, Gender: model.GenderMale, HeightCm: 175, WeightKg: 70,
		ActivityLevel: model.ActivityModerate, Goal: model.GoalMaintain,
	}
}

func TestRegisterPersistsUser(t *testing.T) {
	t.Parallel()
	sess, kv, path := newSession(t)

	user, err := sess.Register("amina@example.com", "Amina")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.OnboardingCompleted)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, "free", user.Subscription.Plan)

	require.NoError(t, kv.Close())
	kv2, err := storage.Open(path)
	require.NoError(t, err)
	defer kv2.Close()
	restored, err := session.New(kv2, nil)
	require.NoError(t, err)
	require.NotNil(t, restored.Current())
	assert.Equal(t, user.ID, restored.Current().ID)
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	t.Parallel()
	sess, _, _ := newSession(t)

	user, err := sess.Login("kip@example.com")
	require.NoError(t, err)
	assert.Equal(t, "kip", user.Name)
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	t.Parallel()
	sess, _, _ := newSession(t)

	var events []string
	sess.Subscribe(func(u *model.User) { events = append(events, "first") })
	sess.Subscribe(func(u *model.User) { events = append(events, "second") })

	_, err := sess.Register("amina@example.com", "Amina")
	require.NoError(t, err)
	require.NoError(t, sess.CompleteOnboarding(completeProfile()))

	assert.Equal(t, []string{"first", "second", "first", "second"}, events)
}

func TestCompleteOnboardingSetsFlagAndProfile(t *testing.T) {
	t.Parallel()
	sess, _, _ := newSession(t)

	require.Error(t, sess.CompleteOnboarding(completeProfile()), "onboarding requires a signed-in user")

	_, err := sess.Register("amina@example.com", "")
	require.NoError(t, err)
	require.NoError(t, sess.CompleteOnboarding(completeProfile()))

	user := sess.Current()
	require.NotNil(t, user)
	assert.True(t, user.OnboardingCompleted)
	require.NotNil(t, user.Profile)
	assert.Equal(t, 70.0, user.Profile.WeightKg)
}

func TestLogoutClearsUser(t *testing.T) {
	t.Parallel()
	sess, kv, _ := newSession(t)

	_, err := sess.Register("amina@example.com", "Amina")
	require.NoError(t, err)

	var lastSeen *model.User = sess.Current()
	sess.Subscribe(func(u *model.User) { lastSeen = u })

	require.NoError(t, sess.Logout())
	assert.Nil(t, sess.Current())
	assert.Nil(t, lastSeen)

	_, ok, err := kv.Get(storage.KeyUser)
	require.NoError(t, err)
	assert.False(t, ok, "persisted user must be removed on logout")
}

func TestMalformedSavedUserDiscarded(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profoodie.db")
	kv, err := storage.Open(path)
	require.NoError(t, err)
	defer kv.Close()
	require.NoError(t, kv.Put(storage.KeyUser, []byte(`{broken`)))

	sess, err := session.New(kv, nil)
	require.NoError(t, err)
	assert.Nil(t, sess.Current())

	_, ok, err := kv.Get(storage.KeyUser)
	require.NoError(t, err)
	assert.False(t, ok, "malformed record must be deleted")
}
