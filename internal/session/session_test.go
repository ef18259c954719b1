package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"starfund/internal/domain/entity"
	"starfund/internal/infra/localstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSessionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	s := New(store, testLogger())
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())

	user := &entity.User{ID: 3, Email: "investor@test.com", Role: entity.RoleInvestor, Token: "tok"}
	require.NoError(t, s.Set(user))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, entity.RoleInvestor, s.Role())
	require.Equal(t, "tok", s.Token())

	// A fresh store over the same directory restores the identity.
	reopened, err := localstore.New(dir)
	require.NoError(t, err)
	restored := New(reopened, testLogger())
	require.True(t, restored.IsAuthenticated())
	require.Equal(t, user.ID, restored.Current().ID)
}

func TestSessionClear(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir)
	require.NoError(t, err)

	s := New(store, testLogger())
	require.NoError(t, s.Set(&entity.User{ID: 1, Token: "tok"}))
	require.NoError(t, s.Clear())
	require.False(t, s.IsAuthenticated())

	reopened, err := localstore.New(dir)
	require.NoError(t, err)
	require.False(t, New(reopened, testLogger()).IsAuthenticated())
}

func TestSessionSurvivesCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "currentUser.json"), []byte("{not json"), 0o600))

	store, err := localstore.New(dir)
	require.NoError(t, err)
	s := New(store, testLogger())
	require.False(t, s.IsAuthenticated())
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	s := New(store, testLogger())
	require.NoError(t, s.Set(&entity.User{ID: 7, Name: "A", Token: "tok"}))

	got := s.Current()
	got.Name = "mutated"
	require.Equal(t, "A", s.Current().Name)
}
