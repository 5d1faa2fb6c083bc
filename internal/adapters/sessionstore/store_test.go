package sessionstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := NewStore(viper.New())
	require.NoError(t, err)
	return store
}

func TestLoadAbsentFileIsAnonymousSession(t *testing.T) {
	store := newTestStore(t)

	session, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAnonymous, session.Mode)
	assert.Empty(t, session.Token)
	assert.Empty(t, session.DisplayName)
}

func TestSaveLoadRoundTripAcrossSimulatedRestart(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(viper.New())
	require.NoError(t, err)

	saved := domain.NewSession("T1", "Ann")
	require.NoError(t, store.Save(context.Background(), saved))

	// A fresh store against the same HOME stands in for a process restart.
	reopened, err := NewStore(viper.New())
	require.NoError(t, err)

	loaded, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveWritesRestrictedFileModes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(viper.New())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), domain.NewSession("T1", "Ann")))

	info, err := os.Stat(filepath.Join(home, ".biketaxi", "session.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())
}

func TestSaveRejectsAnonymousSession(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), domain.NewSession("", ""))
	require.Error(t, err)
	assert.ErrorContains(t, err, "anonymous session")
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), domain.NewSession("T1", "Ann")))
	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))

	session, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated())
}

func TestLoadRejectsUnknownSchemaVersion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".biketaxi")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.toml"), []byte("version = 2\n"), 0o600))

	store, err := NewStore(viper.New())
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported session file version")
}

func TestLoadTreatsPartialPairAsNoSession(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".biketaxi")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	contents := "version = 1\n\n[session]\ntoken = \"T1\"\nuser_name = \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.toml"), []byte(contents), 0o600))

	store, err := NewStore(viper.New())
	require.NoError(t, err)

	session, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated())
}

func TestConfigFileOverridesSessionPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	customPath := filepath.Join(home, "elsewhere", "creds.toml")
	dir := filepath.Join(home, ".biketaxi")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	config := "[session]\npath = \"" + customPath + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0o600))

	store, err := NewStore(viper.New())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), domain.NewSession("T1", "Ann")))

	_, err = os.Stat(customPath)
	require.NoError(t, err)
}
