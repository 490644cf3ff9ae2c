package importdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadconsole/internal/lead"
)

func TestNewStore_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)

	store, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
}

func TestNewStore_ExplicitDirWins(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
}

func TestStore_Resolve(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "leads.csv"), store.Resolve(" leads.csv "))
	abs := filepath.Join(t.TempDir(), "x.csv")
	assert.Equal(t, abs, store.Resolve(abs))

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "in", "x.csv"), store.Resolve("~/in/x.csv"))
	}
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.csv"), 0o755))

	store, err := NewStore(dir)
	require.NoError(t, err)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.CSV", "b.csv"}, names)
}

func TestStore_List_MissingDir(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	names, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_Read(t *testing.T) {
	dir := t.TempDir()
	content := "NOME,CPF,TELEFONE,VALOR LIBERADO\nAna,1,2,R$ 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leads.csv"), []byte(content), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)

	got, err := store.Read(context.Background(), "leads.csv")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStore_Read_Errors(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read(context.Background(), "  ")
	assert.ErrorIs(t, err, lead.ErrNoFile)

	_, err = store.Read(context.Background(), "missing.csv")
	var ie *lead.ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "missing.csv", ie.Source)
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Read(ctx, "missing.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
