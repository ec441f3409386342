package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/peladahub/api-server/internals/storage"
)

type doc struct {
	Balance float64  `json:"saldoTotal"`
	Names   []string `json:"names"`
}

func newStore(t *testing.T) (*storage.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir, logrus.New())
	require.NoError(t, err)
	return fs, dir
}

func TestReadSeedsDefaultDocument(t *testing.T) {
	fs, dir := newStore(t)

	d := doc{Balance: 0, Names: []string{}}
	require.NoError(t, fs.Read("caixinha", &d))
	require.Equal(t, 0.0, d.Balance)

	// The default was persisted so the next reader sees the same document.
	_, err := os.Stat(filepath.Join(dir, "caixinha.json"))
	require.NoError(t, err)
}

func TestWriteThenRead(t *testing.T) {
	fs, _ := newStore(t)

	require.NoError(t, fs.Write("caixinha", &doc{Balance: 42.5, Names: []string{"Ana"}}))

	var d doc
	require.NoError(t, fs.Read("caixinha", &d))
	require.Equal(t, 42.5, d.Balance)
	require.Equal(t, []string{"Ana"}, d.Names)
}

// Startup reads swallow corruption: the caller keeps its default and the
// problem is logged, never fatal.
func TestCorruptDocumentFallsBackToDefault(t *testing.T) {
	fs, dir := newStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "caixinha.json"), []byte("{not json"), 0o644))

	d := doc{Balance: 7}
	require.NoError(t, fs.Read("caixinha", &d))
	require.Equal(t, 7.0, d.Balance)
}
