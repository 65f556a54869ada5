package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/diskview/internal/dispatcher"
	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/key"
	"github.com/dshills/diskview/internal/input/keymap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWriteKeys(t *testing.T) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	writeKeys(w, keymap.DefaultRegistry(), chord.DefaultNormalizer())
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "Normal")
	assert.Contains(t, out, "WarningMessage")
	assert.Contains(t, out, "any key")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "[logging]")
	assert.Contains(t, out, "debug")
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.bin"), make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), make([]byte, 10), 0o644))

	script := filepath.Join(dir, "keys.txt")
	require.NoError(t, os.WriteFile(script, []byte("Enter\nq y\n"), 0o644))

	out, err := execute(t, "--replay", script, root)
	require.NoError(t, err)
	assert.Contains(t, out, "dir="+filepath.Join(root, "sub"))
	assert.Contains(t, out, "exited=true")

	// the listing is untouched without a delete confirmation
	_, err = os.Stat(filepath.Join(root, "sub", "a.bin"))
	assert.NoError(t, err)
}

func TestReplayStopsAtExit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	script := filepath.Join(dir, "keys.txt")
	require.NoError(t, os.WriteFile(script, []byte("q y q\n"), 0o644))

	out, err := execute(t, "--replay", script, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "mode=exiting exited=true")
}

func TestTooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestWatchKeymapSwapsNormalizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[aliases]\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := dispatcher.NewWithDefaults()
	require.NoError(t, watchKeymap(ctx, path, d, zerolog.Nop()))

	require.NoError(t, os.WriteFile(path, []byte("[aliases]\nright = [\"d\"]\n"), 0o644))
	ev := key.NewRuneEvent('d', key.ModNone)
	assert.Eventually(t, func() bool {
		return d.Normalizer().Normalize(ev) == chord.Right
	}, 5*time.Second, 20*time.Millisecond)
}

func TestReloadKeymapKeepsKeysOnError(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	original := d.Normalizer()
	reload := reloadKeymap("keys.toml", d, zerolog.Nop())

	reload(map[chord.Chord][]string{chord.No: {"BS"}}, nil)
	assert.Same(t, original, d.Normalizer())

	reload(nil, assert.AnError)
	assert.Same(t, original, d.Normalizer())

	reload(map[chord.Chord][]string{chord.Right: {"d"}}, nil)
	assert.NotSame(t, original, d.Normalizer())
	assert.Equal(t, chord.Right, d.Normalizer().Normalize(key.NewRuneEvent('d', key.ModNone)))
}
