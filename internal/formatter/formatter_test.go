package formatter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls []string
	fail  string
}

func (r *recordingRunner) Run(_ context.Context, program string, args []string, _, _ io.Writer) error {
	r.calls = append(r.calls, program+" "+strings.Join(args, " "))
	if program == r.fail {
		return errors.New("exit status 1")
	}
	return nil
}

func quiet(f *Formatter) *Formatter {
	f.Stdout, f.Stderr = io.Discard, io.Discard
	return f
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []Command{
		{Program: "rye", Args: []string{"run", "ruff", "check", "--fix"}},
		{Program: "rye", Args: []string{"run", "ruff", "format"}},
	}, cfg["py"])
	assert.Equal(t, cfg["py"], cfg["pyi"])
	assert.Equal(t, Command{Program: "pnpm", Args: []string{"prettier", "-w"}}, cfg["yaml"][0])
	assert.Equal(t, "rustfmt", cfg["rs"][0].Program)
	assert.Equal(t, []string{"format"}, cfg["toml"][0].Args)
}

func TestFormatFile(t *testing.T) {
	r := &recordingRunner{}
	f := quiet(New(DefaultConfig(), r))

	require.NoError(t, f.FormatFile(context.Background(), "pkg/Main.PY"))
	assert.Equal(t, []string{"rye run ruff check --fix pkg/Main.PY", "rye run ruff format pkg/Main.PY"}, r.calls)

	err := f.FormatFile(context.Background(), "main.go")
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	err = f.FormatFile(context.Background(), "Makefile")
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestFormatFileStopsOnFailure(t *testing.T) {
	r := &recordingRunner{fail: "rye"}
	f := quiet(New(DefaultConfig(), r))

	err := f.FormatFile(context.Background(), "a.py")
	require.Error(t, err)
	assert.Len(t, r.calls, 1)
}

func TestFormatPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.txt", filepath.Join("sub", "c.toml")} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	r := &recordingRunner{}
	f := quiet(New(DefaultConfig(), r))
	require.NoError(t, f.FormatPaths(context.Background(), []string{dir}))
	assert.Equal(t, []string{
		"pnpm prettier -w " + filepath.Join(dir, "a.json"),
		"taplo format " + filepath.Join(dir, "sub", "c.toml"),
	}, r.calls)

	err := f.FormatPaths(context.Background(), []string{filepath.Join(dir, "b.txt")})
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	err = f.FormatPaths(context.Background(), []string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestFromTable(t *testing.T) {
	cfg, err := FromTable(map[string][][]string{".GO": {{"gofmt", "-w"}}})
	require.NoError(t, err)
	assert.Equal(t, []Command{{Program: "gofmt", Args: []string{"-w"}}}, cfg["go"])

	_, err = FromTable(map[string][][]string{"go": {{}}})
	assert.Error(t, err)
}
