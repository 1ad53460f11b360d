// Package formatter runs external source formatters chosen by file extension.
package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/amirphl/ezpz-ti/internal/utils"
)

var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Command is one formatter invocation. The file path is appended to Args.
type Command struct {
	Program string
	Args    []string
}

// Config maps a lower-case extension without the dot to the commands run,
// in order, on files carrying it.
type Config map[string][]Command

// DefaultConfig runs ruff through rye and prettier through pnpm.
func DefaultConfig() Config {
	ruff := []Command{
		{Program: "rye", Args: []string{"run", "ruff", "check", "--fix"}},
		{Program: "rye", Args: []string{"run", "ruff", "format"}},
	}
	prettier := []Command{{Program: "pnpm", Args: []string{"prettier", "-w"}}}
	cfg := Config{
		"py":   ruff,
		"pyi":  ruff,
		"rs":   {{Program: "rustfmt"}},
		"toml": {{Program: "taplo", Args: []string{"format"}}},
	}
	for _, ext := range []string{"js", "jsx", "ts", "tsx", "css", "scss", "json", "md", "yml", "yaml"} {
		cfg[ext] = prettier
	}
	return cfg
}

// FromTable builds a Config from the YAML shape ext -> [[program, args...]].
// Extensions are normalised; empty command lines are rejected.
func FromTable(table map[string][][]string) (Config, error) {
	cfg := Config{}
	for ext, lines := range table {
		ext = normalizeExt(ext)
		for i, line := range lines {
			if len(line) == 0 || line[0] == "" {
				return nil, fmt.Errorf("formatter %q: command %d is empty", ext, i)
			}
			cfg[ext] = append(cfg[ext], Command{Program: line[0], Args: line[1:]})
		}
	}
	return cfg, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Runner executes one command. ExecRunner is the real one.
type Runner interface {
	Run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) error
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, program string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

type Formatter struct {
	cfg    Config
	runner Runner
	Stdout io.Writer
	Stderr io.Writer
}

func New(cfg Config, runner Runner) *Formatter {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Formatter{cfg: cfg, runner: runner, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Commands returns what FormatFile would run for path.
func (f *Formatter) Commands(path string) ([]Command, error) {
	ext := normalizeExt(filepath.Ext(path))
	cmds, ok := f.cfg[ext]
	if !ok || ext == "" {
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedExtension, ext, path)
	}
	return cmds, nil
}

// FormatFile runs every command configured for the file's extension. The
// first failing command stops the sequence.
func (f *Formatter) FormatFile(ctx context.Context, path string) error {
	cmds, err := f.Commands(path)
	if err != nil {
		return err
	}
	logger := utils.GetLogger()
	for _, c := range cmds {
		args := append(append([]string{}, c.Args...), path)
		var stderr bytes.Buffer
		logger.Debug().Str("file", path).Str("program", c.Program).Strs("args", args).Msg("formatting")
		if err := f.runner.Run(ctx, c.Program, args, f.Stdout, io.MultiWriter(f.Stderr, &stderr)); err != nil {
			return fmt.Errorf("%s %s: %w: %s", c.Program, path, err, strings.TrimSpace(stderr.String()))
		}
	}
	return nil
}

// FormatPaths formats files and walks directories. Inside a directory, files
// with an unsupported extension are skipped; a file named explicitly must be
// supported.
func (f *Formatter) FormatPaths(ctx context.Context, paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			if err := f.FormatFile(ctx, p); err != nil {
				return err
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if _, err := f.Commands(path); err != nil {
				return nil
			}
			return f.FormatFile(ctx, path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
