package goxbar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/muurk/goxbar/internal/logging"
)

// Divider returns the "---" separator row.
func Divider() *MenuItem {
	return &MenuItem{Title: "---"}
}

// Mono returns a monospace-styled row, white so it reads well in both
// menu themes.
func Mono(title string) *MenuItem {
	return &MenuItem{Title: title, Color: "white", Monospace: true}
}

// ShellItem is a row bound to an external command. Clicking it makes
// the host run the command; Output and TryOutput run it directly, which
// is how plugins collect the text they display.
type ShellItem struct {
	MenuItem

	// Cwd is the working directory the command runs in. "~" expands to
	// the user's home. A Cwd that does not exist on disk is reported as
	// a configuration error at first render.
	Cwd string

	cwdChecked bool
}

// NewShellItem builds a ShellItem from a command line. When no explicit
// params are given the command line is split with shell word rules: the
// first word becomes the shell attribute and the rest become param1..N,
// each individually quoted. With explicit params the command string is
// taken verbatim as the shell attribute.
//
// A command line that cannot be tokenized (unbalanced quotes) is kept
// as-is; the failure surfaces as a hard error from Render or Output.
func NewShellItem(title, shell string, params ...string) *ShellItem {
	item := &ShellItem{MenuItem: MenuItem{Title: title, Shell: shell, Params: params}}
	if len(params) > 0 {
		return item
	}

	tokens, err := shellquote.Split(shell)
	if err != nil || len(tokens) == 0 {
		return item
	}
	item.Shell = quoteArg(tokens[0])
	for _, tok := range tokens[1:] {
		item.Params = append(item.Params, quoteArg(tok))
	}
	return item
}

// WithCwd sets the working directory and returns the receiver.
func (s *ShellItem) WithCwd(cwd string) *ShellItem {
	s.Cwd = cwd
	return s
}

// ShellParams returns the quoted command token sequence. With useCwd
// the sequence is prefixed with "cd <dir> &&" so the command runs
// relative to Cwd when executed through a shell. The serialized shell=
// and param*= attributes never carry the prefix; the host changes
// directory on its own terms.
func (s *ShellItem) ShellParams(useCwd bool) ([]string, error) {
	tokens, err := shellquote.Split(s.Shell)
	if err != nil {
		return nil, fmt.Errorf("tokenize shell %q: %w", s.Shell, err)
	}
	params := make([]string, 0, len(tokens)+len(s.Params)+3)
	for _, tok := range tokens {
		params = append(params, quoteArg(tok))
	}
	params = append(params, s.Params...)

	if useCwd && s.Cwd != "" {
		dir, err := expandUser(s.Cwd)
		if err != nil {
			return nil, err
		}
		params = append([]string{"cd", dir, "&&"}, params...)
	}
	return params, nil
}

// ShellString renders the command as a single shell line.
func (s *ShellItem) ShellString(useCwd bool) (string, error) {
	params, err := s.ShellParams(useCwd)
	if err != nil {
		return "", err
	}
	return strings.Join(params, " "), nil
}

// Render implements Renderable. On top of the regular MenuItem output
// it checks Cwd once (reporting a missing directory through the
// config) and, in debug mode, appends a disabled monospace line with
// the fully composed command.
func (s *ShellItem) Render(cfg *Config, depth int) ([]string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	s.checkCwd(cfg)

	var extra []Renderable
	if cfg.Debug {
		line, err := s.ShellString(false)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", s.Title, err)
		}
		extra = append(extra, &MenuItem{
			Title:    "╰─ " + line,
			Font:     cfg.MonoFont,
			Disabled: Flag(true),
		})
	}
	return s.MenuItem.render(cfg, depth, extra)
}

func (s *ShellItem) checkCwd(cfg *Config) {
	if s.cwdChecked || s.Cwd == "" {
		s.cwdChecked = true
		return
	}
	s.cwdChecked = true

	dir, err := expandUser(s.Cwd)
	if err != nil {
		cfg.Error(fmt.Sprintf("cwd %s: %v", s.Cwd, err))
		return
	}
	if _, err := os.Stat(dir); err != nil {
		cfg.Error(fmt.Sprintf("cwd does not exist at %s", dir))
	}
}

// argv is the unquoted argument vector actually executed.
func (s *ShellItem) argv() ([]string, error) {
	line, err := s.ShellString(false)
	if err != nil {
		return nil, err
	}
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("tokenize command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("item %q has no command", s.Title)
	}
	return argv, nil
}

// Output runs the command to completion and returns its trimmed
// standard output. The command runs in Cwd when set. A non-zero exit
// is returned as an error carrying the captured stderr.
func (s *ShellItem) Output(ctx context.Context) (string, error) {
	argv, err := s.argv()
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if s.Cwd != "" {
		dir, err := expandUser(s.Cwd)
		if err != nil {
			return "", err
		}
		cmd.Dir = dir
	}

	logging.Debug("running shell command",
		zap.Strings("argv", argv),
		zap.String("cwd", cmd.Dir),
	)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := bytes.TrimSpace(exitErr.Stderr)
			if len(stderr) > 0 {
				return "", fmt.Errorf("%s exited with code %d: %s", argv[0], exitErr.ExitCode(), stderr)
			}
			return "", fmt.Errorf("%s exited with code %d", argv[0], exitErr.ExitCode())
		}
		return "", fmt.Errorf("run %s: %w", argv[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// TryOutput is the non-strict variant of Output: any failure is logged
// and collapsed to an empty string, for plugins that prefer a blank
// row over an error line.
func (s *ShellItem) TryOutput(ctx context.Context) string {
	out, err := s.Output(ctx)
	if err != nil {
		logging.Warn("shell command failed", zap.String("item", s.Title), zap.Error(err))
		return ""
	}
	return out
}

// expandUser resolves a leading "~" or "~/" to the user's home
// directory.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
