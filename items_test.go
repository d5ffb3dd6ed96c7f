package goxbar

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestNewShellItemTokenization(t *testing.T) {
	tests := []struct {
		name       string
		shell      string
		params     []string
		wantShell  string
		wantParams []string
	}{
		{
			name:       "splits and quotes shell words",
			shell:      "echo 'a b' c",
			wantShell:  "echo",
			wantParams: []string{"'a b'", "c"},
		},
		{
			name:       "single word",
			shell:      "uptime",
			wantShell:  "uptime",
			wantParams: nil,
		},
		{
			name:       "explicit params disable splitting",
			shell:      "sh",
			params:     []string{"-c", "exit 0"},
			wantShell:  "sh",
			wantParams: []string{"-c", "exit 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewShellItem("Run", tt.shell, tt.params...)
			if item.Shell != tt.wantShell {
				t.Errorf("Shell = %q, want %q", item.Shell, tt.wantShell)
			}
			if !reflect.DeepEqual(item.Params, tt.wantParams) {
				t.Errorf("Params = %q, want %q", item.Params, tt.wantParams)
			}
		})
	}
}

func TestShellItemRender(t *testing.T) {
	item := NewShellItem("Run", "echo 'a b' c")
	got := renderLines(t, item, NewConfig(), 0)
	want := []string{"Run | shell=echo | param1='a b' | param2=c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestShellItemParams(t *testing.T) {
	item := NewShellItem("Run", "echo hi").WithCwd("/tmp")

	t.Run("without cwd", func(t *testing.T) {
		got, err := item.ShellParams(false)
		if err != nil {
			t.Fatalf("ShellParams() error: %v", err)
		}
		want := []string{"echo", "hi"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ShellParams(false) = %q, want %q", got, want)
		}
	})

	t.Run("with cwd prefix", func(t *testing.T) {
		got, err := item.ShellParams(true)
		if err != nil {
			t.Fatalf("ShellParams() error: %v", err)
		}
		want := []string{"cd", "/tmp", "&&", "echo", "hi"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ShellParams(true) = %q, want %q", got, want)
		}
	})

	t.Run("serialized attributes never carry the prefix", func(t *testing.T) {
		lines := renderLines(t, item, NewConfig(), 0)
		if len(lines) != 1 || strings.Contains(lines[0], "cd") {
			t.Errorf("Render() = %q, want no cd prefix", lines)
		}
	})
}

func TestShellItemMissingCwd(t *testing.T) {
	cfg := NewConfig()
	item := NewShellItem("Run", "true").WithCwd("/nonexistent/goxbar-test-dir")

	renderLines(t, item, cfg, 0)
	renderLines(t, item, cfg, 0) // checked once, reported once

	want := []string{"cwd does not exist at /nonexistent/goxbar-test-dir"}
	if !reflect.DeepEqual(cfg.Errors(), want) {
		t.Errorf("Errors() = %q, want %q", cfg.Errors(), want)
	}
}

func TestShellItemDebugHook(t *testing.T) {
	cfg := NewConfig()
	cfg.Debug = true
	cfg.MonoFont = "Menlo"

	item := NewShellItem("Run", "echo hi")
	got := renderLines(t, item, cfg, 0)
	want := []string{
		"Run | shell=echo | param1=hi",
		"╰─ echo hi | font=Menlo | disabled=True",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestShellItemOutput(t *testing.T) {
	ctx := context.Background()

	t.Run("captures trimmed stdout with unquoted argv", func(t *testing.T) {
		item := NewShellItem("Run", "echo 'a b' c")
		out, err := item.Output(ctx)
		if err != nil {
			t.Fatalf("Output() error: %v", err)
		}
		if out != "a b c" {
			t.Errorf("Output() = %q, want %q", out, "a b c")
		}
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		item := NewShellItem("Fail", "sh -c 'exit 3'")
		if _, err := item.Output(ctx); err == nil {
			t.Fatal("Output() should fail for a non-zero exit")
		} else if !strings.Contains(err.Error(), "exited with code 3") {
			t.Errorf("Output() error = %v, want exit code in message", err)
		}
	})

	t.Run("TryOutput collapses failure to empty", func(t *testing.T) {
		item := NewShellItem("Fail", "sh -c 'exit 1'")
		if out := item.TryOutput(ctx); out != "" {
			t.Errorf("TryOutput() = %q, want empty", out)
		}
	})
}

func TestMono(t *testing.T) {
	cfg := NewConfig()
	got := renderLines(t, Mono("load: 0.42"), cfg, 0)
	want := []string{"load: 0.42 | color=white | font='Andale Mono'"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
