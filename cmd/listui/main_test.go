package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRootCmd_Flags(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()

	for _, name := range []string{"profile", "config-dir", "log-file", "no-fetch"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config-dir", filepath.Join(t.TempDir(), "missing"), "--profile", "local"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() = nil, want config error")
	}
	if !strings.Contains(err.Error(), "loading config") {
		t.Errorf("Execute() error = %v, want loading config error", err)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("LISTUI_TEST_PROFILE", "prod")

	if got := envOr("LISTUI_TEST_PROFILE", "local"); got != "prod" {
		t.Errorf("envOr() = %q, want %q", got, "prod")
	}
	if got := envOr("LISTUI_TEST_UNSET", "local"); got != "local" {
		t.Errorf("envOr() = %q, want %q", got, "local")
	}
}
