// Package testsupport provides helpers for CLI script tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tickPath  string
	buildErr  error
)

// BuildTick builds the tick binary once and returns its path.
func BuildTick(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tick-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tickPath = filepath.Join(binDir, "tick")
		cmd := exec.Command("go", "build", "-o", tickPath, "./cmd/tick")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tick: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tickPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets a scratch HOME with seeding disabled so list output
// stays deterministic.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TICK", BuildTick(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	configDir := filepath.Join(homeDir, ".config", "tick")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "tick"), 0o755); err != nil {
		return err
	}

	config := "[engine]\nseed = false\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644); err != nil {
		return err
	}

	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdCountdownID finds a countdown by name in a JSON list file and
// stores its ID in an env var.
func CmdCountdownID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("countdownid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: countdownid FILE NAME VAR")
	}

	var items []countdown.Entity
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse countdown list: %v", err)
	}

	name := args[1]
	for _, item := range items {
		if item.Name == name {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("countdown with name %q not found", name)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
