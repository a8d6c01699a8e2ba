package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts need a POSIX shell")
	}
	store := setup(t)
	t.Setenv("STK_LOW_STOCK", "3")

	// stk-hello prints the variables it received and its arguments.
	bin := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\necho %s=$%s\necho %s=$%s\necho %s=$%s\necho args=\"$@\"\nexit 3\n",
		EnvStore, EnvStore, EnvLowStock, EnvLowStock, EnvVerbose, EnvVerbose)
	if err := os.WriteFile(filepath.Join(bin, "stk-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write stk-hello: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	var out bytes.Buffer
	oldOut := stdout
	stdout = &out
	defer func() { stdout = oldOut }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}
	for _, line := range []string{EnvStore + "=" + store, EnvLowStock + "=3", EnvVerbose + "=false", "args=a b"} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("extension output should contain %q, got:\n%s", line, out.String())
		}
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}

func TestIsCommand(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("stk", flag.ContinueOnError), "stk")
	Register(commander)
	if !IsCommand(commander, "sell") || !IsCommand(commander, "help") {
		t.Error("IsCommand() misses registered commands")
	}
	if IsCommand(commander, "hello") {
		t.Error("IsCommand(hello) = true")
	}
}
