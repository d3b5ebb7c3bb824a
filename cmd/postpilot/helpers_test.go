package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the path to the postpilot binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "postpilot"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/postpilot ./cmd/postpilot'", binaryPath)
	}

	return binaryPath
}

// cliCommand runs the binary with the job source and API key variables
// cleared, so the sample board and template generator are used.
func cliCommand(t *testing.T, args ...string) *exec.Cmd {
	cmd := exec.Command(getBinaryPath(t), args...)
	for _, kv := range os.Environ() {
		switch strings.SplitN(kv, "=", 2)[0] {
		case "DATABASE_URL", "JOB_FEED_URL", "GEMINI_API_KEY":
			continue
		}
		cmd.Env = append(cmd.Env, kv)
	}
	return cmd
}
