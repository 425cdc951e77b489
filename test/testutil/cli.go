// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	binaryOnce sync.Once
	binaryPath string
	buildErr   error
)

// BuildBinary returns the path of a changeset binary. CHANGESET_BINARY
// points at a prebuilt one; otherwise ./cmd/changeset is built once per test
// run into a directory outside the test's cleanup.
func BuildBinary(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	binaryOnce.Do(func() {
		if prebuilt := os.Getenv("CHANGESET_BINARY"); prebuilt != "" {
			binaryPath, buildErr = filepath.Abs(prebuilt)
			return
		}

		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = fmt.Errorf("locate go.mod: %w", err)
			return
		}

		tmpDir, err := os.MkdirTemp("", "changeset-relay-test")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tmpDir, "changeset")

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/changeset")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %w\n%s", err, output)
		}
	})

	if buildErr != nil {
		t.Fatalf("Failed to build binary: %v", buildErr)
	}

	return binaryPath
}

// CLIResult is the outcome of one changeset invocation.
type CLIResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// RunCLI executes the changeset binary with the given arguments in an empty
// working directory.
func RunCLI(t *testing.T, args []string, env map[string]string) CLIResult {
	t.Helper()
	return RunCLIIn(t, t.TempDir(), args, env)
}

// RunCLIIn executes the changeset binary in dir. HOME is pointed at an empty
// directory so no user configuration is picked up.
func RunCLIIn(t *testing.T, dir string, args []string, env map[string]string) CLIResult {
	t.Helper()

	binary := BuildBinary(t)

	cmd := exec.Command(binary, args...)
	cmd.Dir = dir

	// Set up environment
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	case err != nil:
		exitCode = -1
	}

	return CLIResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}
}

// AssertCLISuccess fails the test unless the command exited 0.
func AssertCLISuccess(t *testing.T, result CLIResult) {
	t.Helper()

	if result.ExitCode != 0 {
		t.Fatalf("changeset exited %d: %v\nStderr: %s", result.ExitCode, result.Err, result.Stderr)
	}
}

// AssertCLIError checks that the command failed and, if wantStderr is set,
// that stderr mentions it.
func AssertCLIError(t *testing.T, result CLIResult, wantStderr string) {
	t.Helper()

	if result.ExitCode == 0 {
		t.Fatalf("changeset succeeded, want failure\nStdout: %s", result.Stdout)
	}

	if wantStderr != "" && !strings.Contains(result.Stderr, wantStderr) {
		t.Errorf("stderr = %q, want it to contain %q", result.Stderr, wantStderr)
	}
}

// AssertExitCode checks the command exit code.
func AssertExitCode(t *testing.T, result CLIResult, want int) {
	t.Helper()

	if result.ExitCode != want {
		t.Errorf("exit code = %d, want %d\nStderr: %s", result.ExitCode, want, result.Stderr)
	}
}

// RunList runs "changeset list -u <username>" against a console server,
// authenticating through a fake auth tool that hands out a session URL for
// that server.
func RunList(t *testing.T, server *ConsoleServer, username string, args ...string) CLIResult {
	t.Helper()

	tool := WriteAuthTool(t, SuccessResponse(server.SessionURL(), username), 0)

	fullArgs := append([]string{"list", "-u", username}, args...)
	return RunCLI(t, fullArgs, map[string]string{
		"CHANGESET_AUTH_TOOL": tool,
	})
}

// findProjectRoot finds the project root by looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
