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
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// CreateTempFile creates a temporary file with the given content
func CreateTempFile(t *testing.T, dir, pattern, content string) string {
	t.Helper()

	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		t.Fatalf("Failed to write to temp file: %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}

// WriteConfig writes a YAML configuration file and returns its path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateTempFile(t, t.TempDir(), "config-*.yaml", content)
}

// SuccessResponse is the JSON an auth tool prints for an opened session.
func SuccessResponse(sessionURL, username string) string {
	return marshal(map[string]interface{}{
		"status": 0,
		"result": map[string]interface{}{
			"orgId":    "00D0E0000000001EAA",
			"url":      sessionURL,
			"username": username,
		},
	})
}

// ErrorResponse is the JSON an auth tool prints when it cannot open a session.
func ErrorResponse(name, message string) string {
	return marshal(map[string]interface{}{
		"status":  1,
		"name":    name,
		"message": message,
	})
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// WriteAuthTool writes a shell script that stands in for the auth CLI. It
// prints stdout, exits with exitCode and records its arguments, one per
// line, next to itself in args.txt.
func WriteAuthTool(t *testing.T, stdout string, exitCode int) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake auth tool requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "sfdx")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"$(dirname \"$0\")/args.txt\"\n" +
		"cat <<'JSON'\n" + stdout + "\nJSON\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write auth tool: %v", err)
	}

	return path
}

// ReadToolArgs returns the arguments the fake auth tool at path was called
// with, or nil if it never ran.
func ReadToolArgs(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "args.txt"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to read tool args: %v", err)
	}

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
