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
package integration

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
	"github.com/sirseerhq/changeset-relay/test/testutil"
)

const testUsername = "test@org.com"

type listEnvelope struct {
	Status int                  `json:"status"`
	Result changeset.Collection `json:"result"`
}

func decodeEnvelope(t *testing.T, stdout string) listEnvelope {
	t.Helper()

	var env listEnvelope
	require.NoError(t, json.Unmarshal([]byte(stdout), &env), "stdout: %s", stdout)
	return env
}

// TestListFixturePage runs the binary against the recorded console page in
// every output mode.
func TestListFixturePage(t *testing.T) {
	server := testutil.NewConsoleServer(t, testutil.LoadFixturePage(t))

	fixture := changeset.Record{
		ID:           "0A20E0000009BJA",
		Name:         "JIRA-1234_HELLO_WORLD_SPRINT3",
		Description:  "",
		Status:       "Open",
		ModifiedBy:   "Olivia White",
		ModifiedDate: "22-1-2020 17:02",
	}

	t.Run("default", func(t *testing.T) {
		result := testutil.RunList(t, server, testUsername)
		testutil.AssertCLISuccess(t, result)

		if !strings.Contains(result.Stdout, "NAME") {
			t.Errorf("missing NAME header:\n%s", result.Stdout)
		}
		if !strings.Contains(result.Stdout, "JIRA-1234_HELLO_WORLD_SPRINT3  Open") {
			t.Errorf("missing change set row:\n%s", result.Stdout)
		}
		if !strings.Contains(result.Stderr, "running... done") {
			t.Errorf("missing progress indicator: %q", result.Stderr)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		result := testutil.RunList(t, server, testUsername, "--verbose")
		testutil.AssertCLISuccess(t, result)

		for _, want := range []string{"ID", "MODIFIED BY", "0A20E0000009BJA", "Olivia White"} {
			if !strings.Contains(result.Stdout, want) {
				t.Errorf("missing %q:\n%s", want, result.Stdout)
			}
		}
	})

	for _, flag := range []string{"--json", "--list"} {
		t.Run(flag, func(t *testing.T) {
			result := testutil.RunList(t, server, testUsername, flag)
			testutil.AssertCLISuccess(t, result)

			if result.Stderr != "" {
				t.Errorf("structured mode wrote to stderr: %q", result.Stderr)
			}

			env := decodeEnvelope(t, result.Stdout)
			require.Equal(t, 0, env.Status)
			require.Equal(t, 1, env.Result.RecordCount)
			if diff := cmp.Diff(fixture, env.Result.Records[0]); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListSendsSessionCookie(t *testing.T) {
	server := testutil.NewConsoleServer(t, testutil.GenerateChangeSetPage())

	tool := testutil.WriteAuthTool(t, testutil.SuccessResponse(server.SessionURL(), testUsername), 0)
	result := testutil.RunCLI(t, []string{"list", "-u", testUsername, "--json"}, map[string]string{
		"CHANGESET_AUTH_TOOL": tool,
	})
	testutil.AssertCLISuccess(t, result)

	wantArgs := []string{"force:org:open", "--urlonly", "--json", "-u", testUsername}
	if diff := cmp.Diff(wantArgs, testutil.ReadToolArgs(t, tool)); diff != "" {
		t.Errorf("auth tool args mismatch (-want +got):\n%s", diff)
	}

	if server.RequestCount() != 1 {
		t.Errorf("console requests = %d, want 1", server.RequestCount())
	}
	if server.LastMethod() != "POST" {
		t.Errorf("method = %q, want POST", server.LastMethod())
	}

	cookies := server.LastCookies()
	require.Len(t, cookies, 1)
	if cookies[0].Name != "sid" || cookies[0].Value != testutil.TestSessionID {
		t.Errorf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}

	env := decodeEnvelope(t, result.Stdout)
	if env.Result.RecordCount != 0 || env.Result.Records == nil {
		t.Errorf("empty table decoded as %+v", env.Result)
	}
	if !strings.Contains(result.Stdout, `"records": []`) {
		t.Errorf("empty records should encode as []:\n%s", result.Stdout)
	}
}

func TestListPreservesOrder(t *testing.T) {
	var rows []testutil.ChangeSetRow
	for i := 1; i <= 25; i++ {
		rows = append(rows, testutil.ChangeSetRow{
			ID:           fmt.Sprintf("0A2000000000%03d", i),
			Name:         fmt.Sprintf("RELEASE_%02d", i),
			Status:       "Closed",
			ModifiedBy:   "Release Manager",
			ModifiedDate: "1-2-2024 09:00",
		})
	}
	server := testutil.NewConsoleServer(t, testutil.GenerateChangeSetPage(rows...))

	result := testutil.RunList(t, server, testUsername, "--json")
	testutil.AssertCLISuccess(t, result)

	env := decodeEnvelope(t, result.Stdout)
	require.Equal(t, len(rows), env.Result.RecordCount)
	require.Len(t, env.Result.Records, len(rows))
	for i, r := range env.Result.Records {
		if r.ID != rows[i].ID || r.Name != rows[i].Name {
			t.Errorf("record %d = %s/%s, want %s/%s", i, r.ID, r.Name, rows[i].ID, rows[i].Name)
		}
	}
}

func TestListDescriptionTruncation(t *testing.T) {
	long := strings.Repeat("abcdefghij", 12)
	server := testutil.NewConsoleServer(t, testutil.GenerateChangeSetPage(testutil.ChangeSetRow{
		ID:          "0A2000000000001",
		Name:        "LONG_DESCRIPTION",
		Description: long,
		Status:      "Open",
		ModifiedBy:  "Olivia White",
	}))

	t.Run("structured keeps full text", func(t *testing.T) {
		result := testutil.RunList(t, server, testUsername, "--json")
		testutil.AssertCLISuccess(t, result)

		env := decodeEnvelope(t, result.Stdout)
		require.Equal(t, long, env.Result.Records[0].Description)
	})

	t.Run("table truncates to 80 characters", func(t *testing.T) {
		result := testutil.RunList(t, server, testUsername, "--verbose")
		testutil.AssertCLISuccess(t, result)

		if !strings.Contains(result.Stdout, long[:80]) {
			t.Errorf("missing truncated description:\n%s", result.Stdout)
		}
		if strings.Contains(result.Stdout, long[:81]) {
			t.Errorf("description not truncated:\n%s", result.Stdout)
		}
	})

	t.Run("limit from environment", func(t *testing.T) {
		tool := testutil.WriteAuthTool(t, testutil.SuccessResponse(server.SessionURL(), testUsername), 0)
		result := testutil.RunCLI(t, []string{"list", "-u", testUsername, "--verbose"}, map[string]string{
			"CHANGESET_AUTH_TOOL":         tool,
			"CHANGESET_DESCRIPTION_LIMIT": "15",
		})
		testutil.AssertCLISuccess(t, result)

		if !strings.Contains(result.Stdout, long[:15]+" ") || strings.Contains(result.Stdout, long[:16]) {
			t.Errorf("description not cut at 15 characters:\n%s", result.Stdout)
		}
	})
}
