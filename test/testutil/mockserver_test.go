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
	"io"
	"net/http"
	"os/exec"
	"strings"
	"testing"

	"github.com/sirseerhq/changeset-relay/internal/config"
)

func TestConsoleServer(t *testing.T) {
	page := GenerateChangeSetPage(ChangeSetRow{ID: "0A2000000000001", Name: "First", Status: "Open"})
	server := NewConsoleServer(t, page)

	tests := []struct {
		name     string
		path     string
		cookie   string
		wantCode int
		wantPage bool
	}{
		{
			name:     "authenticated",
			path:     config.DefaultChangeSetPath,
			cookie:   server.SessionID,
			wantCode: http.StatusOK,
			wantPage: true,
		},
		{
			name:     "wrong session",
			path:     config.DefaultChangeSetPath,
			cookie:   "stale",
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown path",
			path:     "/home/home.jsp",
			cookie:   server.SessionID,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, server.URL+tt.path, http.NoBody)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}
			req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if got := string(body) == page; got != tt.wantPage {
				t.Errorf("served page = %v, want %v", got, tt.wantPage)
			}
			if server.LastMethod() != http.MethodPost {
				t.Errorf("method = %q, want POST", server.LastMethod())
			}
		})
	}

	if server.RequestCount() != len(tests) {
		t.Errorf("RequestCount() = %d, want %d", server.RequestCount(), len(tests))
	}
}

func TestConsoleServerSessionURL(t *testing.T) {
	server := NewConsoleServer(t, "")

	want := server.URL + "/secur/frontdoor.jsp?sid=00D0E0000000001%21AQ4AQKx9"
	if got := server.SessionURL(); got != want {
		t.Errorf("SessionURL() = %q, want %q", got, want)
	}
}

func TestGenerateChangeSetPage(t *testing.T) {
	page := GenerateChangeSetPage(
		ChangeSetRow{ID: "0A2000000000001", Name: "First <release>"},
		ChangeSetRow{ID: "0A2000000000002", Name: "Second"},
	)

	if !strings.Contains(page, `id="`+config.DefaultTableID+`"`) {
		t.Error("page missing change set table")
	}
	if got := strings.Count(page, "<tr "); got != 2 {
		t.Errorf("row count = %d, want 2", got)
	}
	if !strings.Contains(page, "First &lt;release&gt;") {
		t.Error("row text is not escaped")
	}
}

func TestAuthResponses(t *testing.T) {
	var ok map[string]interface{}
	if err := json.Unmarshal([]byte(SuccessResponse("https://x.example.com/?sid=1", "me@example.com")), &ok); err != nil {
		t.Fatalf("SuccessResponse is not JSON: %v", err)
	}
	result := ok["result"].(map[string]interface{})
	if ok["status"] != float64(0) || result["url"] != "https://x.example.com/?sid=1" || result["username"] != "me@example.com" {
		t.Errorf("SuccessResponse = %v", ok)
	}

	var failed map[string]interface{}
	if err := json.Unmarshal([]byte(ErrorResponse("NamedOrgNotFound", "no org")), &failed); err != nil {
		t.Fatalf("ErrorResponse is not JSON: %v", err)
	}
	if failed["status"] != float64(1) || failed["name"] != "NamedOrgNotFound" || failed["message"] != "no org" {
		t.Errorf("ErrorResponse = %v", failed)
	}
}

func TestWriteAuthTool(t *testing.T) {
	tool := WriteAuthTool(t, `{"status":0}`, 3)

	if args := ReadToolArgs(t, tool); args != nil {
		t.Errorf("ReadToolArgs() before run = %v, want nil", args)
	}

	out, err := exec.Command(tool, "force:org:open", "-u", "me@example.com").Output()
	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 3 {
		t.Fatalf("exit error = %v, want exit status 3", err)
	}
	if strings.TrimSpace(string(out)) != `{"status":0}` {
		t.Errorf("stdout = %q", out)
	}

	want := []string{"force:org:open", "-u", "me@example.com"}
	got := ReadToolArgs(t, tool)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("ReadToolArgs() = %v, want %v", got, want)
	}
}
