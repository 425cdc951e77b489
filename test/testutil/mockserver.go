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
// Package testutil provides common test helpers for changeset-relay
package testutil

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirseerhq/changeset-relay/internal/config"
)

// TestSessionID is the session id handed out by fake auth tools.
const TestSessionID = "00D0E0000000001!AQ4AQKx9"

// ConsoleServer is an httptest server standing in for an org console. It
// serves Page at the change set path to requests carrying the expected
// session cookie.
type ConsoleServer struct {
	*httptest.Server

	SessionID  string
	Page       string
	StatusCode int

	requests int32

	mu          sync.Mutex
	lastMethod  string
	lastCookies []*http.Cookie
}

// NewConsoleServer starts a console serving page.
func NewConsoleServer(t *testing.T, page string) *ConsoleServer {
	t.Helper()

	s := &ConsoleServer{
		SessionID:  TestSessionID,
		Page:       page,
		StatusCode: http.StatusOK,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

func (s *ConsoleServer) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&s.requests, 1)

	s.mu.Lock()
	s.lastMethod = r.Method
	s.lastCookies = r.Cookies()
	s.mu.Unlock()

	if r.URL.Path != config.DefaultChangeSetPath {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")

	cookie, err := r.Cookie("sid")
	if err != nil || cookie.Value != s.SessionID {
		// The console answers an unauthenticated request with a login page.
		_, _ = w.Write([]byte("<html><body><form id=\"login_form\"></form></body></html>"))
		return
	}

	w.WriteHeader(s.StatusCode)
	_, _ = w.Write([]byte(s.Page))
}

// SessionURL returns a frontdoor URL for this server carrying the session id.
func (s *ConsoleServer) SessionURL() string {
	return s.URL + "/secur/frontdoor.jsp?sid=" + url.QueryEscape(s.SessionID)
}

// RequestCount returns the number of requests served so far.
func (s *ConsoleServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requests))
}

// LastMethod returns the method of the most recent request.
func (s *ConsoleServer) LastMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMethod
}

// LastCookies returns the cookies of the most recent request.
func (s *ConsoleServer) LastCookies() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCookies
}

// ChangeSetRow describes one row of a generated change set page.
type ChangeSetRow struct {
	ID           string
	Name         string
	Description  string
	Status       string
	ModifiedBy   string
	ModifiedDate string
}

// RowHTML renders a change set row the way the console lays it out: an
// action cell followed by the five data cells, with no whitespace between
// cells.
func RowHTML(r ChangeSetRow) string {
	return fmt.Sprintf(
		`<tr class="dataRow"><td class="actionColumn"><a href="/changemgmt/outboundChangeSetDetailPage.apexp?id=%[1]s">Edit</a></td>`+
			`<th scope="row"><a href="/changemgmt/outboundChangeSetDetailPage.apexp?id=%[1]s">%[2]s</a></th>`+
			`<td>%[3]s</td><td>%[4]s</td>`+
			`<td><a href="/_ui/core/userprofile/UserProfilePage">%[5]s</a></td>`+
			`<td>%[6]s</td></tr>`,
		r.ID, html.EscapeString(r.Name), html.EscapeString(r.Description),
		html.EscapeString(r.Status), html.EscapeString(r.ModifiedBy), html.EscapeString(r.ModifiedDate))
}

// GenerateChangeSetPage renders a console page holding the given rows.
func GenerateChangeSetPage(rows ...ChangeSetRow) string {
	var body strings.Builder
	for _, r := range rows {
		body.WriteString(RowHTML(r))
	}

	return `<!DOCTYPE html><html><head><title>Outbound Change Sets</title></head><body>` +
		`<table class="list"><tbody id="` + config.DefaultTableID + `">` + body.String() +
		`</tbody></table></body></html>`
}

// LoadFixturePage reads the recorded change set page shipped with the
// extractor tests.
func LoadFixturePage(t *testing.T) string {
	t.Helper()

	root, err := findProjectRoot()
	if err != nil {
		t.Fatalf("Failed to find project root: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "internal", "changeset", "testdata", "list_outbound.html"))
	if err != nil {
		t.Fatalf("Failed to read fixture page: %v", err)
	}

	return string(data)
}
