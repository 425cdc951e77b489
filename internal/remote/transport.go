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

package remote

import (
	"fmt"
	"net/http"

	"github.com/sirseerhq/changeset-relay/pkg/version"
)

// SessionCookie is the cookie the console reads the session id from.
const SessionCookie = "sid"

// sessionTransport attaches the session cookie and a User-Agent to requests.
type sessionTransport struct {
	sessionID string
	base      http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Cookie", SessionCookie+"="+t.sessionID)
	req.Header.Set("User-Agent", fmt.Sprintf("changeset-relay/%s", version.Version))

	return t.base.RoundTrip(req)
}
