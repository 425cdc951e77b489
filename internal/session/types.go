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

package session

import (
	"context"
	"fmt"
	"net/url"
)

// Provider resolves a username to an authenticated session.
type Provider interface {
	// Resolve returns the session descriptor for username. Failures are
	// reported as *errors.AuthenticationError.
	Resolve(ctx context.Context, username string) (*Descriptor, error)
}

// Descriptor is the short-lived authenticated context for one invocation.
// URL is absolute and carries the session id in its sid query parameter.
type Descriptor struct {
	OrgID    string `json:"orgId"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// SessionID returns the value of the sid query parameter of the session URL.
func (d *Descriptor) SessionID() string {
	u, err := url.Parse(d.URL)
	if err != nil {
		return ""
	}
	return u.Query().Get("sid")
}

// TargetURL combines the scheme and host of the session URL with path.
// Query and fragment of the session URL are dropped. An explicit port in
// the session URL is kept; org consoles are served without one.
func (d *Descriptor) TargetURL(path string) (string, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "", fmt.Errorf("invalid session url: %w", err)
	}
	target := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   path,
	}
	return target.String(), nil
}

// openResponse is the JSON document printed by the auth tool.
type openResponse struct {
	Status  int         `json:"status"`
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Result  *Descriptor `json:"result"`
}
