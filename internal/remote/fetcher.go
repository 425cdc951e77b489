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
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirseerhq/changeset-relay/internal/ctxlog"
	relayerrors "github.com/sirseerhq/changeset-relay/internal/errors"
)

// Fetcher retrieves the change set page.
type Fetcher interface {
	// Fetch issues one POST to targetURL authenticated by sessionID and
	// returns the response as received. Transport failures are reported as
	// *errors.NetworkError.
	Fetch(ctx context.Context, targetURL, sessionID string) (*Response, error)
}

// Response is the raw console response. StatusCode is not interpreted.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPFetcher implements Fetcher over net/http.
type HTTPFetcher struct {
	base http.RoundTripper
}

// NewHTTPFetcher creates a fetcher sending requests through base.
// A nil base uses http.DefaultTransport.
func NewHTTPFetcher(base http.RoundTripper) *HTTPFetcher {
	if base == nil {
		base = http.DefaultTransport
	}
	return &HTTPFetcher{base: base}
}

// Fetch implements the Fetcher interface
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, sessionID string) (*Response, error) {
	logger := ctxlog.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{
		Transport: &sessionTransport{
			sessionID: sessionID,
			base:      f.base,
		},
		// A redirect would resend the session cookie as a GET, possibly to
		// another host. The 3xx is returned as the response instead.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	logger.Debug("requesting change set page", "method", req.Method, "url", targetURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &relayerrors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &relayerrors.NetworkError{Err: err}
	}

	logger.Debug("received change set page", "status", resp.StatusCode, "bytes", len(body))

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
