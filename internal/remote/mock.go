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
	"net/http"
	"sync"
)

// MockFetcher is a Fetcher returning a canned response.
type MockFetcher struct {
	mu sync.Mutex

	Body       []byte
	StatusCode int
	Error      error

	// Track calls for verification
	CallCount     int
	LastURL       string
	LastSessionID string
}

// NewMockFetcher returns a fetcher answering every call with 200 and body.
func NewMockFetcher(body []byte) *MockFetcher {
	return &MockFetcher{Body: body, StatusCode: http.StatusOK}
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, targetURL, sessionID string) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastURL = targetURL
	m.LastSessionID = sessionID

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}
	return &Response{StatusCode: m.StatusCode, Body: m.Body}, nil
}
