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
	"sync"
)

// MockProvider is a Provider that returns a fixed descriptor or error.
type MockProvider struct {
	mu sync.Mutex

	Descriptor *Descriptor
	Error      error

	// Track calls for verification
	CallCount    int
	LastUsername string
}

// NewMockProvider returns a provider resolving every username to d.
func NewMockProvider(d *Descriptor) *MockProvider {
	return &MockProvider{Descriptor: d}
}

// Resolve implements the Provider interface
func (m *MockProvider) Resolve(ctx context.Context, username string) (*Descriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastUsername = username

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Descriptor, nil
}
