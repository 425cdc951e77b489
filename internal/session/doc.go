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

// Package session resolves an authenticated org session by shelling out to
// an external auth CLI. The CLI is asked for a JSON response of the form:
//
//	{"status":0,"result":{"orgId":"00D...","url":"https://host/secur/frontdoor.jsp?sid=...","username":"dev@example.com"}}
//
// and, on failure:
//
//	{"status":1,"name":"NamedOrgNotFound","message":"No org configuration found for name dev@example.com"}
//
// The Provider interface lets callers substitute MockProvider in tests.
package session
