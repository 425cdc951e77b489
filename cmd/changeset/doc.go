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

// Package main implements the changeset command-line interface.
// This tool lists the outbound change sets of an org by opening a session
// through the sfdx CLI and scraping the org's change set page.
//
// Usage:
//
//	changeset list --username <username> [--verbose] [--json]
//
// Example:
//
//	changeset list -u mysandboxusername@example.com
//	NAME                           STATUS
//	─────────────────────────────  ──────
//	JIRA-1234_HELLO_WORLD_SPRINT3  Open
//
// Exit codes:
//   - 0: Success
//   - 1: General error, including an unexpected page layout
//   - 2: Authentication error
//   - 3: Network error
package main
