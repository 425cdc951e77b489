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

// Package changeset scrapes outbound change sets from the org console's
// listOutboundChangeSet page.
//
// The page renders change sets in a table whose tbody has a fixed DOM id.
// Each direct child of that tbody is one row, and each row's child nodes
// hold the cells at fixed positions:
//
//	0  action links (ignored)
//	1  <a href="...?id=<change set id>">name</a>
//	2  description
//	3  status
//	4  <a>modified by</a>
//	5  modified date
//
// The layout is taken as-is. A row that does not match it fails the whole
// extraction; rows are never skipped or reordered.
package changeset
