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

// Package output renders change set collections for humans and for
// scripts.
//
// Three modes are supported:
//   - ModeDefault: a two column table (NAME, STATUS)
//   - ModeVerbose: a six column table (ID, NAME, DESCRIPTION, STATUS,
//     MODIFIED BY, MODIFIED DATE)
//   - ModeStructured: the whole collection as a JSON envelope,
//     {"status":0,"result":{"recordCount":n,"records":[...]}}
//
// Example usage:
//
//	r := output.NewRenderer(os.Stdout, output.ModeVerbose)
//	if err := r.Render(collection); err != nil {
//	    return err
//	}
//
// Progress reports "running..." and "done" on stderr around human-readable
// runs and stays silent in structured mode.
package output
