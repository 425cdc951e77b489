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

package output

import (
	"io"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
)

// Renderer writes a change set collection in one presentation format.
type Renderer interface {
	// Render writes c in full. It does not modify c.
	Render(c *changeset.Collection) error
}

// Mode selects the presentation format.
type Mode int

const (
	ModeDefault Mode = iota
	ModeVerbose
	ModeStructured
)

// ModeFor maps the command's flags to a Mode. Structured output wins over
// verbose.
func ModeFor(verbose, structured bool) Mode {
	switch {
	case structured:
		return ModeStructured
	case verbose:
		return ModeVerbose
	default:
		return ModeDefault
	}
}

// NewRenderer returns the Renderer for mode writing to w.
func NewRenderer(w io.Writer, mode Mode) Renderer {
	switch mode {
	case ModeStructured:
		return NewJSONWriter(w)
	case ModeVerbose:
		return NewTableWriter(w, VerboseColumns)
	default:
		return NewTableWriter(w, DefaultColumns)
	}
}
