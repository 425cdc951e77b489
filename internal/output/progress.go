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
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Progress brackets a human-readable run with a start and stop message on
// a side channel, normally stderr. A disabled Progress writes nothing.
type Progress struct {
	output  io.Writer
	enabled bool
	style   lipgloss.Style
	started bool
}

// NewProgress creates a Progress writing to w. Colors are applied only when
// w is a terminal.
func NewProgress(w io.Writer, enabled bool) *Progress {
	renderer := lipgloss.NewRenderer(w)
	return &Progress{
		output:  w,
		enabled: enabled,
		style:   renderer.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// Start prints msg without a trailing newline.
func (p *Progress) Start(msg string) {
	if !p.enabled {
		return
	}
	p.started = true
	fmt.Fprint(p.output, p.style.Render(msg)+" ")
}

// Stop finishes the line opened by Start with msg.
func (p *Progress) Stop(msg string) {
	if !p.enabled || !p.started {
		return
	}
	p.started = false
	fmt.Fprintln(p.output, p.style.Render(msg))
}

// Fail finishes the line opened by Start without a status, so that the
// error printed next starts on its own line.
func (p *Progress) Fail() {
	if !p.enabled || !p.started {
		return
	}
	p.started = false
	fmt.Fprintln(p.output)
}
