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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
)

const (
	columnGap = "  "
	ruleChar  = "─"
)

// Column is one table column.
type Column struct {
	Header string
	Value  func(changeset.Record) string
}

// DefaultColumns lists name and status.
var DefaultColumns = []Column{
	{Header: "NAME", Value: func(r changeset.Record) string { return r.Name }},
	{Header: "STATUS", Value: func(r changeset.Record) string { return r.Status }},
}

// VerboseColumns lists every field of a record.
var VerboseColumns = []Column{
	{Header: "ID", Value: func(r changeset.Record) string { return r.ID }},
	{Header: "NAME", Value: func(r changeset.Record) string { return r.Name }},
	{Header: "DESCRIPTION", Value: func(r changeset.Record) string { return r.Description }},
	{Header: "STATUS", Value: func(r changeset.Record) string { return r.Status }},
	{Header: "MODIFIED BY", Value: func(r changeset.Record) string { return r.ModifiedBy }},
	{Header: "MODIFIED DATE", Value: func(r changeset.Record) string { return r.ModifiedDate }},
}

// TableWriter renders a collection as an aligned text table: a header row,
// a rule under each header, then one line per record.
type TableWriter struct {
	output  io.Writer
	columns []Column
}

// NewTableWriter creates a TableWriter with the given columns.
func NewTableWriter(w io.Writer, columns []Column) *TableWriter {
	return &TableWriter{
		output:  w,
		columns: columns,
	}
}

// Render implements the Renderer interface
func (t *TableWriter) Render(c *changeset.Collection) error {
	rows := make([][]string, 0, len(c.Records))
	for _, rec := range c.Records {
		row := make([]string, len(t.columns))
		for i, col := range t.columns {
			row[i] = singleLine(col.Value(rec))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(t.columns))
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
		widths[i] = lipgloss.Width(col.Header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat(ruleChar, w)
	}

	var sb strings.Builder
	writeLine(&sb, headers, widths)
	writeLine(&sb, rules, widths)
	for _, row := range rows {
		writeLine(&sb, row, widths)
	}

	if _, err := io.WriteString(t.output, sb.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func writeLine(sb *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for i, cell := range cells {
		if i > 0 {
			line.WriteString(columnGap)
		}
		line.WriteString(cell)
		if pad := widths[i] - lipgloss.Width(cell); pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteString("\n")
}

// singleLine folds line breaks so a cell cannot break the table layout.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
