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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
)

var sampleRecord = changeset.Record{
	ID:           "0A20E0000009BJA",
	Name:         "JIRA-1234_HELLO_WORLD_SPRINT3",
	Description:  "",
	Status:       "Open",
	ModifiedBy:   "Olivia White",
	ModifiedDate: "22-1-2020 17:02",
}

func TestTableWriterDefaultColumns(t *testing.T) {
	var buf bytes.Buffer
	err := NewTableWriter(&buf, DefaultColumns).Render(changeset.NewCollection([]changeset.Record{sampleRecord}))
	require.NoError(t, err)

	want := "NAME                           STATUS\n" +
		"─────────────────────────────  ──────\n" +
		"JIRA-1234_HELLO_WORLD_SPRINT3  Open\n"
	if buf.String() != want {
		t.Errorf("table mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTableWriterVerboseColumns(t *testing.T) {
	var buf bytes.Buffer
	err := NewTableWriter(&buf, VerboseColumns).Render(changeset.NewCollection([]changeset.Record{sampleRecord}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	header := strings.Fields(strings.NewReplacer("MODIFIED BY", "MODIFIED_BY", "MODIFIED DATE", "MODIFIED_DATE").Replace(lines[0]))
	wantHeader := []string{"ID", "NAME", "DESCRIPTION", "STATUS", "MODIFIED_BY", "MODIFIED_DATE"}
	if strings.Join(header, ",") != strings.Join(wantHeader, ",") {
		t.Errorf("header = %v, want %v", header, wantHeader)
	}

	for _, want := range []string{"0A20E0000009BJA", "JIRA-1234_HELLO_WORLD_SPRINT3", "Open", "Olivia White", "22-1-2020 17:02"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row %q missing %q", lines[2], want)
		}
	}
}

func TestTableWriterAlignsColumns(t *testing.T) {
	records := []changeset.Record{
		{Name: "A", Status: "Open"},
		{Name: "A_MUCH_LONGER_NAME", Status: "Closed"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewTableWriter(&buf, DefaultColumns).Render(changeset.NewCollection(records)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	col := strings.Index(lines[0], "STATUS")
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		status := fields[len(fields)-1]
		if idx := strings.Index(line, status); idx != col {
			t.Errorf("status in %q starts at %d, want %d", line, idx, col)
		}
	}
}

func TestTableWriterEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableWriter(&buf, DefaultColumns).Render(changeset.NewCollection(nil)))

	want := "NAME  STATUS\n────  ──────\n"
	if buf.String() != want {
		t.Errorf("table = %q, want %q", buf.String(), want)
	}
}

func TestTableWriterFoldsLineBreaks(t *testing.T) {
	rec := sampleRecord
	rec.Status = "\n  Open\n"

	var buf bytes.Buffer
	require.NoError(t, NewTableWriter(&buf, DefaultColumns).Render(changeset.NewCollection([]changeset.Record{rec})))

	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("table has %d lines, want 3:\n%s", n, buf.String())
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		verbose, structured bool
		want                Mode
	}{
		{false, false, ModeDefault},
		{true, false, ModeVerbose},
		{false, true, ModeStructured},
		{true, true, ModeStructured},
	}

	for _, tt := range tests {
		if got := ModeFor(tt.verbose, tt.structured); got != tt.want {
			t.Errorf("ModeFor(%v, %v) = %v, want %v", tt.verbose, tt.structured, got, tt.want)
		}
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	if _, ok := NewRenderer(&buf, ModeStructured).(*JSONWriter); !ok {
		t.Error("ModeStructured should render JSON")
	}
	if tw, ok := NewRenderer(&buf, ModeVerbose).(*TableWriter); !ok || len(tw.columns) != 6 {
		t.Error("ModeVerbose should render six columns")
	}
	if tw, ok := NewRenderer(&buf, ModeDefault).(*TableWriter); !ok || len(tw.columns) != 2 {
		t.Error("ModeDefault should render two columns")
	}
}
