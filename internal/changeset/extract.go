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

package changeset

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/sirseerhq/changeset-relay/internal/config"
	relayerrors "github.com/sirseerhq/changeset-relay/internal/errors"
)

// Positions of the cells among a row's child nodes.
const (
	nameCell         = 1
	descriptionCell  = 2
	statusCell       = 3
	modifiedByCell   = 4
	modifiedDateCell = 5
)

// idMarker precedes the change set id in the name link's href.
const idMarker = "id="

// Options control how extracted values are shaped for presentation.
type Options struct {
	// Structured keeps descriptions whole for JSON consumers. Table output
	// truncates them to the configured limit.
	Structured bool

	// Verbose only affects which columns are rendered. It is accepted here
	// so callers can pass their presentation flags through unchanged.
	Verbose bool
}

// Extractor turns a change set page into a Collection.
type Extractor struct {
	tableID          string
	descriptionLimit int
	notFoundMessage  string
}

// NewExtractor creates an extractor using the table id, description limit
// and messages from cfg.
func NewExtractor(cfg *config.Config) *Extractor {
	return &Extractor{
		tableID:          cfg.Remote.TableID,
		descriptionLimit: cfg.Output.DescriptionLimit,
		notFoundMessage:  cfg.Messages.DOMParseError,
	}
}

// Extract parses body and returns one Record per row of the change set
// table, in document order. A missing table or a malformed row fails with
// *errors.DOMParseError and no records.
func (e *Extractor) Extract(body []byte, opts Options) (*Collection, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &relayerrors.DOMParseError{Reason: err.Error()}
	}

	table := findByID(doc, e.tableID)
	if table == nil {
		return nil, &relayerrors.DOMParseError{Reason: e.notFoundMessage}
	}

	records := []Record{}
	for i, row := range childNodes(table) {
		rec, err := extractRow(row)
		if err != nil {
			return nil, &relayerrors.DOMParseError{Reason: fmt.Sprintf("row %d: %v", i, err)}
		}
		if !opts.Structured {
			rec.Description = truncate(rec.Description, e.descriptionLimit)
		}
		records = append(records, rec)
	}

	return NewCollection(records), nil
}

// extractRow reads one record from the fixed cell layout. Descriptions are
// returned untruncated.
func extractRow(row *html.Node) (Record, error) {
	cells := childNodes(row)
	if len(cells) <= modifiedDateCell {
		return Record{}, fmt.Errorf("expected at least %d cells, found %d", modifiedDateCell+1, len(cells))
	}

	link := firstElementChild(cells[nameCell])
	if link == nil {
		return Record{}, fmt.Errorf("name cell has no link")
	}
	href, ok := attr(link, "href")
	if !ok {
		return Record{}, fmt.Errorf("name link has no href")
	}
	_, id, found := strings.Cut(href, idMarker)
	if !found {
		return Record{}, fmt.Errorf("name link href %q has no %q", href, idMarker)
	}

	modifiedBy := firstElementChild(cells[modifiedByCell])
	if modifiedBy == nil {
		return Record{}, fmt.Errorf("modified by cell has no link")
	}

	return Record{
		ID:           id,
		Name:         strings.TrimSpace(textContent(link)),
		Description:  strings.TrimSpace(textContent(cells[descriptionCell])),
		Status:       textContent(cells[statusCell]),
		ModifiedBy:   strings.TrimSpace(textContent(modifiedBy)),
		ModifiedDate: textContent(cells[modifiedDateCell]),
	}, nil
}

// truncate keeps the first limit characters of s.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// childNodes returns every direct child of n, text and comment nodes
// included.
func childNodes(n *html.Node) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	return nodes
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// textContent concatenates the text of n and all its descendants.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
