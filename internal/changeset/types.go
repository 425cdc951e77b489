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

// Record is one outbound change set as shown on the console.
// ModifiedDate is the display string from the page, not a parsed time.
type Record struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	ModifiedBy   string `json:"modifiedBy"`
	ModifiedDate string `json:"modifiedDate"`
}

// Collection is the ordered result of one extraction.
// RecordCount always equals len(Records).
type Collection struct {
	RecordCount int      `json:"recordCount"`
	Records     []Record `json:"records"`
}

// NewCollection wraps records, keeping RecordCount in sync and Records
// non-nil so that an empty result encodes as [].
func NewCollection(records []Record) *Collection {
	if records == nil {
		records = []Record{}
	}
	return &Collection{
		RecordCount: len(records),
		Records:     records,
	}
}
