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
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
	relayerrors "github.com/sirseerhq/changeset-relay/internal/errors"
)

// envelope is the JSON document printed in structured mode.
type envelope struct {
	Status  int                   `json:"status"`
	Result  *changeset.Collection `json:"result,omitempty"`
	Name    string                `json:"name,omitempty"`
	Message string                `json:"message,omitempty"`
}

// JSONWriter writes collections and errors as indented JSON envelopes.
type JSONWriter struct {
	output  io.Writer
	encoder *json.Encoder
}

// NewJSONWriter creates a JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &JSONWriter{
		output:  w,
		encoder: enc,
	}
}

// Render writes {"status":0,"result":c}.
func (w *JSONWriter) Render(c *changeset.Collection) error {
	if err := w.encoder.Encode(envelope{Status: 0, Result: c}); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// WriteError writes {"status":1,"name":<code>,"message":<message>} for err.
func (w *JSONWriter) WriteError(err error) error {
	env := envelope{
		Status:  1,
		Name:    relayerrors.Code(err),
		Message: err.Error(),
	}
	if encErr := w.encoder.Encode(env); encErr != nil {
		return fmt.Errorf("failed to write error: %w", encErr)
	}
	return nil
}
