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

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/sirseerhq/changeset-relay/internal/config"
	"github.com/sirseerhq/changeset-relay/internal/ctxlog"
	relayerrors "github.com/sirseerhq/changeset-relay/internal/errors"
)

// Error codes used when the auth tool itself does not provide one.
const (
	CodeMissingUsername     = "MissingUsername"
	CodeAuthToolFailed      = "AuthToolFailed"
	CodeInvalidAuthResponse = "InvalidAuthResponse"
	CodeInvalidSessionURL   = "InvalidSessionURL"
)

// CLIProvider resolves sessions by running the configured auth tool once per
// call. It never retries.
type CLIProvider struct {
	tool        string
	openCommand string
}

// NewCLIProvider creates a provider for the tool named in cfg.
func NewCLIProvider(cfg config.AuthConfig) *CLIProvider {
	return &CLIProvider{
		tool:        cfg.Tool,
		openCommand: cfg.OpenCommand,
	}
}

// Args returns the argument list passed to the auth tool for username.
func (p *CLIProvider) Args(username string) []string {
	return []string{p.openCommand, "--urlonly", "--json", "-u", username}
}

// Resolve runs <tool> <open-command> --urlonly --json -u <username> and
// decodes its stdout.
func (p *CLIProvider) Resolve(ctx context.Context, username string) (*Descriptor, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &relayerrors.AuthenticationError{
			Message: "a username is required to open an org session",
			Code:    CodeMissingUsername,
		}
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("running auth tool", "tool", p.tool, "command", p.openCommand, "username", username)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.tool, p.Args(username)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	var resp openResponse
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &resp); err != nil {
		if runErr != nil {
			return nil, &relayerrors.AuthenticationError{
				Message: toolFailureMessage(p.tool, runErr, stderr.String()),
				Code:    CodeAuthToolFailed,
			}
		}
		return nil, &relayerrors.AuthenticationError{
			Message: fmt.Sprintf("failed to decode %s response: %v", p.tool, err),
			Code:    CodeInvalidAuthResponse,
		}
	}

	if resp.Status != 0 {
		return nil, &relayerrors.AuthenticationError{
			Message: resp.Message,
			Code:    resp.Name,
		}
	}

	if runErr != nil {
		return nil, &relayerrors.AuthenticationError{
			Message: toolFailureMessage(p.tool, runErr, stderr.String()),
			Code:    CodeAuthToolFailed,
		}
	}

	if resp.Result == nil {
		return nil, &relayerrors.AuthenticationError{
			Message: fmt.Sprintf("%s response has no result", p.tool),
			Code:    CodeInvalidAuthResponse,
		}
	}

	if err := validateSessionURL(resp.Result.URL); err != nil {
		return nil, &relayerrors.AuthenticationError{
			Message: err.Error(),
			Code:    CodeInvalidSessionURL,
		}
	}

	logger.Debug("session resolved", "orgId", resp.Result.OrgID, "username", resp.Result.Username)

	return &Descriptor{
		OrgID:    resp.Result.OrgID,
		URL:      resp.Result.URL,
		Username: resp.Result.Username,
	}, nil
}

// validateSessionURL requires an absolute URL with a non-empty sid parameter.
func validateSessionURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		// url.Error repeats the input, which would leak the session id.
		return fmt.Errorf("session url is malformed")
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("session url must be absolute")
	}
	if u.Query().Get("sid") == "" {
		return fmt.Errorf("session url has no sid parameter")
	}
	return nil
}

func toolFailureMessage(tool string, runErr error, stderr string) string {
	msg := fmt.Sprintf("%s failed: %v", tool, runErr)
	if s := strings.TrimSpace(stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
