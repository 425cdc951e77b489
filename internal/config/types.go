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

// Package config types define the configuration structures used throughout
// changeset-relay. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

const (
	// DefaultChangeSetPath is the console page listing outbound change sets.
	DefaultChangeSetPath = "/changemgmt/listOutboundChangeSet.apexp"

	// DefaultTableID is the DOM id of the tbody holding one row per change set.
	DefaultTableID = "ListOutboundChangeSetPage:listOutboundChangeSetPageBody:listOutboundChangeSetPageBody:ListOutboundChangeSetForm:ListOutboundChangeSetPageBlock:ListOutboundChangeSetBlockSection:OutboundChangeSetList:tb"

	// DefaultDescriptionLimit is the number of characters kept from a
	// description in table output.
	DefaultDescriptionLimit = 80
)

// Config represents the complete configuration for changeset-relay.
// It is loaded once per invocation and passed explicitly to every component.
type Config struct {
	Auth     AuthConfig     `yaml:"auth"`
	Remote   RemoteConfig   `yaml:"remote"`
	Output   OutputConfig   `yaml:"output"`
	Messages MessagesConfig `yaml:"messages"`
}

// AuthConfig names the external tool used to open an authenticated session.
// The tool is invoked as: <Tool> <OpenCommand> --urlonly --json -u <username>.
type AuthConfig struct {
	Tool        string `yaml:"tool"`
	OpenCommand string `yaml:"open_command"`
}

// RemoteConfig locates the change set table on the org console.
type RemoteConfig struct {
	Path    string `yaml:"path"`
	TableID string `yaml:"table_id"`
}

// OutputConfig controls table rendering.
type OutputConfig struct {
	DescriptionLimit int `yaml:"description_limit"`
}

// MessagesConfig is the message table for user-facing text.
type MessagesConfig struct {
	DOMParseError string `yaml:"dom_parse_error"`
	Running       string `yaml:"running"`
	Done          string `yaml:"done"`
}

// DefaultConfig returns a Config that talks to a stock org console through
// the sfdx CLI.
func DefaultConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			Tool:        "sfdx",
			OpenCommand: "force:org:open",
		},
		Remote: RemoteConfig{
			Path:    DefaultChangeSetPath,
			TableID: DefaultTableID,
		},
		Output: OutputConfig{
			DescriptionLimit: DefaultDescriptionLimit,
		},
		Messages: MessagesConfig{
			DOMParseError: "expected element not found",
			Running:       "running...",
			Done:          "done",
		},
	}
}
