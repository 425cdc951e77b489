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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/changeset-relay/internal/config"
	relayerrors "github.com/sirseerhq/changeset-relay/internal/errors"
	"github.com/sirseerhq/changeset-relay/internal/output"
	"github.com/sirseerhq/changeset-relay/internal/remote"
	"github.com/sirseerhq/changeset-relay/internal/session"
	"github.com/sirseerhq/changeset-relay/pkg/version"
)

// dependencies are the collaborators that reach outside the process.
type dependencies struct {
	Provider session.Provider
	Fetcher  remote.Fetcher
}

// dependencyFactory builds the collaborators once configuration is known.
type dependencyFactory func(cfg *config.Config) dependencies

func defaultDependencies(cfg *config.Config) dependencies {
	return dependencies{
		Provider: session.NewCLIProvider(cfg.Auth),
		Fetcher:  remote.NewHTTPFetcher(nil),
	}
}

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	jsonOut    bool
	configPath string
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, defaultDependencies))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, newDeps dependencyFactory) int {
	rootCmd := newRootCommand(newDeps)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if hasJSONFlag(args) {
			_ = output.NewJSONWriter(stderr).WriteError(err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return mapErrorToExitCode(err)
	}
	return 0
}

func newRootCommand(newDeps dependencyFactory) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "changeset",
		Short: "Inspect change sets of an org",
		Long: `changeset reads change set information from an org's setup pages.

A session is opened through the sfdx CLI for the given username, so the
username must already be authorized with sfdx.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Format output as JSON")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level on stderr (debug, info, warn, error)")

	rootCmd.AddCommand(newListCommand(opts, newDeps))

	return rootCmd
}

// hasJSONFlag reports whether structured output was requested, so errors can
// be reported in the same format even when flag parsing failed.
func hasJSONFlag(args []string) bool {
	structured := map[string]bool{}
	for _, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if name != "--json" && name != "--list" {
			continue
		}
		on := true
		if hasValue {
			b, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}
			on = b
		}
		structured[name] = on
	}
	return structured["--json"] || structured["--list"]
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrAuthentication) {
		return 2 // Authentication errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
