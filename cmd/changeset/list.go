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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/changeset-relay/internal/changeset"
	"github.com/sirseerhq/changeset-relay/internal/config"
	"github.com/sirseerhq/changeset-relay/internal/ctxlog"
	"github.com/sirseerhq/changeset-relay/internal/output"
)

// listOptions holds the flags of the list command.
type listOptions struct {
	username string
	verbose  bool
	list     bool
}

// newListCommand creates the list subcommand
func newListCommand(global *globalOptions, newDeps dependencyFactory) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outbound change sets of an org",
		Long: `List the outbound change sets of an org.

The org session is opened with:
  sfdx force:org:open --urlonly --json -u <username>

and the change sets are read from the org's outbound change set page.`,
		Example: `  changeset list --username mysandboxusername@example.com
  changeset list --username mysandboxusername@example.com --verbose
  changeset list --username mysandboxusername@example.com --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(global.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := ctxlog.New(cmd.ErrOrStderr(), global.logLevel)
			ctx := ctxlog.WithLogger(cmd.Context(), logger)

			_, err = runList(ctx, cfg, newDeps(cfg), opts.username, opts.verbose, global.jsonOut || opts.list,
				cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "Username or alias of the org to query (required)")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Show every change set column")
	cmd.Flags().BoolVar(&opts.list, "list", false, "Same as --json")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

// runList resolves a session, fetches the change set page, extracts the
// change sets and renders them. It returns the rendered collection.
func runList(ctx context.Context, cfg *config.Config, deps dependencies, username string, verbose, structured bool, stdout, stderr io.Writer) (*changeset.Collection, error) {
	progress := output.NewProgress(stderr, !structured)
	progress.Start(cfg.Messages.Running)

	collection, err := listChangeSets(ctx, cfg, deps, username, changeset.Options{
		Structured: structured,
		Verbose:    verbose,
	})
	if err != nil {
		progress.Fail()
		return nil, err
	}

	progress.Stop(cfg.Messages.Done)

	if err := output.NewRenderer(stdout, output.ModeFor(verbose, structured)).Render(collection); err != nil {
		return nil, err
	}

	return collection, nil
}

// listChangeSets runs the resolve, fetch and extract steps in order. Each
// step runs once; the first failure ends the run.
func listChangeSets(ctx context.Context, cfg *config.Config, deps dependencies, username string, opts changeset.Options) (*changeset.Collection, error) {
	logger := ctxlog.FromContext(ctx)

	desc, err := deps.Provider.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}

	target, err := desc.TargetURL(cfg.Remote.Path)
	if err != nil {
		return nil, err
	}

	resp, err := deps.Fetcher.Fetch(ctx, target, desc.SessionID())
	if err != nil {
		return nil, err
	}
	logger.Debug("change set page fetched", "status", resp.StatusCode)

	collection, err := changeset.NewExtractor(cfg).Extract(resp.Body, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("change sets listed", "org", desc.OrgID, "count", collection.RecordCount)

	return collection, nil
}
