package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-flow-nft/internal/adapter"
	"github.com/feral-file/ff-flow-nft/internal/domain"
	"github.com/feral-file/ff-flow-nft/internal/providers/ethereum"
	"github.com/feral-file/ff-flow-nft/internal/registry"
)

func newOwnedCommand(a *app) *cobra.Command {
	var tags []string

	command := &cobra.Command{
		Use:   "owned <address>",
		Short: "List the tokens an address owns across the deployed collections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			owner := args[0]

			deployments, err := registry.Select(a.deployments, a.network, tags)
			if err != nil {
				return err
			}
			if len(deployments) == 0 {
				return writeJSON(cmd.OutOrStdout(), []domain.TokenRecord{})
			}

			s, err := a.sessions.Connect(ctx, a.network, owner)
			if err != nil {
				return err
			}
			defer a.sessions.Disconnect()

			tokens, err := a.resolver.Resolve(ctx, s.Client, s.Account, deployments)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), tokens)
		},
	}
	command.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Only include these collection tags or contract addresses")

	return command
}

func newDeploymentsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "List the deployed contracts of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				domain.Deployment
				Collection string `json:"collection"`
			}

			deployments := a.deployments.Deployments(a.network)
			rows := make([]row, 0, len(deployments))
			for _, d := range deployments {
				rows = append(rows, row{Deployment: d, Collection: d.Label()})
			}

			return writeJSON(cmd.OutOrStdout(), rows)
		},
	}
}

func newCollectionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collection <tag>",
		Short: "Show the contract-level metadata of a deployed collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deployment, err := a.deployments.Lookup(a.network, args[0])
			if err != nil {
				return err
			}

			info, err := a.cfg.NetworkInfo(a.network)
			if err != nil {
				return err
			}

			client, err := ethereum.Dial(ctx, adapter.NewEthClientDialer(), info, a.cfg.Scan.CallTimeout)
			if err != nil {
				return err
			}
			client = ethereum.Wrap(client, a.limit)
			defer client.Close()

			meta, err := a.collections.Get(ctx, client, deployment.Address)
			if err != nil {
				return fmt.Errorf("failed to read collection %s: %w", deployment.Label(), err)
			}

			return writeJSON(cmd.OutOrStdout(), meta)
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
