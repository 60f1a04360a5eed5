// Copyright (c) linknl authors.
// MIT License

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hostnet/linknl/netlink"
)

func vethCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "veth <name> <peer-name>",
		Short: "Create a veth pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.CreateVeth(ctx, args[0], args[1])
			})
		},
	}
}
