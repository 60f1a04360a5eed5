// Copyright (c) linknl authors.
// MIT License

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hostnet/linknl/netlink"
)

func bridgeCmd() *cobra.Command {
	bridge := &cobra.Command{
		Use:   "bridge <name>",
		Short: "Create an ethernet bridge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.CreateBridge(ctx, args[0])
			})
		},
	}

	bridge.AddCommand(&cobra.Command{
		Use:   "attach <name> <bridge>",
		Short: "Attach a network interface to a bridge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.AddInterfaceToBridge(ctx, args[0], args[1])
			})
		},
	})

	bridge.AddCommand(&cobra.Command{
		Use:   "detach <name>",
		Short: "Detach a network interface from its bridge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.RemoveInterfaceFromBridge(ctx, args[0])
			})
		},
	})

	return bridge
}
