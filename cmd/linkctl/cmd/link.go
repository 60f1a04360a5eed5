// Copyright (c) linknl authors.
// MIT License

package cmd

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/hostnet/linknl/netlink"
)

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up <name>",
		Short: "Bring a network interface up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.Up(ctx, args[0])
			})
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down <name>",
		Short: "Take a network interface down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.Down(ctx, args[0])
			})
		},
	}
}

func renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a network interface",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.Rename(ctx, args[0], args[1])
			})
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a network interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.Delete(ctx, args[0])
			})
		},
	}
}

func setMACCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-mac <name> <mac-address>",
		Short: "Set a network interface's hardware address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mac, err := net.ParseMAC(args[1])
			if err != nil {
				return netlink.ErrInvalidArgument
			}
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.SetMAC(ctx, args[0], mac)
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <name>",
		Short: "Print a network interface's index, flags and up state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				info, _, err := ops.GetInfo(ctx, args[0])
				if err != nil {
					return err
				}
				up, err := ops.IsUp(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "index=%d flags=%#x up=%v\n", info.Index, info.Flags, up)
				return nil
			})
		},
	}
}
