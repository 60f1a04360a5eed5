// Copyright (c) linknl authors.
// MIT License

package cmd

import (
	"context"
	"net"

	"github.com/spf13/cobra"

	"github.com/hostnet/linknl/netlink"
)

func addressCmd() *cobra.Command {
	address := &cobra.Command{
		Use:   "address",
		Short: "Manage IPv4 addresses on a network interface",
	}

	address.AddCommand(&cobra.Command{
		Use:   "add <name> <cidr>",
		Short: "Assign an IPv4 address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, ipNet, err := net.ParseCIDR(args[1])
			if err != nil {
				return netlink.ErrInvalidArgument
			}
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.AddIPv4(ctx, args[0], ip, ipNet)
			})
		},
	})

	address.AddCommand(&cobra.Command{
		Use:   "remove <name> <cidr>",
		Short: "Remove an IPv4 address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, ipNet, err := net.ParseCIDR(args[1])
			if err != nil {
				return netlink.ErrInvalidArgument
			}
			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.DeleteIPv4(ctx, args[0], ip, ipNet)
			})
		},
	})

	return address
}
