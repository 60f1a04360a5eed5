// Copyright (c) linknl authors.
// MIT License

package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hostnet/linknl/netlink"
	"github.com/hostnet/linknl/netnsmove"
)

func moveNsCmd() *cobra.Command {
	var byPid bool

	cmd := &cobra.Command{
		Use:   "move-ns <name> <namespace>",
		Short: "Move a network interface into an existing network namespace",
		Long: "Move a network interface into a namespace that already exists. " +
			"<namespace> is a name under /var/run/netns unless --pid is set, " +
			"in which case it is the pid of a process already in the target namespace.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var handle netnsmove.Handle
			var err error

			if byPid {
				pid, perr := strconv.Atoi(args[1])
				if perr != nil {
					return netlink.ErrInvalidArgument
				}
				handle, err = netnsmove.FromPid(pid)
			} else {
				handle, err = netnsmove.FromName(args[1])
			}
			if err != nil {
				return err
			}
			defer handle.Close() //nolint:errcheck // best-effort cleanup

			return withLinkOps(func(ctx context.Context, ops *netlink.LinkOps) error {
				return ops.MoveToNamespace(ctx, args[0], handle.FD())
			})
		},
	}

	cmd.Flags().BoolVar(&byPid, "pid", false, "treat <namespace> as a process id instead of a namespace name")
	return cmd
}
