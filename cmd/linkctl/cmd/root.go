// Copyright (c) linknl authors.
// MIT License

// Package cmd wires the linkctl verbs onto a cobra root command. linkctl
// is an external collaborator over the netlink package, not part of the
// library itself.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hostnet/linknl/log"
	"github.com/hostnet/linknl/netio"
	"github.com/hostnet/linknl/netlink"
)

const envPrefix = "LINKCTL"

// NewRootCmd builds the linkctl command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "linkctl",
		Short:        "Configure Linux network interfaces over rtnetlink",
		SilenceUsage: true,
		Version:      version,
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if target := viper.GetString("log_target"); target != "" {
		if lt, ok := logTargetFromString(target); ok {
			log.Std().SetTarget(lt) //nolint:errcheck // best-effort; falls back to the default target
		}
	}

	rootCmd.AddCommand(upCmd())
	rootCmd.AddCommand(downCmd())
	rootCmd.AddCommand(renameCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(setMACCmd())
	rootCmd.AddCommand(vethCmd())
	rootCmd.AddCommand(bridgeCmd())
	rootCmd.AddCommand(addressCmd())
	rootCmd.AddCommand(moveNsCmd())

	return rootCmd
}

func logTargetFromString(s string) (int, bool) {
	switch s {
	case "stderr":
		return log.TargetStderr, true
	case "stdout":
		return log.TargetStdout, true
	case "syslog":
		return log.TargetSyslog, true
	case "logfile":
		return log.TargetLogfile, true
	default:
		return 0, false
	}
}

// withLinkOps opens a connection for the duration of run and closes it
// afterward, matching spec.md's one-connection-per-operation model.
func withLinkOps(run func(ctx context.Context, ops *netlink.LinkOps) error) error {
	client, err := netlink.NewRtnetlinkClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ops := netlink.NewLinkOps(client, &netio.NetIO{})
	return run(context.Background(), ops)
}
