// Copyright Microsoft Corp.
// All rights reserved.

//go:build linux
// +build linux

package netlink

import (
	"context"

	"golang.org/x/sys/unix"
)

// CreateBridge creates an ethernet bridge device.
func (l *LinkOps) CreateBridge(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidArgument
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_NEWLINK, unix.NLM_F_REQUEST|unix.NLM_F_CREATE|unix.NLM_F_EXCL|unix.NLM_F_ACK); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{
			Family: unix.AF_UNSPEC,
			Flags:  unix.IFF_MULTICAST,
			Change: defaultChange,
		}.serialize()); err != nil {
			return err
		}
		if err := e.AppendAttribute(unix.IFLA_IFNAME, nullTerminated(name)); err != nil {
			return err
		}

		if err := e.BeginNested(unix.IFLA_LINKINFO); err != nil {
			return err
		}
		if err := e.AppendAttribute(ifla_INFO_KIND, []byte(linkTypeBridge)); err != nil {
			return err
		}
		return e.EndNested()
	})
}

// AddInterfaceToBridge attaches linkName to bridgeName's master.
func (l *LinkOps) AddInterfaceToBridge(ctx context.Context, linkName, bridgeName string) error {
	return l.SetMaster(ctx, linkName, bridgeName)
}

// RemoveInterfaceFromBridge detaches linkName from whatever bridge it is
// currently a member of.
func (l *LinkOps) RemoveInterfaceFromBridge(ctx context.Context, linkName string) error {
	return l.SetMaster(ctx, linkName, "")
}
