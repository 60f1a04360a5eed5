// Copyright 2021 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"net"
)

// NetlinkInterface is the surface LinkOps exposes to callers, and the
// surface MockNetlink stands in for during tests.
type NetlinkInterface interface {
	CreateVeth(ctx context.Context, name, peerName string) error
	CreateBridge(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	SetFlags(ctx context.Context, name string, flags, change uint32) error
	Up(ctx context.Context, name string) error
	Down(ctx context.Context, name string) error
	IsUp(ctx context.Context, name string) (bool, error)
	SetAttribute(ctx context.Context, name string, attrType uint16, value []byte) error
	SetMAC(ctx context.Context, name string, mac net.HardwareAddr) error
	Rename(ctx context.Context, name, newName string) error
	SetMaster(ctx context.Context, name, master string) error
	AddInterfaceToBridge(ctx context.Context, linkName, bridgeName string) error
	RemoveInterfaceFromBridge(ctx context.Context, linkName string) error
	MoveToNamespace(ctx context.Context, name string, nsFD int) error
	GetInfo(ctx context.Context, name string) (InterfaceInfo, AttributeTable, error)
	NameOf(ctx context.Context, index int) (string, error)
	AddIPv4(ctx context.Context, name string, ip net.IP, ipNet *net.IPNet) error
	DeleteIPv4(ctx context.Context, name string, ip net.IP, ipNet *net.IPNet) error
}

var _ NetlinkInterface = (*LinkOps)(nil)
