// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"encoding/binary"
	"net"

	"golang.org/x/sys/unix"
)

// setIPv4 issues a RTM_NEWADDR/RTM_DELADDR request for one IPv4 address.
func (l *LinkOps) setIPv4(ctx context.Context, name string, ip net.IP, ipNet *net.IPNet, add bool) error {
	v4 := ip.To4()
	if v4 == nil || ipNet == nil {
		return ErrInvalidArgument
	}

	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	prefixLen, _ := ipNet.Mask.Size()

	msgType := uint16(unix.RTM_NEWADDR)
	flags := uint16(unix.NLM_F_REQUEST | unix.NLM_F_CREATE | unix.NLM_F_EXCL | unix.NLM_F_ACK)
	if !add {
		msgType = unix.RTM_DELADDR
		flags = unix.NLM_F_REQUEST | unix.NLM_F_ACK
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(msgType, flags); err != nil {
			return err
		}
		if err := e.AppendFixed(AddressInfo{
			Family:    unix.AF_INET,
			Prefixlen: uint8(prefixLen),
			Index:     uint32(index),
		}.serialize()); err != nil {
			return err
		}
		if err := e.AppendAttribute(unix.IFA_LOCAL, v4); err != nil {
			return err
		}
		if err := e.AppendAttribute(unix.IFA_ADDRESS, v4); err != nil {
			return err
		}
		if !add {
			return nil
		}
		return e.AppendAttribute(unix.IFA_BROADCAST, broadcastAddress(v4, prefixLen))
	})
}

// AddIPv4 assigns an IPv4 address to a network interface.
func (l *LinkOps) AddIPv4(ctx context.Context, name string, ip net.IP, ipNet *net.IPNet) error {
	return l.setIPv4(ctx, name, ip, ipNet, true)
}

// DeleteIPv4 removes an IPv4 address from a network interface.
func (l *LinkOps) DeleteIPv4(ctx context.Context, name string, ip net.IP, ipNet *net.IPNet) error {
	return l.setIPv4(ctx, name, ip, ipNet, false)
}

// broadcastAddress computes the IPv4 broadcast address for addr/prefixLen.
// A /0 prefix carries an all-zero netmask, so the broadcast address is
// simply addr with every host bit set.
func broadcastAddress(addr net.IP, prefixLen int) []byte {
	var netmask uint32
	if prefixLen > 0 {
		netmask = ^uint32(0) << (32 - prefixLen)
	}

	a := binary.BigEndian.Uint32(addr)
	bcast := a | ^netmask

	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, bcast)
	return b
}
