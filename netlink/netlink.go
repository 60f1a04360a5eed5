// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

// Package netlink configures Linux network interfaces over AF_NETLINK:
// veth pairs, bridges, master attachment, rename, up/down, IPv4
// assignment, deletion, query, and moving a link into an already-existing
// network namespace. Every exchange is synchronous over the connection a
// RtnetlinkClient opens; that connection serves every operation issued
// through the client until Close, so one connection per operation means
// one client per operation. There is no background reader, no
// notification subscription, and no concurrent use of a single
// RtnetlinkClient.
package netlink

import (
	"context"

	"golang.org/x/sys/unix"
)

// Echo sends a NLMSG_NOOP request and waits for its ack, a connectivity
// smoke test for a netlink connection before attempting real operations.
func Echo(ctx context.Context, client *RtnetlinkClient, text string) error {
	return client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.NLMSG_NOOP, unix.NLM_F_REQUEST|unix.NLM_F_ECHO|unix.NLM_F_ACK); err != nil {
			return err
		}
		return e.AppendAttribute(0, []byte(text))
	})
}
