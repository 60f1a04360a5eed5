// Copyright (c) linknl authors.
// MIT License

//go:build linux
// +build linux

// Package netnsmove resolves an existing network namespace to a handle that
// LinkOps.MoveToNamespace can attach a link to. It intentionally does not
// create, delete, or enter namespaces: namespace management is out of scope
// for this library, which only moves a link into a namespace that already
// exists.
package netnsmove

import (
	"github.com/pkg/errors"
	"github.com/vishvananda/netns"
)

// Handle is an open reference to a network namespace.
type Handle struct {
	ns netns.NsHandle
}

// FromName resolves a named namespace under /var/run/netns.
func FromName(name string) (Handle, error) {
	ns, err := netns.GetFromName(name)
	return Handle{ns: ns}, errors.Wrap(err, "netnsmove: resolve namespace by name")
}

// FromPid resolves the namespace a running process is in.
func FromPid(pid int) (Handle, error) {
	ns, err := netns.GetFromPid(pid)
	return Handle{ns: ns}, errors.Wrap(err, "netnsmove: resolve namespace by pid")
}

// FD returns the raw file descriptor to hand to LinkOps.MoveToNamespace
// (IFLA_NET_NS_FD).
func (h Handle) FD() int {
	return int(h.ns)
}

// Close releases the namespace handle.
func (h Handle) Close() error {
	return errors.Wrap(h.ns.Close(), "netnsmove: close namespace handle")
}
