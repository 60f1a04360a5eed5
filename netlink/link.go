// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"net"

	"golang.org/x/sys/unix"

	"github.com/hostnet/linknl/netio"
)

// Link type names understood by CreateBridge/CreateVeth's IFLA_INFO_KIND
// attribute.
const (
	linkTypeBridge = "bridge"
	linkTypeVeth   = "veth"
)

// LinkOps performs the host-local link operations named in spec.md §4.4
// over one RtnetlinkClient connection.
type LinkOps struct {
	client *RtnetlinkClient
	nio    netio.NetIOInterface
}

// NewLinkOps wraps an open RtnetlinkClient. nio resolves interface names
// to indices; pass &netio.NetIO{} in production code.
func NewLinkOps(client *RtnetlinkClient, nio netio.NetIOInterface) *LinkOps {
	return &LinkOps{client: client, nio: nio}
}

func (l *LinkOps) resolveIndex(name string) (int32, error) {
	iface, err := l.nio.GetNetworkInterfaceByName(name)
	if err != nil {
		return 0, ErrResolveFailed
	}
	return int32(iface.Index), nil
}

// CreateVeth creates a veth pair: name, with its peer named peerName.
func (l *LinkOps) CreateVeth(ctx context.Context, name, peerName string) error {
	if name == "" || peerName == "" {
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
		if err := e.AppendAttribute(ifla_INFO_KIND, []byte(linkTypeVeth)); err != nil {
			return err
		}
		if err := e.BeginNested(ifla_INFO_DATA); err != nil {
			return err
		}
		if err := e.BeginNested(veth_INFO_PEER); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{
			Family: unix.AF_UNSPEC,
			Flags:  unix.IFF_MULTICAST,
			Change: defaultChange,
		}.serialize()); err != nil {
			return err
		}
		if err := e.AppendAttribute(unix.IFLA_IFNAME, nullTerminated(peerName)); err != nil {
			return err
		}
		if err := e.EndNested(); err != nil { // VETH_INFO_PEER
			return err
		}
		if err := e.EndNested(); err != nil { // IFLA_INFO_DATA
			return err
		}
		return e.EndNested() // IFLA_LINKINFO
	})
}

// Delete removes a network interface by name.
func (l *LinkOps) Delete(ctx context.Context, name string) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_DELLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		return e.AppendFixed(InterfaceInfo{Family: unix.AF_UNSPEC, Index: index, Change: defaultChange}.serialize())
	})
}

// SetFlags issues a RTM_SETLINK request that sets flags, masked by change,
// on the named interface. Up and Down are thin callers of this.
func (l *LinkOps) SetFlags(ctx context.Context, name string, flags, change uint32) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_SETLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		return e.AppendFixed(InterfaceInfo{
			Family: unix.AF_UNSPEC,
			Index:  index,
			Flags:  flags,
			Change: change,
		}.serialize())
	})
}

// Up brings a network interface up.
func (l *LinkOps) Up(ctx context.Context, name string) error {
	return l.SetFlags(ctx, name, unix.IFF_UP, unix.IFF_UP)
}

// Down takes a network interface down.
func (l *LinkOps) Down(ctx context.Context, name string) error {
	return l.SetFlags(ctx, name, 0, unix.IFF_UP)
}

// IsUp reports whether a network interface currently carries IFF_UP.
func (l *LinkOps) IsUp(ctx context.Context, name string) (bool, error) {
	info, _, err := l.GetInfo(ctx, name)
	if err != nil {
		return false, err
	}
	return info.Flags&unix.IFF_UP != 0, nil
}

// SetAttribute issues a RTM_SETLINK request carrying a single arbitrary
// attribute, e.g. IFLA_MTU or IFLA_ADDRESS.
func (l *LinkOps) SetAttribute(ctx context.Context, name string, attrType uint16, value []byte) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_SETLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{
			Family: unix.AF_UNSPEC,
			Index:  index,
			Change: defaultChange,
		}.serialize()); err != nil {
			return err
		}
		return e.AppendAttribute(attrType, value)
	})
}

// Rename changes a network interface's name.
func (l *LinkOps) Rename(ctx context.Context, name, newName string) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_SETLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{Family: unix.AF_UNSPEC, Index: index, Change: defaultChange}.serialize()); err != nil {
			return err
		}
		return e.AppendAttribute(unix.IFLA_IFNAME, nullTerminated(newName))
	})
}

// SetMaster attaches name to the bridge master, or detaches it if master
// is empty.
func (l *LinkOps) SetMaster(ctx context.Context, name, master string) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	var masterIndex int32
	if master != "" {
		masterIndex, err = l.resolveIndex(master)
		if err != nil {
			return err
		}
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_SETLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{Family: unix.AF_UNSPEC, Index: index, Change: defaultChange}.serialize()); err != nil {
			return err
		}
		return e.AppendAttribute(unix.IFLA_MASTER, uint32Bytes(uint32(masterIndex)))
	})
}

// MoveToNamespace moves a network interface into the namespace identified
// by an open file descriptor (see netnsmove.Handle.FD). Namespace
// management itself is out of scope; this only relocates an existing
// link into a namespace the caller already resolved.
func (l *LinkOps) MoveToNamespace(ctx context.Context, name string, nsFD int) error {
	index, err := l.resolveIndex(name)
	if err != nil {
		return err
	}

	return l.client.SimpleRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_SETLINK, unix.NLM_F_REQUEST|unix.NLM_F_ACK); err != nil {
			return err
		}
		if err := e.AppendFixed(InterfaceInfo{Family: unix.AF_UNSPEC, Index: index, Change: defaultChange}.serialize()); err != nil {
			return err
		}
		return e.AppendAttribute(ifla_NET_NS_FD, uint32Bytes(uint32(nsFD)))
	})
}

// GetInfo looks up a network interface by name and decodes its header and
// attributes.
func (l *LinkOps) GetInfo(ctx context.Context, name string) (InterfaceInfo, AttributeTable, error) {
	index, err := l.resolveIndex(name)
	if err != nil {
		return InterfaceInfo{}, nil, err
	}
	return l.getInfoByIndex(ctx, index)
}

// NameOf resolves a network interface index back to its current name, the
// inverse of resolveIndex, completing the round trip an index-keyed caller
// (e.g. one storing peer indices) needs to print interface names.
func (l *LinkOps) NameOf(ctx context.Context, index int) (string, error) {
	_, attrs, err := l.getInfoByIndex(ctx, int32(index))
	if err != nil {
		return "", err
	}
	name, ok := attrs.String(unix.IFLA_IFNAME)
	if !ok {
		return "", ErrProtocolError
	}
	return name, nil
}

func (l *LinkOps) getInfoByIndex(ctx context.Context, index int32) (InterfaceInfo, AttributeTable, error) {
	msgs, err := l.client.MultipartRequest(ctx, func(e *Encoder) error {
		if err := e.AppendHeader(unix.RTM_GETLINK, unix.NLM_F_REQUEST); err != nil {
			return err
		}
		return e.AppendFixed(InterfaceInfo{Family: unix.AF_UNSPEC, Index: index}.serialize())
	})
	if err != nil {
		return InterfaceInfo{}, nil, err
	}
	if len(msgs) == 0 {
		return InterfaceInfo{}, nil, ErrUnexpectedReply
	}
	return decodeLinkReply(msgs[0])
}

func nullTerminated(s string) []byte {
	return append([]byte(s), 0)
}

func uint32Bytes(v uint32) []byte {
	b := make([]byte, 4)
	byteOrder.PutUint32(b, v)
	return b
}

// SetMAC sets a network interface's hardware address via IFLA_ADDRESS.
func (l *LinkOps) SetMAC(ctx context.Context, name string, mac net.HardwareAddr) error {
	return l.SetAttribute(ctx, name, unix.IFLA_ADDRESS, hardwareAddress(mac))
}

// hardwareAddress adapts a net.HardwareAddr to the raw bytes IFLA_ADDRESS
// expects.
func hardwareAddress(mac net.HardwareAddr) []byte {
	return []byte(mac)
}
