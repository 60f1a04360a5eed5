// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Netlink protocol constants not already defined in the unix package.
const (
	ifla_INFO_KIND = 1
	ifla_INFO_DATA = 2
	ifla_NET_NS_FD = 28
	veth_INFO_PEER = 1

	// defaultChange sets every bit of ifinfomsg.Change, telling the kernel
	// every flag named in Flags is meaningful for this request.
	defaultChange = 0xFFFFFFFF
)

// byteOrder is the host's native byte order, used to encode and decode the
// fixed-layout netlink headers and attribute values.
var byteOrder binary.ByteOrder

func init() {
	var x uint32 = 0x01020304
	if *(*byte)(unsafe.Pointer(&x)) == 0x01 {
		byteOrder = binary.BigEndian
	} else {
		byteOrder = binary.LittleEndian
	}
}

// InterfaceInfo is the wire-exact view of an ifinfomsg, the fixed header
// that precedes a RTM_*LINK message's attributes.
type InterfaceInfo struct {
	Family uint8
	Type   uint16
	Index  int32
	Flags  uint32
	Change uint32
}

func (i InterfaceInfo) serialize() []byte {
	b := make([]byte, unix.SizeofIfInfomsg)
	b[0] = i.Family
	byteOrder.PutUint16(b[2:4], i.Type)
	byteOrder.PutUint32(b[4:8], uint32(i.Index))
	byteOrder.PutUint32(b[8:12], i.Flags)
	byteOrder.PutUint32(b[12:16], i.Change)
	return b
}

func decodeInterfaceInfo(b []byte) (InterfaceInfo, error) {
	if len(b) < unix.SizeofIfInfomsg {
		return InterfaceInfo{}, ErrProtocolError
	}
	return InterfaceInfo{
		Family: b[0],
		Type:   byteOrder.Uint16(b[2:4]),
		Index:  int32(byteOrder.Uint32(b[4:8])),
		Flags:  byteOrder.Uint32(b[8:12]),
		Change: byteOrder.Uint32(b[12:16]),
	}, nil
}

// AddressInfo is the wire-exact view of an ifaddrmsg, the fixed header that
// precedes a RTM_*ADDR message's attributes.
type AddressInfo struct {
	Family    uint8
	Prefixlen uint8
	Flags     uint8
	Scope     uint8
	Index     uint32
}

func (a AddressInfo) serialize() []byte {
	b := make([]byte, unix.SizeofIfAddrmsg)
	b[0] = a.Family
	b[1] = a.Prefixlen
	b[2] = a.Flags
	b[3] = a.Scope
	byteOrder.PutUint32(b[4:8], a.Index)
	return b
}

func decodeAddressInfo(b []byte) (AddressInfo, error) {
	if len(b) < unix.SizeofIfAddrmsg {
		return AddressInfo{}, ErrProtocolError
	}
	return AddressInfo{
		Family:    b[0],
		Prefixlen: b[1],
		Flags:     b[2],
		Scope:     b[3],
		Index:     byteOrder.Uint32(b[4:8]),
	}, nil
}

// attrAlign rounds n up to the next NLA_ALIGNTO boundary.
func attrAlign(n int) int {
	return (n + unix.NLA_ALIGNTO - 1) & ^(unix.NLA_ALIGNTO - 1)
}

// AttributeTable is a decoded set of rtattr values keyed by attribute type.
// A duplicate key overwrites the earlier value, matching the kernel's own
// last-wins convention for malformed or repeated attributes.
type AttributeTable map[uint16][]byte

// Bytes returns the raw value for key, if present.
func (t AttributeTable) Bytes(key uint16) ([]byte, bool) {
	v, ok := t[key]
	return v, ok
}

// String returns the value for key interpreted as a NUL-trimmed string.
func (t AttributeTable) String(key uint16) (string, bool) {
	v, ok := t[key]
	if !ok {
		return "", false
	}
	for i, c := range v {
		if c == 0 {
			v = v[:i]
			break
		}
	}
	return string(v), true
}

// Uint32 returns the value for key interpreted as a native-order uint32.
func (t AttributeTable) Uint32(key uint16) (uint32, bool) {
	v, ok := t[key]
	if !ok || len(v) < 4 {
		return 0, false
	}
	return byteOrder.Uint32(v[0:4]), true
}
