// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"golang.org/x/sys/unix"
)

// defaultEncoderCapacity covers a GETLINK/NEWLINK request with a handful of
// attributes and one level of LINKINFO nesting without growing.
const defaultEncoderCapacity = 1024

// Encoder builds one netlink request message into a fixed-capacity buffer.
// It mirrors the request-building half of the C lineage's dynbuf-backed
// encoder: writes are bounds-checked against capacity instead of growing
// without limit, and nested attributes are closed with their aligned
// length patched back in once their contents are known.
type Encoder struct {
	buf    []byte
	pos    int
	starts []int
}

// NewEncoder allocates an Encoder with the given capacity.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = defaultEncoderCapacity
	}
	return &Encoder{buf: make([]byte, capacity)}
}

// Reset empties the encoder for reuse without reallocating its buffer.
func (e *Encoder) Reset() {
	e.pos = 0
	e.starts = e.starts[:0]
	for i := range e.buf {
		e.buf[i] = 0
	}
}

func (e *Encoder) reserve(n int) (int, error) {
	if e.pos+n > len(e.buf) {
		return 0, ErrOverflow
	}
	start := e.pos
	e.pos += n
	return start, nil
}

// AppendHeader writes the nlmsghdr. Len, Seq and Pid are placeholders;
// Finalize patches Len and the socket layer patches Seq and Pid (the
// kernel-assigned local port id, not the process id) when it sends the
// message.
func (e *Encoder) AppendHeader(msgType, flags uint16) error {
	start, err := e.reserve(unix.SizeofNlMsghdr)
	if err != nil {
		return err
	}
	byteOrder.PutUint16(e.buf[start+4:start+6], msgType)
	byteOrder.PutUint16(e.buf[start+6:start+8], flags)
	return nil
}

// AppendFixed writes a fixed-layout payload (an InterfaceInfo or
// AddressInfo) that immediately follows the nlmsghdr. Both are already
// 4-byte aligned in size, so no padding is required.
func (e *Encoder) AppendFixed(b []byte) error {
	start, err := e.reserve(len(b))
	if err != nil {
		return err
	}
	copy(e.buf[start:], b)
	return nil
}

// AppendAttribute writes a flat rtattr: length, type, value, and alignment
// padding.
func (e *Encoder) AppendAttribute(attrType uint16, value []byte) error {
	total := unix.SizeofNlAttr + len(value)
	start, err := e.reserve(attrAlign(total))
	if err != nil {
		return err
	}
	byteOrder.PutUint16(e.buf[start:start+2], uint16(total))
	byteOrder.PutUint16(e.buf[start+2:start+4], attrType)
	copy(e.buf[start+unix.SizeofNlAttr:], value)
	return nil
}

// BeginNested opens an attribute whose value is itself a sequence of
// attributes (e.g. IFLA_LINKINFO). Its length is unknown until EndNested.
func (e *Encoder) BeginNested(attrType uint16) error {
	start, err := e.reserve(unix.SizeofNlAttr)
	if err != nil {
		return err
	}
	byteOrder.PutUint16(e.buf[start+2:start+4], attrType)
	e.starts = append(e.starts, start)
	return nil
}

// EndNested closes the most recently opened nested attribute, patching in
// its aligned length and padding the buffer to the next 4-byte boundary.
func (e *Encoder) EndNested() error {
	if len(e.starts) == 0 {
		return ErrInvalidArgument
	}
	start := e.starts[len(e.starts)-1]
	e.starts = e.starts[:len(e.starts)-1]

	length := e.pos - start
	byteOrder.PutUint16(e.buf[start:start+2], uint16(length))

	if pad := attrAlign(length) - length; pad > 0 {
		if _, err := e.reserve(pad); err != nil {
			return err
		}
	}
	return nil
}

// Finalize patches the total message length into the nlmsghdr and returns
// the completed message. The encoder must have no unclosed nested
// attributes.
func (e *Encoder) Finalize() ([]byte, error) {
	if len(e.starts) != 0 {
		return nil, ErrInvalidArgument
	}
	byteOrder.PutUint32(e.buf[0:4], uint32(e.pos))
	out := make([]byte, e.pos)
	copy(out, e.buf[:e.pos])
	return out, nil
}
