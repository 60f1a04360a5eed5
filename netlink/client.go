// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/hostnet/linknl/internal/bytebuffer"
	"github.com/hostnet/linknl/log"
)

// rtnetlinkMessage is one decoded reply: its header, its raw payload (the
// ifinfomsg or ifaddrmsg header followed by its attributes), and its
// attribute table.
type rtnetlinkMessage struct {
	Header unix.NlMsghdr
	Body   []byte
	Attrs  AttributeTable
}

// RtnetlinkClient issues synchronous rtnetlink requests over a single
// connection. It owns the connection for as long as the client is open;
// per spec.md's concurrency model callers are expected to open one client
// per operation rather than share it across goroutines, and the embedded
// mutex only guards against accidental reuse.
type RtnetlinkClient struct {
	sock *netlinkSocket
	mu   sync.Mutex
}

// NewRtnetlinkClient opens a fresh netlink connection.
func NewRtnetlinkClient() (*RtnetlinkClient, error) {
	sock, err := newNetlinkSocket()
	if err != nil {
		return nil, err
	}
	return &RtnetlinkClient{sock: sock}, nil
}

// Close releases the underlying connection.
func (c *RtnetlinkClient) Close() error {
	return c.sock.Close()
}

// SimpleRequest sends a request built by build and waits for a single ACK
// (or NLMSG_ERROR) reply. It is the synchronous single-reply path used by
// every LinkOps mutation.
func (c *RtnetlinkClient) SimpleRequest(ctx context.Context, build func(*Encoder) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.encode(build)
	if err != nil {
		return err
	}

	seq, err := c.sock.send(msg)
	if err != nil {
		return err
	}

	for {
		raw, err := c.recvWithContext(ctx)
		if err != nil {
			return err
		}

		nlMsgs, err := syscall.ParseNetlinkMessage(raw)
		if err != nil {
			return newProtocolError(err)
		}

		for _, nlMsg := range nlMsgs {
			if nlMsg.Header.Seq != seq || nlMsg.Header.Pid != c.sock.localPid {
				log.Std().Debugf("[netlink] ignoring unmatched reply seq=%d pid=%d", nlMsg.Header.Seq, nlMsg.Header.Pid)
				continue
			}
			if nlMsg.Header.Type != unix.NLMSG_ERROR {
				continue
			}
			return errnoToError(nlMsg.Data)
		}
	}
}

// MultipartRequest sends a dump request and accumulates every reply until
// NLMSG_DONE or a message without NLM_F_MULTI, returning each decoded
// message body and attribute table.
func (c *RtnetlinkClient) MultipartRequest(ctx context.Context, build func(*Encoder) error) ([]rtnetlinkMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.encode(build)
	if err != nil {
		return nil, err
	}

	seq, err := c.sock.send(msg)
	if err != nil {
		return nil, err
	}

	var out []rtnetlinkMessage
	acc := bytebuffer.New()

	for {
		raw, err := c.recvWithContext(ctx)
		if err != nil {
			return nil, err
		}
		if err := acc.Append(raw); err != nil {
			return nil, ErrAllocationFailed
		}

		nlMsgs, err := syscall.ParseNetlinkMessage(append([]byte(nil), acc.Bytes()...))
		if err != nil {
			return nil, newProtocolError(err)
		}
		acc.Reset()

		done := false
		for _, nlMsg := range nlMsgs {
			if nlMsg.Header.Seq != seq || nlMsg.Header.Pid != c.sock.localPid {
				continue
			}

			if nlMsg.Header.Type == unix.NLMSG_ERROR {
				return nil, errnoToError(nlMsg.Data)
			}
			if nlMsg.Header.Type == unix.NLMSG_DONE {
				done = true
				break
			}

			attrs, _ := syscall.ParseNetlinkRouteAttr(&nlMsg)
			table := make(AttributeTable, len(attrs))
			for _, a := range attrs {
				table[a.Attr.Type] = a.Value
			}

			out = append(out, rtnetlinkMessage{
				Header: unix.NlMsghdr(nlMsg.Header),
				Body:   nlMsg.Data,
				Attrs:  table,
			})

			// A dump reply stops being multipart once NLMSG_DONE arrives
			// or NLM_F_MULTI is no longer set, whichever comes first.
			if nlMsg.Header.Flags&unix.NLM_F_MULTI == 0 {
				done = true
			}
		}
		if done {
			break
		}
	}

	return out, nil
}

func (c *RtnetlinkClient) encode(build func(*Encoder) error) ([]byte, error) {
	enc := NewEncoder(defaultEncoderCapacity)
	if err := build(enc); err != nil {
		return nil, err
	}
	return enc.Finalize()
}

// recvWithContext reads one datagram, honoring ctx cancellation. The
// socket read itself cannot be interrupted by a context directly, so a
// cancellation races the read in a helper goroutine; the read is leaked
// until it returns (the socket is closed, which unblocks it) if ctx fires
// first.
func (c *RtnetlinkClient) recvWithContext(ctx context.Context) ([]byte, error) {
	type result struct {
		buf []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		buf, err := c.sock.recv()
		ch <- result{buf, err}
	}()

	select {
	case r := <-ch:
		return r.buf, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// errnoToError interprets an NLMSG_ERROR payload's leading int32 errno.
func errnoToError(data []byte) error {
	if len(data) < 4 {
		return ErrProtocolError
	}
	errCode := int32(byteOrder.Uint32(data[0:4]))
	if errCode == 0 {
		return nil
	}
	return KernelRefusedError{Errno: syscall.Errno(-errCode)}
}
