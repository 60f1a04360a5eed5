// Copyright Microsoft Corp.
// All rights reserved.

//go:build linux
// +build linux

package netlink

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/hostnet/linknl/log"
)

// sendBufferBytes matches the socket buffer size the C lineage of this
// library requested via SO_SNDBUF before sending its first message.
const sendBufferBytes = 32 * 1024

// netlinkSocket owns one AF_NETLINK/NETLINK_ROUTE datagram socket. It is
// not safe for concurrent use; callers serialize request/response pairs
// through RtnetlinkClient, which holds the mutex for the duration of one
// exchange.
//
// localPid is the port id the kernel assigned this socket on bind. It is
// used only for bookkeeping: stamping outgoing request headers and
// matching them against replies. The send destination is always the
// kernel (nl_pid 0) — sending to localPid would unicast the request back
// to this socket instead of the rtnetlink handler.
type netlinkSocket struct {
	fd       int
	localPid uint32
	seq      uint32
	sync.Mutex
}

// kernelAddr is the Sendto destination for every request: nl_pid 0 means
// "the kernel", never a specific socket. It must never be mutated to hold
// a non-zero pid.
var kernelAddr = &unix.SockaddrNetlink{Family: unix.AF_NETLINK}

// newNetlinkSocket opens and binds a netlink socket. The kernel assigns the
// port id on bind; it is read back via getsockname and kept only for
// header-stamping/reply correlation, never as a send destination.
func newNetlinkSocket() (*netlinkSocket, error) {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_RAW, unix.NETLINK_ROUTE)
	if err != nil {
		log.Std().Errorf("[netlink] socket() failed: %v", err)
		return nil, newSocketOpenError(err)
	}

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_SNDBUF, sendBufferBytes); err != nil {
		unix.Close(fd)
		log.Std().Errorf("[netlink] setsockopt(SO_SNDBUF) failed: %v", err)
		return nil, newOptionSetError(err)
	}

	bindAddr := &unix.SockaddrNetlink{Family: unix.AF_NETLINK}
	if err := unix.Bind(fd, bindAddr); err != nil {
		unix.Close(fd)
		log.Std().Errorf("[netlink] bind() failed: %v", err)
		return nil, newBindError(err)
	}

	s := &netlinkSocket{fd: fd}

	sockaddr, err := unix.Getsockname(fd)
	if err != nil {
		unix.Close(fd)
		return nil, newBindError(err)
	}
	if nl, ok := sockaddr.(*unix.SockaddrNetlink); ok {
		s.localPid = nl.Pid
	}

	log.Std().Debugf("[netlink] socket opened, pid=%d", s.localPid)
	return s, nil
}

// Close releases the socket.
func (s *netlinkSocket) Close() error {
	err := unix.Close(s.fd)
	log.Std().Debugf("[netlink] socket closed, err=%v", err)
	return err
}

// send stamps msg's sequence number and local port id, then writes it to
// the kernel (never to localPid, which would unicast it back to this
// socket).
func (s *netlinkSocket) send(msg []byte) (uint32, error) {
	seq := atomic.AddUint32(&s.seq, 1)
	byteOrder.PutUint32(msg[8:12], seq)
	byteOrder.PutUint32(msg[12:16], s.localPid)

	if err := unix.Sendto(s.fd, msg, 0, kernelAddr); err != nil {
		log.Std().Errorf("[netlink] sendto() failed: %v", err)
		return 0, newSendError(err)
	}
	return seq, nil
}

// sendRaw writes msg without touching its sequence number or pid, for
// callers that have already stamped both (e.g. a retried request).
func (s *netlinkSocket) sendRaw(msg []byte) error {
	if err := unix.Sendto(s.fd, msg, 0, kernelAddr); err != nil {
		log.Std().Errorf("[netlink] sendto() failed: %v", err)
		return newSendError(err)
	}
	return nil
}

// recv reads one datagram of pending netlink messages, retrying on EINTR.
// It rejects datagrams not sent by the kernel (nl_pid 0): a reply from any
// other source address is not a genuine rtnetlink response.
func (s *netlinkSocket) recv() ([]byte, error) {
	buf := make([]byte, unix.Getpagesize())
	for {
		n, from, err := unix.Recvfrom(s.fd, buf, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			log.Std().Errorf("[netlink] recvfrom() failed: %v", err)
			return nil, newRecvError(err)
		}
		if n < unix.NLMSG_HDRLEN {
			return nil, newProtocolError(fmt.Errorf("short read: %d bytes", n))
		}
		nl, ok := from.(*unix.SockaddrNetlink)
		if !ok || nl.Pid != 0 {
			log.Std().Debugf("[netlink] dropping datagram not from the kernel, from=%#v", from)
			continue
		}
		return buf[:n], nil
	}
}
