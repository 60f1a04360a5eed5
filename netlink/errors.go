// Copyright Microsoft Corp.
// All rights reserved.

package netlink

import (
	"errors"
	"fmt"
	"syscall"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors returned by the netlink package. Callers compare against
// these with errors.Is rather than matching error strings.
var (
	ErrInvalidArgument  = errors.New("netlink: invalid argument")
	ErrResolveFailed    = errors.New("netlink: failed to resolve interface")
	ErrOverflow         = errors.New("netlink: message would exceed encoder capacity")
	ErrSocketOpenFailed = errors.New("netlink: failed to open socket")
	ErrOptionSetFailed  = errors.New("netlink: failed to set socket option")
	ErrBindFailed       = errors.New("netlink: failed to bind socket")
	ErrSendFailed       = errors.New("netlink: failed to send request")
	ErrRecvFailed       = errors.New("netlink: failed to receive reply")
	ErrProtocolError    = errors.New("netlink: malformed reply from kernel")
	ErrUnexpectedReply  = errors.New("netlink: reply did not match the request")
	ErrAllocationFailed = errors.New("netlink: allocation failed")
)

// wrappedError pairs a sentinel with the underlying cause pkg/errors.Wrap
// captured, so callers get both errors.Is(err, sentinel) and the real
// syscall/unix error in the message.
type wrappedError struct {
	sentinel error
	wrapped  error
}

func (e *wrappedError) Error() string { return e.wrapped.Error() }

// Unwrap exposes the sentinel, not cause, so errors.Is(err, sentinel)
// matches regardless of which syscall produced cause.
func (e *wrappedError) Unwrap() error { return e.sentinel }

func wrapError(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &wrappedError{sentinel: sentinel, wrapped: pkgerrors.Wrap(cause, sentinel.Error())}
}

func newSocketOpenError(cause error) error { return wrapError(ErrSocketOpenFailed, cause) }
func newOptionSetError(cause error) error  { return wrapError(ErrOptionSetFailed, cause) }
func newBindError(cause error) error       { return wrapError(ErrBindFailed, cause) }
func newSendError(cause error) error       { return wrapError(ErrSendFailed, cause) }
func newRecvError(cause error) error       { return wrapError(ErrRecvFailed, cause) }
func newProtocolError(cause error) error   { return wrapError(ErrProtocolError, cause) }

// KernelRefusedError reports a negative-errno NLMSG_ERROR reply. Errno
// carries the positive syscall.Errno regardless of how it was encoded on
// the wire.
type KernelRefusedError struct {
	Errno syscall.Errno
}

func (e KernelRefusedError) Error() string {
	return fmt.Sprintf("netlink: kernel refused request: %v", e.Errno)
}

// Is lets errors.Is(err, KernelRefusedError{}) match any KernelRefusedError
// regardless of its Errno value.
func (e KernelRefusedError) Is(target error) bool {
	_, ok := target.(KernelRefusedError)
	return ok
}
