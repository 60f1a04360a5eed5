// Copyright Microsoft Corp.
// All rights reserved.

//go:build linux
// +build linux

package netlink

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorMockNetlink is the sentinel MockNetlink wraps its configured error
// string in, so tests can assert on it with errors.Is.
var ErrorMockNetlink = errors.New("mock netlink error")

func newErrorMockNetlink(errStr string) error {
	return fmt.Errorf("%w: %s", ErrorMockNetlink, errStr)
}

// MockNetlink is a NetlinkInterface stand-in for callers that don't want
// to touch a real kernel socket.
type MockNetlink struct {
	returnError bool
	errorString string
}

// NewMockNetlink creates a mock that fails every call with errorString
// when returnError is true, and otherwise succeeds.
func NewMockNetlink(returnError bool, errorString string) *MockNetlink {
	return &MockNetlink{returnError: returnError, errorString: errorString}
}

func (f *MockNetlink) error() error {
	if f.returnError {
		return newErrorMockNetlink(f.errorString)
	}
	return nil
}

func (f *MockNetlink) CreateVeth(context.Context, string, string) error { return f.error() }
func (f *MockNetlink) CreateBridge(context.Context, string) error      { return f.error() }
func (f *MockNetlink) Delete(context.Context, string) error            { return f.error() }

func (f *MockNetlink) SetFlags(context.Context, string, uint32, uint32) error { return f.error() }
func (f *MockNetlink) Up(context.Context, string) error                      { return f.error() }
func (f *MockNetlink) Down(context.Context, string) error                    { return f.error() }

func (f *MockNetlink) IsUp(context.Context, string) (bool, error) {
	return false, f.error()
}

func (f *MockNetlink) SetAttribute(context.Context, string, uint16, []byte) error {
	return f.error()
}

func (f *MockNetlink) SetMAC(context.Context, string, net.HardwareAddr) error {
	return f.error()
}

func (f *MockNetlink) Rename(context.Context, string, string) error    { return f.error() }
func (f *MockNetlink) SetMaster(context.Context, string, string) error { return f.error() }

func (f *MockNetlink) AddInterfaceToBridge(context.Context, string, string) error {
	return f.error()
}

func (f *MockNetlink) RemoveInterfaceFromBridge(context.Context, string) error {
	return f.error()
}

func (f *MockNetlink) MoveToNamespace(context.Context, string, int) error {
	return f.error()
}

func (f *MockNetlink) GetInfo(context.Context, string) (InterfaceInfo, AttributeTable, error) {
	return InterfaceInfo{}, nil, f.error()
}

func (f *MockNetlink) NameOf(context.Context, int) (string, error) {
	return "", f.error()
}

func (f *MockNetlink) AddIPv4(context.Context, string, net.IP, *net.IPNet) error {
	return f.error()
}

func (f *MockNetlink) DeleteIPv4(context.Context, string, net.IP, *net.IPNet) error {
	return f.error()
}
