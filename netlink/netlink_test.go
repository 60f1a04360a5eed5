// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/hostnet/linknl/netio"
)

const (
	testLinkName     = "nltest0"
	testLinkPeerName = "nltest1"
	testBridgeName   = "brtest0"
)

// requireLiveKernel skips tests that need CAP_NET_ADMIN and a real
// AF_NETLINK socket unless the caller opted in, the way integration tests
// elsewhere in this codebase are gated.
func requireLiveKernel(t *testing.T) {
	t.Helper()
	if os.Getenv("LINKCTL_LIVE_TESTS") == "" {
		t.Skip("set LINKCTL_LIVE_TESTS=1 to run tests against a real netlink socket")
	}
}

func newTestLinkOps(t *testing.T) *LinkOps {
	t.Helper()
	client, err := NewRtnetlinkClient()
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewLinkOps(client, &netio.NetIO{})
}

func TestEcho(t *testing.T) {
	requireLiveKernel(t)

	client, err := NewRtnetlinkClient()
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, Echo(context.Background(), client, "this is a test"))
}

func TestCreateDeleteVeth(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateVeth(ctx, testLinkName, testLinkPeerName))
	require.NoError(t, ops.Delete(ctx, testLinkName))

	_, err := net.InterfaceByName(testLinkName)
	require.Error(t, err, "veth should have been removed along with its peer")
}

func TestCreateDeleteBridge(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateBridge(ctx, testBridgeName))
	require.NoError(t, ops.Delete(ctx, testBridgeName))

	_, err := net.InterfaceByName(testBridgeName)
	require.Error(t, err)
}

func TestUpDownRename(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateVeth(ctx, testLinkName, testLinkPeerName))
	defer ops.Delete(ctx, testLinkName) //nolint:errcheck // best-effort cleanup

	require.NoError(t, ops.Up(ctx, testLinkName))
	up, err := ops.IsUp(ctx, testLinkName)
	require.NoError(t, err)
	require.True(t, up)

	require.NoError(t, ops.Down(ctx, testLinkName))
	up, err = ops.IsUp(ctx, testLinkName)
	require.NoError(t, err)
	require.False(t, up)

	renamed := testLinkName + "x"
	require.NoError(t, ops.Rename(ctx, testLinkName, renamed))
	require.NoError(t, ops.Delete(ctx, renamed))
}

func TestAddInterfaceToBridge(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateBridge(ctx, testBridgeName))
	defer ops.Delete(ctx, testBridgeName) //nolint:errcheck

	require.NoError(t, ops.CreateVeth(ctx, testLinkName, testLinkPeerName))
	defer ops.Delete(ctx, testLinkName) //nolint:errcheck

	require.NoError(t, ops.AddInterfaceToBridge(ctx, testLinkName, testBridgeName))
	require.NoError(t, ops.RemoveInterfaceFromBridge(ctx, testLinkName))
}

func TestAddDeleteIPv4(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateVeth(ctx, testLinkName, testLinkPeerName))
	defer ops.Delete(ctx, testLinkName) //nolint:errcheck

	ip := net.ParseIP("192.0.2.10")
	_, ipNet, err := net.ParseCIDR("192.0.2.10/24")
	require.NoError(t, err)

	require.NoError(t, ops.AddIPv4(ctx, testLinkName, ip, ipNet))
	require.NoError(t, ops.DeleteIPv4(ctx, testLinkName, ip, ipNet))
}

func TestSetMAC(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateVeth(ctx, testLinkName, testLinkPeerName))
	defer ops.Delete(ctx, testLinkName) //nolint:errcheck

	mac, err := net.ParseMAC("02:00:00:00:00:01")
	require.NoError(t, err)
	require.NoError(t, ops.SetMAC(ctx, testLinkName, mac))

	_, attrs, err := ops.GetInfo(ctx, testLinkName)
	require.NoError(t, err)
	require.Equal(t, []byte(mac), attrs[unix.IFLA_ADDRESS])
}

func TestGetInfoAndNameOf(t *testing.T) {
	requireLiveKernel(t)
	ops := newTestLinkOps(t)
	ctx := context.Background()

	require.NoError(t, ops.CreateBridge(ctx, testBridgeName))
	defer ops.Delete(ctx, testBridgeName) //nolint:errcheck

	info, attrs, err := ops.GetInfo(ctx, testBridgeName)
	require.NoError(t, err)

	name, err := ops.NameOf(ctx, int(info.Index))
	require.NoError(t, err)
	require.Equal(t, testBridgeName, name)

	attrName, ok := attrs.String(unix.IFLA_IFNAME)
	require.True(t, ok)
	require.Equal(t, testBridgeName, attrName)
}
