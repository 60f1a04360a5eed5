// Copyright 2017 Microsoft. All rights reserved.
// MIT License

//go:build linux
// +build linux

package netlink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hostnet/linknl/netio"
)

func TestLinkOpsWrapsUnresolvableInterface(t *testing.T) {
	ops := NewLinkOps(nil, netio.NewMockNetIO(true, 1))

	err := ops.Delete(context.Background(), "does-not-exist")
	require.True(t, errors.Is(err, ErrResolveFailed))
}
