// Copyright (c) linknl authors.
// MIT License

package bytebuffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendGrowsPastInitialCapacity(t *testing.T) {
	b := NewCap(4)

	require.NoError(t, b.Append([]byte("hello")))
	require.NoError(t, b.Append([]byte(" world")))

	require.True(t, bytes.Equal(b.Bytes(), []byte("hello world")))
	require.Equal(t, 11, b.Len())
}

func TestResetKeepsCapacity(t *testing.T) {
	b := NewCap(64)
	require.NoError(t, b.Append([]byte("payload")))

	b.Reset()

	require.Equal(t, 0, b.Len())
	require.NoError(t, b.Append([]byte("next")))
	require.True(t, bytes.Equal(b.Bytes(), []byte("next")))
}
