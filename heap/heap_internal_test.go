// SPDX-License-Identifier: MIT

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcontainers/capability"
)

func TestVerify_DetectsCorruption(t *testing.T) {
	h, err := New(4, Min, capability.Ordered[int](), capability.Ordered[int]())
	require.NoError(t, err)
	require.NoError(t, h.Verify())

	h.Insert(1, 1)
	h.Insert(2, 2)
	h.Insert(3, 3)
	require.NoError(t, h.Verify())

	// force a child above its parent
	h.entries[2].Key = -5
	require.ErrorIs(t, h.Verify(), ErrHeapOrder)
}

func TestGrow_FromZeroCapacity(t *testing.T) {
	h, err := New(1, Max, capability.Ordered[int](), capability.Ordered[int]())
	require.NoError(t, err)

	h.Destroy()
	require.Zero(t, h.Cap())

	h.Insert(7, 7)
	require.Equal(t, 1, h.Cap())
	h.Insert(8, 8)
	require.Equal(t, 2, h.Cap())
	require.NoError(t, h.Verify())
}

func TestChildPositions(t *testing.T) {
	require.Equal(t, 1, child(0, 0))
	require.Equal(t, 2, child(0, 1))
	require.Equal(t, 0, parent(2))
	require.Equal(t, 2, parent(5))
}
