package keyspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keridb/kelsdb/internal/testutil"
)

// TestSnKey_MonotonicClockOrdering drives a long run of sn values off
// testutil.SeqClock, the way a live Key Event Log assigns each new event the
// next sn in sequence, and checks that SnKey's fixed-width hex encoding keeps
// lexicographic and numeric order in step across several hex-digit-width
// boundaries (15->16, 255->256, 4095->4096).
func TestSnKey_MonotonicClockOrdering(t *testing.T) {
	clock := testutil.NewSeqClock()
	const n = 4100

	var keys [][]byte
	for i := 0; i < n; i++ {
		sn := clock.Next()
		key, err := SnKeyUint64([]byte("pre"), sn)
		require.NoError(t, err)
		keys = append(keys, key)
	}
	require.Equal(t, uint64(n), clock.Current())

	for i := 1; i < len(keys); i++ {
		assert.True(t, string(keys[i-1]) < string(keys[i]),
			"key for sn=%d must sort before key for sn=%d", i, i+1)
	}
}

// TestKels_InsertionOrderAcrossClockDrivenRun feeds a clock-driven run of sn
// values into kels., then replays the clock from 0 to generate the lookup
// keys in the same order they were written, confirming the insertion-ordered
// sub-store returns each sn's single digest under the matching clock tick.
func TestKels_InsertionOrderAcrossClockDrivenRun(t *testing.T) {
	_, kels := openTestSubStore(t, "kels.", true)
	clock := testutil.NewSeqClock()
	const n = 20

	for i := 0; i < n; i++ {
		sn := clock.Next()
		key, err := SnKeyUint64([]byte("pre"), sn)
		require.NoError(t, err)
		dig := []byte{byte(sn)}
		inserted, err := kels.AddIoVal(key, dig)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	clock.Reset()
	for i := 0; i < n; i++ {
		sn := clock.Next()
		key, err := SnKeyUint64([]byte("pre"), sn)
		require.NoError(t, err)
		vals, err := kels.GetIoVals(key)
		require.NoError(t, err)
		require.Len(t, vals, 1)
		assert.Equal(t, byte(sn), vals[0][0])
	}
}
