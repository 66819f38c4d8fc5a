package keyspace

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keridb/kelsdb/baser"
	"github.com/keridb/kelsdb/kelerr"
)

func openTestSubStore(t *testing.T, name string, dupSort bool) (*baser.Baser, *SubStore) {
	t.Helper()
	b, err := baser.Open(baser.Config{Temp: true, Name: t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = b.Close()
		_ = b.Remove()
	})
	s, err := Open(b, name, dupSort)
	require.NoError(t, err)
	return b, s
}

func TestDgKey(t *testing.T) {
	key, err := DgKey([]byte("preA"), []byte("digB"))
	require.NoError(t, err)
	assert.Equal(t, []byte("preA.digB"), key)
}

func TestSnKey_FixedWidthPreservesNumericOrder(t *testing.T) {
	k1, err := SnKeyUint64([]byte("pre"), 1)
	require.NoError(t, err)
	k2, err := SnKeyUint64([]byte("pre"), 2)
	require.NoError(t, err)
	k16, err := SnKeyUint64([]byte("pre"), 16)
	require.NoError(t, err)

	assert.Len(t, k1, len("pre")+1+32)
	assert.True(t, string(k1) < string(k2))
	assert.True(t, string(k2) < string(k16))
}

func TestSnKey_RejectsOutOfRange(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err := SnKey([]byte("pre"), tooBig)
	assert.Error(t, err)

	negative := big.NewInt(-1)
	_, err = SnKey([]byte("pre"), negative)
	assert.Error(t, err)
}

func TestDgKey_KeyTooLong(t *testing.T) {
	longPre := make([]byte, baser.MaxKeySize)
	for i := range longPre {
		longPre[i] = 'a'
	}
	_, err := DgKey(longPre, []byte("d"))
	require.Error(t, err)
	assert.True(t, kelerr.IsKeyTooLong(err))
}

func TestSingleValue_PutSetGetDel(t *testing.T) {
	_, s := openTestSubStore(t, "evts.", false)

	ok, err := s.PutVal([]byte("k1"), []byte("v1"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.PutVal([]byte("k1"), []byte("v2"))
	require.NoError(t, err)
	assert.False(t, ok, "putVal must not overwrite")

	v, found, err := s.GetVal([]byte("k1"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v1"), v)

	ok, err = s.SetVal([]byte("k1"), []byte("v2"))
	require.NoError(t, err)
	assert.True(t, ok)

	v, found, err = s.GetVal([]byte("k1"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v2"), v)

	ok, err = s.DelVal([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, ok)

	_, found, err = s.GetVal([]byte("k1"))
	require.NoError(t, err)
	assert.False(t, found)

	ok, err = s.DelVal([]byte("k1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLexicographicMultiValue(t *testing.T) {
	_, s := openTestSubStore(t, "sigs.", true)
	key := []byte("k1")

	ok, err := s.PutVals(key, [][]byte{[]byte("bbb"), []byte("aaa"), []byte("bbb")})
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := s.CntVals(key)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	vals, err := s.GetVals(key)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("aaa"), []byte("bbb")}, vals)

	added, err := s.AddVal(key, []byte("aaa"))
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.AddVal(key, []byte("ccc"))
	require.NoError(t, err)
	assert.True(t, added)

	ok, err = s.DelVals(key)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err = s.CntVals(key)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestInsertionOrderedMultiValue(t *testing.T) {
	_, s := openTestSubStore(t, "kels.", true)
	key := []byte("k1")

	inserted, err := s.PutIoVals(key, [][]byte{[]byte("z"), []byte("a"), []byte("m")})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.PutIoVals(key, [][]byte{[]byte("a")}) // dup, skipped
	require.NoError(t, err)
	assert.False(t, inserted)

	vals, err := s.GetIoVals(key)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("z"), []byte("a"), []byte("m")}, vals, "arrival order must survive lexicographic byte sort of raw values")

	last, ok, err := s.GetIoValsLast(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("m"), last)

	n, err := s.CntIoVals(key)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	added, err := s.AddIoVal(key, []byte("z")) // dup, skipped
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.AddIoVal(key, []byte("q"))
	require.NoError(t, err)
	assert.True(t, added)

	last, ok, err = s.GetIoValsLast(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("q"), last)

	ok, err = s.DelIoVals(key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DelIoVals(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNamespaceDisjointness(t *testing.T) {
	b, err := baser.Open(baser.Config{Temp: true, Name: t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = b.Close()
		_ = b.Remove()
	})

	evts, err := Open(b, "evts.", false)
	require.NoError(t, err)
	dtss, err := Open(b, "dtss.", false)
	require.NoError(t, err)

	key, err := DgKey([]byte("pre"), []byte("dig"))
	require.NoError(t, err)

	_, err = evts.PutVal(key, []byte("event-bytes"))
	require.NoError(t, err)

	_, found, err := dtss.GetVal(key)
	require.NoError(t, err)
	assert.False(t, found, "writing to evts. must not be visible from dtss.")
}

func TestIoPrefixFormat(t *testing.T) {
	p := ioPrefix(0)
	assert.Equal(t, "000000.", string(p))
	p = ioPrefix(255)
	assert.Equal(t, fmt.Sprintf("%06x.", 255), string(p))
}
