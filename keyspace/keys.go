package keyspace

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/keridb/kelsdb/baser"
	"github.com/keridb/kelsdb/kelerr"
)

// sep is the namespace separator byte. It is chosen so it never collides
// with any byte used in the Base64-style prefix encoding, and sub-store
// names end with it so they can never be mistaken for a prefix (I4).
const sep = '.'

// snHexWidth is the fixed width of the hex-encoded sequence number in a
// snKey. Fixed width is mandatory: it is what makes lexicographic key order
// coincide with numeric sn order for a fixed prefix (I5).
const snHexWidth = 32

// maxSn is the exclusive upper bound on sequence numbers: 2^128.
var maxSn = new(big.Int).Lsh(big.NewInt(1), 128)

// DgKey builds the digest key dgKey(pre, dig) = pre ‖ "." ‖ dig.
func DgKey(pre, dig []byte) ([]byte, error) {
	key := bytes.Join([][]byte{pre, dig}, []byte{sep})
	if len(key) > baser.MaxKeySize {
		return nil, kelerr.New(kelerr.KeyTooLong, "", fmt.Sprintf("dgKey length %d exceeds max_key_size %d", len(key), baser.MaxKeySize), nil)
	}
	return key, nil
}

// SnKey builds the sequence-number key snKey(pre, sn) = pre ‖ "." ‖ hex32(sn),
// where hex32 is the lowercase zero-padded 32-character hex encoding of sn.
// sn must satisfy 0 <= sn < 2^128.
func SnKey(pre []byte, sn *big.Int) ([]byte, error) {
	if sn.Sign() < 0 || sn.Cmp(maxSn) >= 0 {
		return nil, fmt.Errorf("keyspace: sn %s out of range [0, 2^128)", sn.String())
	}
	hex := fmt.Sprintf("%0*x", snHexWidth, sn)
	key := bytes.Join([][]byte{pre, []byte(hex)}, []byte{sep})
	if len(key) > baser.MaxKeySize {
		return nil, kelerr.New(kelerr.KeyTooLong, "", fmt.Sprintf("snKey length %d exceeds max_key_size %d", len(key), baser.MaxKeySize), nil)
	}
	return key, nil
}

// SnKeyUint64 is a convenience wrapper around SnKey for the common case of a
// sequence number that fits in a uint64.
func SnKeyUint64(pre []byte, sn uint64) ([]byte, error) {
	return SnKey(pre, new(big.Int).SetUint64(sn))
}
