// Package keyspace implements the generic keyspace layer (§4.2): six
// value-access modes over any named sub-store of a baser.Baser environment.
//
// Grounded on original_source/src/keri/db/dbing.py's Databaser methods
// (putVal/setVal/getVal/delVal, putVals/addVal/getVals/cntVals/delVals,
// putIoVals/addIoVal/getIoVals/getIoValsLast/cntIoVals/delIoVals) and, for
// the LMDB DupSort wiring itself, on the bucket layout documented in
// other_examples' turbo-geth dbutils reference (DupSort buckets storing
// many values per key).
package keyspace

import (
	"fmt"

	"github.com/ledgerwatch/lmdb-go/lmdb"

	"github.com/keridb/kelsdb/baser"
	"github.com/keridb/kelsdb/kelerr"
)

// SubStore is a handle to one named sub-store within an environment, opened
// with a fixed duplicate-sort flag for its lifetime (the flag is immutable
// per sub-store once first opened, matching LMDB's own persistence of
// per-database flags).
type SubStore struct {
	baser   *baser.Baser
	dbi     lmdb.DBI
	name    string
	dupSort bool
}

// Open opens (creating if necessary) the named sub-store within b's
// environment, with the given duplicate-sort flag.
func Open(b *baser.Baser, name string, dupSort bool) (*SubStore, error) {
	env, err := b.Env()
	if err != nil {
		return nil, err
	}

	flags := uint(lmdb.Create)
	if dupSort {
		flags |= lmdb.DupSort
	}

	var dbi lmdb.DBI
	err = env.Update(func(txn *lmdb.Txn) error {
		var err error
		dbi, err = txn.OpenDBI(name, flags)
		return err
	})
	if err != nil {
		return nil, kelerr.New(kelerr.IoFailure, name, "open sub-store", err)
	}
	return &SubStore{baser: b, dbi: dbi, name: name, dupSort: dupSort}, nil
}

// Name returns the sub-store's name, e.g. "evts.".
func (s *SubStore) Name() string { return s.name }

func (s *SubStore) checkKey(key []byte) error {
	if len(key) > baser.MaxKeySize {
		return kelerr.New(kelerr.KeyTooLong, s.name, fmt.Sprintf("key length %d exceeds max_key_size %d", len(key), baser.MaxKeySize), nil)
	}
	return nil
}

func (s *SubStore) env() (*lmdb.Env, error) {
	return s.baser.Env()
}

func isDup(err error) bool {
	opErr, ok := err.(*lmdb.OpError)
	return ok && opErr.Errno == lmdb.KeyExist
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
