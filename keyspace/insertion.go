package keyspace

import (
	"fmt"

	"github.com/ledgerwatch/lmdb-go/lmdb"

	"github.com/keridb/kelsdb/kelerr"
)

// ioPrefixLen is the fixed 7-byte ordinal prefix: six lowercase hex digits
// plus the separating '.'.
const ioPrefixLen = 7

// maxIoVals is the hard limit on distinct duplicates per key for
// insertion-ordered sub-stores: 2^24 - 1.
const maxIoVals = 1<<24 - 1

func ioPrefix(ordinal int) []byte {
	return []byte(fmt.Sprintf("%06x.", ordinal))
}

// ioScan positions cursor at key (cursor.Get(key, nil, lmdb.SetKey)), walks
// all of its duplicates, and returns the current count and the set of
// stripped values, for duplicate detection ahead of insertion.
func ioScan(cursor *lmdb.Cursor, key []byte) (count int, stripped map[string]struct{}, err error) {
	stripped = make(map[string]struct{})
	_, v, getErr := cursor.Get(key, nil, lmdb.SetKey)
	if getErr != nil {
		if lmdb.IsNotFound(getErr) {
			return 0, stripped, nil
		}
		return 0, nil, getErr
	}
	count = 1
	stripped[string(v[ioPrefixLen:])] = struct{}{}
	for {
		_, v, getErr = cursor.Get(nil, nil, lmdb.NextDup)
		if getErr != nil {
			if lmdb.IsNotFound(getErr) {
				break
			}
			return 0, nil, getErr
		}
		count++
		stripped[string(v[ioPrefixLen:])] = struct{}{}
	}
	return count, stripped, nil
}

// PutIoVals inserts each v in vs at key in arrival order, skipping any v
// (compared stripped of any ordinal prefix) already present. Returns true if
// at least one v was inserted.
func (s *SubStore) PutIoVals(key []byte, vals [][]byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	inserted := false
	err = env.Update(func(txn *lmdb.Txn) error {
		cursor, curErr := txn.OpenCursor(s.dbi)
		if curErr != nil {
			return curErr
		}
		defer cursor.Close()

		count, seen, scanErr := ioScan(cursor, key)
		if scanErr != nil {
			return scanErr
		}

		for _, v := range vals {
			if _, dup := seen[string(v)]; dup {
				continue
			}
			if count >= maxIoVals {
				return kelerr.New(kelerr.CapacityExceeded, s.name, fmt.Sprintf("key would exceed %d duplicates", maxIoVals), nil)
			}
			entry := append(ioPrefix(count), v...)
			if putErr := txn.Put(s.dbi, key, entry, lmdb.NoDupData); putErr != nil {
				return putErr
			}
			seen[string(v)] = struct{}{}
			count++
			inserted = true
		}
		return nil
	})
	if err != nil {
		if kerr, ok := err.(*kelerr.Error); ok {
			return false, kerr
		}
		return false, kelerr.New(kelerr.IoFailure, s.name, "putIoVals", err)
	}
	return inserted, nil
}

// AddIoVal is the single-value variant of PutIoVals. Returns true iff val
// was newly inserted.
func (s *SubStore) AddIoVal(key, val []byte) (bool, error) {
	inserted, err := s.PutIoVals(key, [][]byte{val})
	return inserted, err
}

// GetIoVals returns the values at key with their 7-byte ordinal prefix
// stripped, in insertion order.
func (s *SubStore) GetIoVals(key []byte) ([][]byte, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	env, err := s.env()
	if err != nil {
		return nil, err
	}

	var vals [][]byte
	err = env.View(func(txn *lmdb.Txn) error {
		cursor, curErr := txn.OpenCursor(s.dbi)
		if curErr != nil {
			return curErr
		}
		defer cursor.Close()

		_, v, getErr := cursor.Get(key, nil, lmdb.SetKey)
		if getErr != nil {
			if lmdb.IsNotFound(getErr) {
				return nil
			}
			return getErr
		}
		vals = append(vals, copyBytes(v[ioPrefixLen:]))
		for {
			_, v, getErr = cursor.Get(nil, nil, lmdb.NextDup)
			if getErr != nil {
				if lmdb.IsNotFound(getErr) {
					break
				}
				return getErr
			}
			vals = append(vals, copyBytes(v[ioPrefixLen:]))
		}
		return nil
	})
	if err != nil {
		return nil, kelerr.New(kelerr.IoFailure, s.name, "getIoVals", err)
	}
	return vals, nil
}

// GetIoValsLast returns the last-inserted stripped value at key. ok is false
// if key is absent.
func (s *SubStore) GetIoValsLast(key []byte) (val []byte, ok bool, err error) {
	if err := s.checkKey(key); err != nil {
		return nil, false, err
	}
	env, err := s.env()
	if err != nil {
		return nil, false, err
	}

	err = env.View(func(txn *lmdb.Txn) error {
		cursor, curErr := txn.OpenCursor(s.dbi)
		if curErr != nil {
			return curErr
		}
		defer cursor.Close()

		_, _, getErr := cursor.Get(key, nil, lmdb.SetKey)
		if getErr != nil {
			if lmdb.IsNotFound(getErr) {
				return nil
			}
			return getErr
		}
		_, v, getErr := cursor.Get(nil, nil, lmdb.LastDup)
		if getErr != nil {
			return getErr
		}
		val = copyBytes(v[ioPrefixLen:])
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, kelerr.New(kelerr.IoFailure, s.name, "getIoValsLast", err)
	}
	return val, ok, nil
}

// CntIoVals returns the count of duplicates at key.
func (s *SubStore) CntIoVals(key []byte) (int, error) {
	return s.CntVals(key)
}

// DelIoVals deletes key and all of its duplicates. Returns true iff key
// existed.
func (s *SubStore) DelIoVals(key []byte) (bool, error) {
	return s.DelVals(key)
}
