package keyspace

import (
	"bytes"

	"github.com/ledgerwatch/lmdb-go/lmdb"

	"github.com/keridb/kelsdb/kelerr"
)

// PutVals inserts each v in vs as a duplicate entry at key. A v already
// present at key is silently ignored (I2: no duplicate values). Returns
// true if the operation did not fault.
func (s *SubStore) PutVals(key []byte, vals [][]byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	err = env.Update(func(txn *lmdb.Txn) error {
		for _, v := range vals {
			if putErr := txn.Put(s.dbi, key, v, lmdb.NoDupData); putErr != nil && !isDup(putErr) {
				return putErr
			}
		}
		return nil
	})
	if err != nil {
		return false, kelerr.New(kelerr.IoFailure, s.name, "putVals", err)
	}
	return true, nil
}

// AddVal adds val as a dup at key. Before insertion the current set of
// values at key is read; if val is already present, AddVal returns false
// without writing. Returns true if val was newly added.
func (s *SubStore) AddVal(key, val []byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	added := false
	err = env.Update(func(txn *lmdb.Txn) error {
		cursor, curErr := txn.OpenCursor(s.dbi)
		if curErr != nil {
			return curErr
		}
		defer cursor.Close()

		present, scanErr := dupContains(cursor, key, val)
		if scanErr != nil {
			return scanErr
		}
		if present {
			return nil
		}
		if putErr := txn.Put(s.dbi, key, val, lmdb.NoDupData); putErr != nil {
			return putErr
		}
		added = true
		return nil
	})
	if err != nil {
		return false, kelerr.New(kelerr.IoFailure, s.name, "addVal", err)
	}
	return added, nil
}

// GetVals returns the ordered list of values at key, sorted lexicographically
// by value (LMDB's native DupSort order). Returns an empty slice (not nil
// semantics) if key is absent.
func (s *SubStore) GetVals(key []byte) ([][]byte, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	env, err := s.env()
	if err != nil {
		return nil, err
	}

	vals := [][]byte{}
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
		vals = append(vals, copyBytes(v))
		for {
			_, v, getErr = cursor.Get(nil, nil, lmdb.NextDup)
			if getErr != nil {
				if lmdb.IsNotFound(getErr) {
					break
				}
				return getErr
			}
			vals = append(vals, copyBytes(v))
		}
		return nil
	})
	if err != nil {
		return nil, kelerr.New(kelerr.IoFailure, s.name, "getVals", err)
	}
	return vals, nil
}

// CntVals returns the number of values at key, or 0 if key is absent.
func (s *SubStore) CntVals(key []byte) (int, error) {
	if err := s.checkKey(key); err != nil {
		return 0, err
	}
	env, err := s.env()
	if err != nil {
		return 0, err
	}

	var count int
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
		n, cntErr := cursor.Count()
		if cntErr != nil {
			return cntErr
		}
		count = int(n)
		return nil
	})
	if err != nil {
		return 0, kelerr.New(kelerr.IoFailure, s.name, "cntVals", err)
	}
	return count, nil
}

// DelVals deletes key and all of its values. Returns true iff key existed.
func (s *SubStore) DelVals(key []byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	existed := true
	err = env.Update(func(txn *lmdb.Txn) error {
		delErr := txn.Del(s.dbi, key, nil)
		if delErr != nil {
			if lmdb.IsNotFound(delErr) {
				existed = false
				return nil
			}
			return delErr
		}
		return nil
	})
	if err != nil {
		return false, kelerr.New(kelerr.IoFailure, s.name, "delVals", err)
	}
	return existed, nil
}

// dupContains reports whether val is already one of the duplicates at key,
// using the cursor positioned within an already-open transaction.
func dupContains(cursor *lmdb.Cursor, key, val []byte) (bool, error) {
	_, v, err := cursor.Get(key, nil, lmdb.SetKey)
	if err != nil {
		if lmdb.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if bytes.Equal(v, val) {
		return true, nil
	}
	for {
		_, v, err = cursor.Get(nil, nil, lmdb.NextDup)
		if err != nil {
			if lmdb.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		if bytes.Equal(v, val) {
			return true, nil
		}
	}
}
