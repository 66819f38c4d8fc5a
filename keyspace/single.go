package keyspace

import (
	"github.com/ledgerwatch/lmdb-go/lmdb"

	"github.com/keridb/kelsdb/kelerr"
)

// PutVal inserts (key, val) iff key has no value. Returns true on insert,
// false if key already holds a value (AlreadyPresent, a soft condition).
func (s *SubStore) PutVal(key, val []byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	inserted := true
	err = env.Update(func(txn *lmdb.Txn) error {
		putErr := txn.Put(s.dbi, key, val, lmdb.NoOverwrite)
		if putErr != nil {
			if isDup(putErr) {
				inserted = false
				return nil
			}
			return putErr
		}
		return nil
	})
	if err != nil {
		return false, kelerr.New(kelerr.IoFailure, s.name, "putVal", err)
	}
	return inserted, nil
}

// SetVal inserts or overwrites (key, val). Always returns true on success.
func (s *SubStore) SetVal(key, val []byte) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	env, err := s.env()
	if err != nil {
		return false, err
	}

	err = env.Update(func(txn *lmdb.Txn) error {
		return txn.Put(s.dbi, key, val, 0)
	})
	if err != nil {
		return false, kelerr.New(kelerr.IoFailure, s.name, "setVal", err)
	}
	return true, nil
}

// GetVal returns the value at key. ok is false if key is absent (a soft
// condition, never a raised error).
func (s *SubStore) GetVal(key []byte) (val []byte, ok bool, err error) {
	if err := s.checkKey(key); err != nil {
		return nil, false, err
	}
	env, err := s.env()
	if err != nil {
		return nil, false, err
	}

	err = env.View(func(txn *lmdb.Txn) error {
		v, getErr := txn.Get(s.dbi, key)
		if getErr != nil {
			if lmdb.IsNotFound(getErr) {
				return nil
			}
			return getErr
		}
		val = copyBytes(v)
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, kelerr.New(kelerr.IoFailure, s.name, "getVal", err)
	}
	return val, ok, nil
}

// DelVal deletes key. Returns true iff key existed; deletion is idempotent
// on an absent key (returns false, no error).
func (s *SubStore) DelVal(key []byte) (bool, error) {
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
		return false, kelerr.New(kelerr.IoFailure, s.name, "delVal", err)
	}
	return existed, nil
}
