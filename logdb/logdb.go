// Package logdb implements the schema layer (§4.3): the ten named sub-stores
// of the Key Event Log, each bound to the keyspace-layer primitive that
// matches its duplicate semantics.
//
// Grounded on original_source/src/keri/db/dbing.py's Logger class, which
// does exactly this and nothing more: "The schema layer's only independent
// responsibility is to pick the right primitive; it adds no validation or
// parsing."
package logdb

import (
	"github.com/keridb/kelsdb/baser"
	"github.com/keridb/kelsdb/keyspace"
)

// Sub-store names. Each ends with "." so no sub-store name can collide with
// a Base64-style identifier prefix (I4).
const (
	subEvts = "evts."
	subDtss = "dtss."
	subSigs = "sigs."
	subRcts = "rcts."
	subUres = "ures."
	subKels = "kels."
	subPses = "pses."
	subOoes = "ooes."
	subDels = "dels."
	subLdes = "ldes."
)

// Logger holds the ten sub-stores of a Key Event Log over one environment.
type Logger struct {
	Baser *baser.Baser

	evts *keyspace.SubStore // single-value: serialized event bytes
	dtss *keyspace.SubStore // single-value: first-seen timestamp
	sigs *keyspace.SubStore // lexicographic multi-value: signatures
	rcts *keyspace.SubStore // lexicographic multi-value: receipt couplets
	ures *keyspace.SubStore // single-value: unverified receipt couplet
	kels *keyspace.SubStore // insertion-ordered multi-value: key event log
	pses *keyspace.SubStore // insertion-ordered multi-value: partially-signed escrow
	ooes *keyspace.SubStore // insertion-ordered multi-value: out-of-order escrow
	dels *keyspace.SubStore // insertion-ordered multi-value: duplicitous log
	ldes *keyspace.SubStore // insertion-ordered multi-value: likely-duplicitous escrow
}

// Open opens an environment per cfg and, on every open, (re)opens the ten
// named sub-stores with their duplicate-sort flag as documented in §3.3.
func Open(cfg baser.Config) (*Logger, error) {
	b, err := baser.Open(cfg)
	if err != nil {
		return nil, err
	}

	lg := &Logger{Baser: b}
	subs := []struct {
		dest    **keyspace.SubStore
		name    string
		dupSort bool
	}{
		{&lg.evts, subEvts, false},
		{&lg.dtss, subDtss, false},
		{&lg.sigs, subSigs, true},
		{&lg.rcts, subRcts, true},
		{&lg.ures, subUres, false},
		{&lg.kels, subKels, true},
		{&lg.pses, subPses, true},
		{&lg.ooes, subOoes, true},
		{&lg.dels, subDels, true},
		{&lg.ldes, subLdes, true},
	}
	for _, sub := range subs {
		store, openErr := keyspace.Open(b, sub.name, sub.dupSort)
		if openErr != nil {
			_ = b.Close()
			return nil, openErr
		}
		*sub.dest = store
	}
	return lg, nil
}

// Close closes the underlying environment. Idempotent.
func (lg *Logger) Close() error {
	return lg.Baser.Close()
}

// DgKey builds the digest key used by evts., dtss., sigs., rcts. and ures.
func DgKey(pre, dig []byte) ([]byte, error) { return keyspace.DgKey(pre, dig) }

// SnKeyUint64 builds the sequence-number key used by kels., pses., ooes.,
// dels. and ldes., for sequence numbers that fit in a uint64.
func SnKeyUint64(pre []byte, sn uint64) ([]byte, error) { return keyspace.SnKeyUint64(pre, sn) }
