// Escrow and key-event-log operations: the five insertion-ordered,
// snKey-addressed sub-stores. Iteration over stored entries in ascending
// lexicographic key order yields exact acceptance order (I3), because
// values are prefixed with a monotone ordinal by the keyspace layer.
package logdb

// PutKes writes each event digest in vals to key in arrival order, skipping
// any already present. key is normally a snKey.
func (lg *Logger) PutKes(key []byte, vals [][]byte) (bool, error) {
	return lg.kels.PutIoVals(key, vals)
}

// GetKes returns the event digests at key in insertion order.
func (lg *Logger) GetKes(key []byte) ([][]byte, error) {
	return lg.kels.GetIoVals(key)
}

// GetKesLast returns the last-inserted event digest at key.
func (lg *Logger) GetKesLast(key []byte) ([]byte, bool, error) {
	return lg.kels.GetIoValsLast(key)
}

// CntKes returns the number of event digests at key.
func (lg *Logger) CntKes(key []byte) (int, error) {
	return lg.kels.CntIoVals(key)
}

// DelKes deletes all event digests at key.
func (lg *Logger) DelKes(key []byte) (bool, error) {
	return lg.kels.DelIoVals(key)
}

// PutPses writes each partially-signed-escrow event digest in vals to key in
// arrival order.
func (lg *Logger) PutPses(key []byte, vals [][]byte) (bool, error) {
	return lg.pses.PutIoVals(key, vals)
}

// GetPses returns the partially-signed-escrow event digests at key in
// insertion order.
func (lg *Logger) GetPses(key []byte) ([][]byte, error) {
	return lg.pses.GetIoVals(key)
}

// GetPsesLast returns the last-inserted partially-signed-escrow event digest
// at key.
func (lg *Logger) GetPsesLast(key []byte) ([]byte, bool, error) {
	return lg.pses.GetIoValsLast(key)
}

// CntPses returns the number of partially-signed-escrow event digests at key.
func (lg *Logger) CntPses(key []byte) (int, error) {
	return lg.pses.CntIoVals(key)
}

// DelPses deletes all partially-signed-escrow event digests at key.
func (lg *Logger) DelPses(key []byte) (bool, error) {
	return lg.pses.DelIoVals(key)
}

// PutOoes writes each out-of-order-escrow event digest in vals to key in
// arrival order.
func (lg *Logger) PutOoes(key []byte, vals [][]byte) (bool, error) {
	return lg.ooes.PutIoVals(key, vals)
}

// GetOoes returns the out-of-order-escrow event digests at key in insertion
// order.
func (lg *Logger) GetOoes(key []byte) ([][]byte, error) {
	return lg.ooes.GetIoVals(key)
}

// GetOoesLast returns the last-inserted out-of-order-escrow event digest at
// key.
func (lg *Logger) GetOoesLast(key []byte) ([]byte, bool, error) {
	return lg.ooes.GetIoValsLast(key)
}

// CntOoes returns the number of out-of-order-escrow event digests at key.
func (lg *Logger) CntOoes(key []byte) (int, error) {
	return lg.ooes.CntIoVals(key)
}

// DelOoes deletes all out-of-order-escrow event digests at key.
func (lg *Logger) DelOoes(key []byte) (bool, error) {
	return lg.ooes.DelIoVals(key)
}

// PutDes writes each duplicitous-log event digest in vals to key in arrival
// order.
func (lg *Logger) PutDes(key []byte, vals [][]byte) (bool, error) {
	return lg.dels.PutIoVals(key, vals)
}

// GetDes returns the duplicitous-log event digests at key in insertion
// order.
func (lg *Logger) GetDes(key []byte) ([][]byte, error) {
	return lg.dels.GetIoVals(key)
}

// GetDesLast returns the last-inserted duplicitous-log event digest at key.
func (lg *Logger) GetDesLast(key []byte) ([]byte, bool, error) {
	return lg.dels.GetIoValsLast(key)
}

// CntDes returns the number of duplicitous-log event digests at key.
func (lg *Logger) CntDes(key []byte) (int, error) {
	return lg.dels.CntIoVals(key)
}

// DelDes deletes all duplicitous-log event digests at key.
func (lg *Logger) DelDes(key []byte) (bool, error) {
	return lg.dels.DelIoVals(key)
}

// PutLdes writes each likely-duplicitous-escrow event digest in vals to key
// in arrival order.
func (lg *Logger) PutLdes(key []byte, vals [][]byte) (bool, error) {
	return lg.ldes.PutIoVals(key, vals)
}

// GetLdes returns the likely-duplicitous-escrow event digests at key in
// insertion order.
func (lg *Logger) GetLdes(key []byte) ([][]byte, error) {
	return lg.ldes.GetIoVals(key)
}

// GetLdesLast returns the last-inserted likely-duplicitous-escrow event
// digest at key.
func (lg *Logger) GetLdesLast(key []byte) ([]byte, bool, error) {
	return lg.ldes.GetIoValsLast(key)
}

// CntLdes returns the number of likely-duplicitous-escrow event digests at
// key.
func (lg *Logger) CntLdes(key []byte) (int, error) {
	return lg.ldes.CntIoVals(key)
}

// DelLdes deletes all likely-duplicitous-escrow event digests at key.
func (lg *Logger) DelLdes(key []byte) (bool, error) {
	return lg.ldes.DelIoVals(key)
}
