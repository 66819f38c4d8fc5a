package logdb

// PutSigs writes each signature in vals as a dup at key. Duplicates already
// present are silently ignored.
func (lg *Logger) PutSigs(key []byte, vals [][]byte) (bool, error) {
	return lg.sigs.PutVals(key, vals)
}

// AddSig adds a single signature as a dup at key. Returns false if it is
// already present.
func (lg *Logger) AddSig(key, val []byte) (bool, error) {
	return lg.sigs.AddVal(key, val)
}

// GetSigs returns the signatures at key in lexicographic order.
func (lg *Logger) GetSigs(key []byte) ([][]byte, error) {
	return lg.sigs.GetVals(key)
}

// CntSigs returns the number of signatures at key.
func (lg *Logger) CntSigs(key []byte) (int, error) {
	return lg.sigs.CntVals(key)
}

// DelSigs deletes all signatures at key.
func (lg *Logger) DelSigs(key []byte) (bool, error) {
	return lg.sigs.DelVals(key)
}

// PutRcts writes each receipt couplet in vals as a dup at key.
func (lg *Logger) PutRcts(key []byte, vals [][]byte) (bool, error) {
	return lg.rcts.PutVals(key, vals)
}

// AddRct adds a single receipt couplet as a dup at key.
func (lg *Logger) AddRct(key, val []byte) (bool, error) {
	return lg.rcts.AddVal(key, val)
}

// GetRcts returns the receipt couplets at key in lexicographic order.
func (lg *Logger) GetRcts(key []byte) ([][]byte, error) {
	return lg.rcts.GetVals(key)
}

// CntRcts returns the number of receipt couplets at key.
func (lg *Logger) CntRcts(key []byte) (int, error) {
	return lg.rcts.CntVals(key)
}

// DelRcts deletes all receipt couplets at key.
func (lg *Logger) DelRcts(key []byte) (bool, error) {
	return lg.rcts.DelVals(key)
}
