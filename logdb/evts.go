package logdb

// PutEvt writes serialized event bytes val to key. Does not overwrite an
// existing event (I1 event immutability). Returns false if key already
// holds a value.
func (lg *Logger) PutEvt(key, val []byte) (bool, error) {
	return lg.evts.PutVal(key, val)
}

// SetEvt overwrites the event at key unconditionally. Recovery/admin only —
// never called on the happy path (I1).
func (lg *Logger) SetEvt(key, val []byte) (bool, error) {
	return lg.evts.SetVal(key, val)
}

// GetEvt returns the event at key.
func (lg *Logger) GetEvt(key []byte) ([]byte, bool, error) {
	return lg.evts.GetVal(key)
}

// DelEvt deletes the event at key.
func (lg *Logger) DelEvt(key []byte) (bool, error) {
	return lg.evts.DelVal(key)
}

// PutDts writes the first-seen datetime stamp val to key. Does not overwrite.
func (lg *Logger) PutDts(key, val []byte) (bool, error) {
	return lg.dtss.PutVal(key, val)
}

// SetDts overwrites the datetime stamp at key.
func (lg *Logger) SetDts(key, val []byte) (bool, error) {
	return lg.dtss.SetVal(key, val)
}

// GetDts returns the datetime stamp at key.
func (lg *Logger) GetDts(key []byte) ([]byte, bool, error) {
	return lg.dtss.GetVal(key)
}

// DelDts deletes the datetime stamp at key.
func (lg *Logger) DelDts(key []byte) (bool, error) {
	return lg.dtss.DelVal(key)
}

// PutUre writes an unverified receipt couplet val to key. Does not overwrite.
func (lg *Logger) PutUre(key, val []byte) (bool, error) {
	return lg.ures.PutVal(key, val)
}

// SetUre overwrites the unverified receipt couplet at key.
func (lg *Logger) SetUre(key, val []byte) (bool, error) {
	return lg.ures.SetVal(key, val)
}

// GetUre returns the unverified receipt couplet at key.
func (lg *Logger) GetUre(key []byte) ([]byte, bool, error) {
	return lg.ures.GetVal(key)
}

// DelUre deletes the unverified receipt couplet at key.
func (lg *Logger) DelUre(key []byte) (bool, error) {
	return lg.ures.DelVal(key)
}
