package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one header/cell pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is one table row. Fields appear in header order, one per header.
type Record []Field

// NewRecord pairs headers with cells positionally. The caller is expected to
// have reconciled the widths; missing cells become empty strings and extra
// cells are dropped.
func NewRecord(headers, cells []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		rec[i].Key = h
		if i < len(cells) {
			rec[i].Value = cells[i]
		}
	}
	return rec
}

// Get returns the first cell stored under key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the cell under key, or "" when the key is absent.
func (r Record) Value(key string) string {
	v, _ := r.Get(key)
	return v
}

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the record's cells in order.
func (r Record) Values() []string {
	vals := make([]string, len(r))
	for i, f := range r {
		vals[i] = f.Value
	}
	return vals
}

// MarshalJSON encodes the record as an object with keys in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object while keeping its key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	rec := Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: unexpected key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: value for %q: %w", key, err)
		}
		rec = append(rec, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = rec
	return nil
}
