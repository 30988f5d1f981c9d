/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package query decodes URL query strings into an ordered name/value mapping.
//
// The decoder is intentionally minimal: it splits on '&' and '=' only and never
// percent-decodes names or values. Two grammars are provided:
//   - Decode: the default rule set. Each '&' closes a token, a token without
//     '=' becomes a name with an empty value and empty tokens are skipped.
//   - DecodeCompat: a byte-for-byte reproduction of the classic
//     Node.js-style fast-path scanner, quirks included.
//
// Both return a *Values whose iteration order is the order in which names were
// first seen. A repeated name overwrites the earlier value in place.
package query

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"

	"github.com/pkg/errors"
)

// ErrNotObject is returned by Values.UnmarshalJSON when the input is not a JSON object.
var ErrNotObject = errors.New("query values must be encoded as a JSON object")

// Values is an ordered mapping from query parameter names to raw values.
// The zero value is an empty mapping ready to use. A nil *Values behaves as an
// empty, read-only mapping.
type Values struct {
	keys []string
	m    map[string]string
}

// NewValues returns an empty mapping.
func NewValues() *Values {
	return &Values{m: make(map[string]string)}
}

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position and only its value changes.
func (v *Values) Set(key, value string) {
	if v.m == nil {
		v.m = make(map[string]string)
	}
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	value, ok := v.m[key]
	return value, ok
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns a copy of the keys in first-occurrence order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// All iterates over the key/value pairs in first-occurrence order.
func (v *Values) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if v == nil {
			return
		}
		for _, k := range v.keys {
			if !yield(k, v.m[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the mapping.
func (v *Values) Map() map[string]string {
	if v == nil {
		return map[string]string{}
	}
	return maps.Clone(v.m)
}

// MarshalJSON implements the json.Marshaler interface. Keys are written in
// first-occurrence order, which a plain Go map cannot guarantee.
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, errors.Wrapf(err, "encode query key %q", k)
		}
		value, err := json.Marshal(v.m[k])
		if err != nil {
			return nil, errors.Wrapf(err, "encode query value for key %q", k)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The object's member
// order becomes the iteration order; duplicate members follow the usual
// last-one-wins rule.
func (v *Values) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "decode query values")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	decoded := NewValues()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "decode query key")
		}
		key, ok := tok.(string)
		if !ok {
			return ErrNotObject
		}
		var value string
		if err = dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "decode query value for key %q", key)
		}
		decoded.Set(key, value)
	}
	if _, err = dec.Token(); err != nil {
		return errors.Wrap(err, "decode query values")
	}

	*v = *decoded
	return nil
}
