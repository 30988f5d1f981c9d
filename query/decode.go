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

package query

// compatMissingKey is the name under which DecodeCompat stores a value that
// appears before any '='. The classic scanner indexes its result object with an
// unset variable, which stringifies to this literal.
const compatMissingKey = "undefined"

// Decode parses a query body (the part after '?', without it) into a mapping.
//
// The body is scanned left to right. A '=' turns the bytes pending since the
// last separator into the current name. A '&', or the end of the body, closes
// the token: the pending bytes are stored as the value of the current name.
// Names and values never contain the separators themselves and are stored raw.
//
// On top of that grammar the following rules apply:
//   - every token starts without a name, so a token lacking '=' is stored as a
//     name with an empty value ("a&b=1" gives a="" and b="1");
//   - empty tokens ("a=1&&b=2") are skipped;
//   - a trailing '=' stores an empty value ("a=" gives a="").
func Decode(body string) *Values {
	values := NewValues()

	var name string
	hasName := false
	start := 0

	closeToken := func(end int) {
		switch {
		case hasName:
			values.Set(name, body[start:end])
		case end > start:
			values.Set(body[start:end], "")
		}
		name, hasName = "", false
	}

	for i := range len(body) {
		switch body[i] {
		case '=':
			name, hasName = body[start:i], true
			start = i + 1
		case '&':
			closeToken(i)
			start = i + 1
		}
	}
	closeToken(len(body))

	return values
}

// DecodeCompat parses a query body exactly like the classic Node.js-style fast
// path scanner. It exists for callers that must match that output byte for
// byte, including its quirks:
//   - the current name survives '&', so a token without '=' overwrites the
//     value of the last name that was set ("a=1&b" gives a="b");
//   - a token before any '=' is stored under the name "undefined";
//   - a '=' as the very last byte stores nothing ("a=" gives an empty mapping);
//   - an empty token still stores ("a=1&&b=2" gives a="" and b="2").
func DecodeCompat(body string) *Values {
	values := NewValues()

	name := compatMissingKey
	start := 0
	last := len(body) - 1

	for i := range len(body) {
		switch c := body[i]; {
		case c == '=':
			name = body[start:i]
			start = i + 1
		case c == '&':
			values.Set(name, body[start:i])
			start = i + 1
		case i == last:
			values.Set(name, body[start:])
		}
	}

	return values
}
