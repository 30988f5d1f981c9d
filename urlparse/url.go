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

// Package urlparse splits URL strings into their structural parts without
// validating them and without depending on net/url.
//
// The decomposition follows the classic Node.js-style fast path: a URL is cut
// at the first path boundary into a left segment (protocol, user-info, host,
// port) and a right segment (path, query, fragment), and each side is scanned
// once. Parsing never fails; malformed input is split positionally.
//
// Key features include:
//   - A fixed-shape URL record whose optional parts distinguish "absent" from
//     "present but empty" through (string, bool) accessors.
//   - Optional structured query decoding into an ordered mapping (see package query).
//   - A single-entry AuthorityCache that short-circuits re-parsing when
//     consecutive URLs share the same authority text. Caches are explicit,
//     mutex-guarded objects; parsing without one is always possible.
//   - JSON encoding of the record in the familiar url.parse object shape.
//
// Percent-decoding, host or port validation, IDN handling, formatting and
// relative reference resolution are out of scope.
package urlparse

import "github.com/jplu/fasturl/query"

// component is an optional string. ok == false means the part never appeared
// in the input; ok == true with an empty value means it appeared but was empty.
type component struct {
	value string
	ok    bool
}

// present wraps s as a component that appeared in the input.
func present(s string) component {
	return component{value: s, ok: true}
}

// get returns the component as an accessor pair.
func (c component) get() (string, bool) {
	return c.value, c.ok
}

// ptr returns a pointer to the value, or nil when the component is absent.
func (c component) ptr() *string {
	if !c.ok {
		return nil
	}
	v := c.value
	return &v
}

// URL is the decomposed form of a URL string. It is immutable once returned by
// a parsing function. Every substring it exposes is a slice of the original
// input; nothing is decoded or normalized.
type URL struct {
	href      string
	slashes   bool
	authority Authority
	hash      component
	search    component
	rawQuery  component
	query     *query.Values
	pathname  string
	path      string
}

// Href returns the input string exactly as it was given to the parser.
func (u *URL) Href() string {
	return u.href
}

// String returns the input string exactly as it was given to the parser.
func (u *URL) String() string {
	return u.href
}

// Slashes reports whether "//" followed the protocol, or whether the input
// began with "//" (a protocol-relative URL).
func (u *URL) Slashes() bool {
	return u.slashes
}

// Authority returns the protocol, user-info, host, hostname and port as a single value.
func (u *URL) Authority() Authority {
	return u.authority
}

// Protocol returns the scheme including its trailing colon (e.g., "http:").
func (u *URL) Protocol() (string, bool) {
	return u.authority.Protocol()
}

// Auth returns the raw user-info found before '@' (e.g., "user:pass").
func (u *URL) Auth() (string, bool) {
	return u.authority.Auth()
}

// Host returns the hostname together with the port, if any (e.g., "example.com:8080").
func (u *URL) Host() (string, bool) {
	return u.authority.Host()
}

// Hostname returns the host without its port (e.g., "example.com").
func (u *URL) Hostname() (string, bool) {
	return u.authority.Hostname()
}

// Port returns the text after the port colon (e.g., "8080").
func (u *URL) Port() (string, bool) {
	return u.authority.Port()
}

// Hash returns the fragment including its leading '#'.
func (u *URL) Hash() (string, bool) {
	return u.hash.get()
}

// Search returns the query string including its leading '?'.
func (u *URL) Search() (string, bool) {
	return u.search.get()
}

// RawQuery returns the query string without its leading '?'. It is present
// whenever the input contains a '?' before the fragment.
func (u *URL) RawQuery() (string, bool) {
	return u.rawQuery.get()
}

// Query returns the decoded query mapping. It is nil unless query decoding was
// requested and the query string is non-empty; use RawQuery otherwise.
func (u *URL) Query() *query.Values {
	return u.query
}

// Pathname returns the path component. It is always present and is the empty
// string when the input has no path.
func (u *URL) Pathname() string {
	return u.pathname
}

// Path returns the pathname followed by the search string, if any.
func (u *URL) Path() string {
	return u.path
}
