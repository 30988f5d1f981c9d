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

package urlparse

import "strings"

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
	// protocolRelativeRescan is where the boundary scan resumes for input
	// starting with "//".
	protocolRelativeRescan = 3
)

// Authority holds the parts of a URL found left of the path boundary. It is a
// plain value; copying it is safe.
type Authority struct {
	protocol component
	auth     component
	host     component
	hostname component
	port     component
}

// Protocol returns the scheme including its trailing colon.
func (a Authority) Protocol() (string, bool) { return a.protocol.get() }

// Auth returns the raw user-info.
func (a Authority) Auth() (string, bool) { return a.auth.get() }

// Host returns the hostname and optional ":port".
func (a Authority) Host() (string, bool) { return a.host.get() }

// Hostname returns the host without its port.
func (a Authority) Hostname() (string, bool) { return a.hostname.get() }

// Port returns the port text.
func (a Authority) Port() (string, bool) { return a.port.get() }

// IsZero reports whether no authority part is present.
func (a Authority) IsZero() bool {
	return a == Authority{}
}

// findBoundary returns the index where the path starts in s and whether
// authority slashes ("//") were seen. s must already be cut at the first '?'
// or '#', so neither can be mistaken for part of the authority.
//
// A ':' right before the first '/' marks "scheme://"; the scan then resumes
// after the assumed second slash. A leading "//" marks a protocol-relative
// URL. Any other first '/' is the boundary itself. Without a boundary the
// whole of s is the left segment.
func findBoundary(s string) (int, bool) {
	slash := strings.IndexByte(s, '/')
	slashes := false

	switch {
	case slash > 0 && s[slash-1] == ':':
		slashes = true
		slash = indexByteFrom(s, '/', slash+authorityPrefixLength)
	case slash == 0 && len(s) > 1 && s[1] == '/':
		slashes = true
		slash = indexByteFrom(s, '/', protocolRelativeRescan)
	}

	if slash < 0 {
		return len(s), slashes
	}
	return slash, slashes
}

// indexByteFrom is strings.IndexByte starting at from. It returns -1 when from
// is past the end of s.
func indexByteFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// parseAuthority splits the left segment of a URL. It is a pure function of
// left, which is what makes memoizing it by exact key sound.
//
// The first ':' ends the protocol, unless left starts with "//", in which case
// there is no protocol and the slashes are skipped. User-info is only looked
// for after a protocol and only within left, so an '@' in the path is never
// taken for it. The first ':' after the cursor separates hostname and port.
func parseAuthority(left string) Authority {
	var a Authority
	if left == "" {
		return a
	}

	cursor := 0
	if strings.HasPrefix(left, "//") {
		cursor = authorityPrefixLength
	} else if colon := strings.IndexByte(left, ':'); colon >= 0 {
		a.protocol = present(left[:colon+1])
		cursor = colon + 1
		if strings.HasPrefix(left[cursor:], "//") {
			cursor += authorityPrefixLength
		}

		if at := strings.IndexByte(left[cursor:], '@'); at >= 0 {
			a.auth = present(left[cursor : cursor+at])
			cursor += at + 1
		}
	}

	hostport := left[cursor:]
	a.host = present(hostport)
	if colon := strings.IndexByte(hostport, ':'); colon >= 0 {
		a.hostname = present(hostport[:colon])
		a.port = present(hostport[colon+1:])
	} else {
		a.hostname = present(hostport)
	}

	return a
}
