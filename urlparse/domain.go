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

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// PublicSuffix returns the public suffix of the hostname (e.g., "co.uk" for
// "www.example.co.uk"), as listed in the Public Suffix List.
//
// The lookup uses a lower-cased copy of the hostname and so does the result;
// the URL itself is left untouched. It is absent when there is no hostname,
// when the hostname is an IP address, or when it is not a dotted DNS name.
func (u *URL) PublicSuffix() (string, bool) {
	hostname, ok := u.domainName()
	if !ok {
		return "", false
	}
	suffix, _ := publicsuffix.PublicSuffix(hostname)
	return suffix, true
}

// RegistrableDomain returns the public suffix plus one more label (e.g.,
// "example.co.uk" for "www.example.co.uk"), lower-cased. It is absent whenever
// PublicSuffix is, and also when the hostname is itself a public suffix.
func (u *URL) RegistrableDomain() (string, bool) {
	hostname, ok := u.domainName()
	if !ok {
		return "", false
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return "", false
	}
	return domain, true
}

// domainName returns the lower-cased hostname if it can be looked up in the
// Public Suffix List.
func (u *URL) domainName() (string, bool) {
	hostname, ok := u.Hostname()
	if !ok || !isDomainName(hostname) {
		return "", false
	}
	hostname = strings.ToLower(hostname)
	if net.ParseIP(hostname) != nil {
		return "", false
	}
	return hostname, true
}

// isDomainName reports whether s is made of DNS labels: at least one '.', and
// only letters, digits, '-' and '_' between the dots. Anything else the
// positional split put in the hostname slot ("/x", "u@h", "[::1]") is not.
func isDomainName(s string) bool {
	if strings.IndexByte(s, '.') < 0 {
		return false
	}
	for i := range len(s) {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
