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
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// urlJSON is the wire shape of a URL. Absent parts are encoded as null.
type urlJSON struct {
	Protocol *string `json:"protocol"`
	Slashes  bool    `json:"slashes"`
	Auth     *string `json:"auth"`
	Host     *string `json:"host"`
	Port     *string `json:"port"`
	Hostname *string `json:"hostname"`
	Hash     *string `json:"hash"`
	Search   *string `json:"search"`
	Query    any     `json:"query"`
	Pathname string  `json:"pathname"`
	Path     string  `json:"path"`
	Href     string  `json:"href"`
}

// hrefJSON is the object form accepted by UnmarshalJSON.
type hrefJSON struct {
	Href        *string `json:"href"`
	DecodeQuery bool    `json:"decodeQuery"`
}

// MarshalJSON implements the json.Marshaler interface. The "query" member is
// the decoded mapping when there is one, else the raw query string, else null.
func (u *URL) MarshalJSON() ([]byte, error) {
	out := urlJSON{
		Protocol: u.authority.protocol.ptr(),
		Slashes:  u.slashes,
		Auth:     u.authority.auth.ptr(),
		Host:     u.authority.host.ptr(),
		Port:     u.authority.port.ptr(),
		Hostname: u.authority.hostname.ptr(),
		Hash:     u.hash.ptr(),
		Search:   u.search.ptr(),
		Pathname: u.pathname,
		Path:     u.path,
		Href:     u.href,
	}
	switch {
	case u.query != nil:
		out.Query = u.query
	case u.rawQuery.ok:
		out.Query = u.rawQuery.value
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "encode URL")
	}
	return data, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts either a
// JSON string holding the href, or an object with an "href" member and an
// optional boolean "decodeQuery". The href is parsed without any cache, so
// only the href survives a round trip; every other member is recomputed.
func (u *URL) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return newDecodeError(ErrUnsupportedJSON)
	}

	switch trimmed[0] {
	case 'n':
		// null is a no-op, as for the standard library types.
		return nil
	case '"':
		var href string
		if err := json.Unmarshal(trimmed, &href); err != nil {
			return newDecodeError(errors.Wrap(err, "decode href string"))
		}
		*u = *Parse(href)
		return nil
	case '{':
		var in hrefJSON
		if err := json.Unmarshal(trimmed, &in); err != nil {
			return newDecodeError(errors.Wrap(err, "decode URL object"))
		}
		if in.Href == nil {
			return newDecodeError(ErrMissingHref)
		}
		p := pureParser
		if in.DecodeQuery {
			p = NewParser(WithoutCache(), WithQueryDecoding(true))
		}
		*u = *p.Parse(*in.Href)
		return nil
	default:
		return newDecodeError(ErrUnsupportedJSON)
	}
}
