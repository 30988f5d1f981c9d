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
	"strings"

	"github.com/rs/zerolog"

	"github.com/jplu/fasturl/query"
)

var (
	// defaultCache is the process-wide memo shared by ParseURL calls.
	defaultCache       = NewAuthorityCache()
	defaultParser      = NewParser(WithCache(defaultCache))
	defaultQueryParser = NewParser(WithCache(defaultCache), WithQueryDecoding(true))
	pureParser         = NewParser(WithoutCache())
)

// ParseURL decomposes input. When decodeQuery is true and the query string is
// non-empty, the query is decoded into a mapping (see URL.Query) with
// query.Decode; build a Parser with WithCompatQuery(true) for the byte-exact
// legacy grammar of query.DecodeCompat. The process-wide DefaultCache is
// consulted for the authority. It never fails.
func ParseURL(input string, decodeQuery bool) *URL {
	if decodeQuery {
		return defaultQueryParser.Parse(input)
	}
	return defaultParser.Parse(input)
}

// Parse decomposes input without touching any cache and without decoding the
// query. It is the reference behavior every cached parse must agree with.
func Parse(input string) *URL {
	return pureParser.Parse(input)
}

// DefaultCache returns the process-wide AuthorityCache used by ParseURL.
func DefaultCache() *AuthorityCache {
	return defaultCache
}

// Option configures a Parser.
type Option func(*Parser)

// WithQueryDecoding requests that non-empty query strings be decoded into a
// mapping.
func WithQueryDecoding(enabled bool) Option {
	return func(p *Parser) { p.decodeQuery = enabled }
}

// WithCompatQuery selects query.DecodeCompat instead of query.Decode. It only
// matters when query decoding is enabled.
func WithCompatQuery(enabled bool) Option {
	return func(p *Parser) { p.compatQuery = enabled }
}

// WithCache makes the parser consult and update c. Several parsers may share
// one cache.
func WithCache(c *AuthorityCache) Option {
	return func(p *Parser) { p.cache = c }
}

// WithoutCache disables memoization: every authority is parsed from scratch.
func WithoutCache() Option {
	return func(p *Parser) { p.cache = nil }
}

// WithLogger sets the logger used to report cache activity at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// Parser is a configured URL decomposer. It is safe for concurrent use as long
// as its options are not changed after construction.
type Parser struct {
	cache       *AuthorityCache
	decodeQuery bool
	compatQuery bool
	logger      zerolog.Logger
}

// NewParser returns a Parser with its own private AuthorityCache, no query
// decoding and a no-op logger, then applies opts in order.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		cache:  NewAuthorityCache(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decomposes input according to the parser's configuration.
//
// The authority ends at the first '?' or '#' even when no '/' precedes it, so
// "http://example.com?x=1" has host "example.com" and a '/' inside the query
// or fragment never moves the path boundary. Legacy url.parse fast paths
// scanned the whole input and put "example.com?x=1" in the host.
func (p *Parser) Parse(input string) *URL {
	// The authority can never extend past the query or the fragment.
	limit := len(input)
	if i := strings.IndexAny(input, "?#"); i >= 0 {
		limit = i
	}

	boundary, slashes := findBoundary(input[:limit])
	left := input[:boundary]

	// A plain relative reference such as "a/b": the first '/' was found, but
	// nothing before it looks like a protocol or an authority.
	if !slashes && boundary < limit && strings.IndexByte(left, ':') < 0 {
		boundary, left = 0, ""
	}

	u := &URL{href: input, slashes: slashes}
	u.authority = p.parseLeft(left)
	p.parseRight(u, input[boundary:])
	u.path = u.pathname + u.search.value

	return u
}

// parseLeft returns the Authority of the left segment, going through the
// cache when there is one. An empty segment has no authority and bypasses the
// cache. Log events carry the host only: the segment may hold user-info.
func (p *Parser) parseLeft(left string) Authority {
	if left == "" {
		return Authority{}
	}
	if p.cache == nil {
		return parseAuthority(left)
	}

	if a, ok := p.cache.Lookup(left); ok {
		p.logger.Debug().Str("Method", "Parse").Str("Host", a.host.value).Msg("authority cache hit")
		return a
	}

	a := parseAuthority(left)
	p.cache.Store(left, a)
	p.logger.Debug().Str("Method", "Parse").Str("Host", a.host.value).Msg("authority cache miss")
	return a
}

// parseRight fills the fragment, query and path parts of u from the right
// segment. The fragment is cut first so that a '?' inside it is not a query.
func (p *Parser) parseRight(u *URL, right string) {
	if i := strings.IndexByte(right, '#'); i >= 0 {
		u.hash = present(right[i:])
		right = right[:i]
	}

	i := strings.IndexByte(right, '?')
	if i < 0 {
		u.pathname = right
		return
	}

	body := right[i+1:]
	u.pathname = right[:i]
	u.search = present(right[i:])
	u.rawQuery = present(body)

	if p.decodeQuery && body != "" {
		if p.compatQuery {
			u.query = query.DecodeCompat(body)
		} else {
			u.query = query.Decode(body)
		}
	}
}
