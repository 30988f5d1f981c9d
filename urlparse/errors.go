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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingHref is returned when a JSON object decoded into a URL has no
	// "href" member to parse.
	ErrMissingHref = errors.New(`missing "href" member`)
	// ErrUnsupportedJSON is returned when the JSON value is neither a string
	// nor an object.
	ErrUnsupportedJSON = errors.New("a URL must be encoded as a JSON string or object")
)

// DecodeError is the error type returned when a URL cannot be decoded from
// JSON. Parsing itself never fails, so this is the only error the package
// produces.
type DecodeError struct {
	Message string
	Err     error
}

// Error returns the string representation of the decode error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("URL decode error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError whose message carries the whole wrapped
// chain and whose Err is the root cause. It returns nil for a nil error.
func newDecodeError(err error) *DecodeError {
	if err == nil {
		return nil
	}
	return &DecodeError{Message: err.Error(), Err: errors.Cause(err)}
}
