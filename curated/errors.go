// This file is part of Padcast.
//
// Padcast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padcast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padcast.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". This is because we use the pattern string
// in the Is() and Has() functions where 'pattern' seems to be a more
// descriptive name.
func Errorf(pattern string, values ...interface{}) error {
	// formatting takes place in the Error() function
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent parts in the error message chain. It doesn't affect
// letter-case or white space.
func (er curated) Error() string {
	// the %w verb is only meaningful to fmt.Errorf(). we format with %v
	// because unwrapping is provided by the Unwrap() function
	s := fmt.Sprintf(strings.ReplaceAll(er.pattern, "%w", "%v"), er.values...)

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for _, part := range p {
		if len(n) > 0 && n[len(n)-1] == part {
			continue
		}
		n = append(n, part)
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the errors used as placeholder values. This allows the
// errors.Is() and errors.As() functions of the standard library to look
// inside curated errors.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain. Errors wrapped by fmt.Errorf() with the %w verb are searched too.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	switch w := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range w.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(w.Unwrap(), pattern)
	}

	return false
}

// Sentinel returns true if err is the sentinel error or wraps it. This is the
// same as errors.Is() and is provided so that callers dealing with curated
// errors need only import one package.
func Sentinel(err error, target error) bool {
	return errors.Is(err, target)
}
