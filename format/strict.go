// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package format

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotNumber is returned by ParseUint and ParseInt for input that is
	// not a plain run of decimal digits.
	ErrNotNumber = errors.New("not a decimal number")
	// ErrRange is returned when the digits do not fit in an int.
	ErrRange = errors.New("number out of range")
)

// ParseUint parses s as an unsigned decimal number. Only the digits 0-9 are
// accepted, so an empty string, a sign or surrounding space is an error.
func ParseUint(s string) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || '9' < c {
			return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrRange, s)
		}
		n = n*10 + d
	}
	return n, nil
}

// ParseInt is like ParseUint but accepts a single leading '-'.
func ParseInt(s string) (int, error) {
	if len(s) > 0 && s[0] == '-' {
		n, err := ParseUint(s[1:])
		if err != nil {
			return 0, err
		}
		return -n, nil
	}
	return ParseUint(s)
}
