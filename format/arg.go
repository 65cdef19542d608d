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
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind tells which field of an Arg holds its value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Arg is a single argument to Format. The zero Arg is the empty string.
type Arg struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// Str returns a string argument.
func Str(s string) Arg { return Arg{kind: KindString, s: s} }

// Int returns an integer argument.
func Int(i int64) Arg { return Arg{kind: KindInt, i: i} }

// Float returns a floating point argument.
func Float(f float64) Arg { return Arg{kind: KindFloat, f: f} }

// Of converts a Go value into an Arg. Integers and floats keep their kind;
// everything else is turned into a string.
func Of(v any) Arg {
	switch v := v.(type) {
	case Arg:
		return v
	case string:
		return Str(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return ofUint(uint64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return ofUint(v)
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case fmt.Stringer:
		return Str(v.String())
	case error:
		return Str(v.Error())
	}
	return Str(fmt.Sprint(v))
}

func ofUint(u uint64) Arg {
	if u > math.MaxInt64 {
		return Str(strconv.FormatUint(u, 10))
	}
	return Int(int64(u))
}

// Guess converts command line text into an Arg: an integer if ParseInt
// accepts it, a float if it is a finite decimal number, else a string.
func Guess(s string) Arg {
	if n, err := ParseInt(s); err == nil {
		return Int(int64(n))
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
			return Float(f)
		}
	}
	return Str(s)
}

// Kind returns the kind of a.
func (a Arg) Kind() Kind { return a.kind }

// String returns the text a prints as with %s.
func (a Arg) String() string {
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(a.i, 10)
	case KindFloat:
		return number(a.f)
	}
	return a.s
}

func (a Arg) int() (int64, bool) {
	switch a.kind {
	case KindInt:
		return a.i, true
	case KindFloat:
		t := math.Trunc(a.f)
		if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	}
	n, err := ParseInt(a.s)
	if err != nil {
		return 0, false
	}
	return int64(n), true
}

func (a Arg) float() (float64, bool) {
	switch a.kind {
	case KindInt:
		return float64(a.i), true
	case KindFloat:
		return a.f, true
	}
	f, err := strconv.ParseFloat(a.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// number formats f the way JavaScript prints numbers: the shortest text
// that reads back as f, exponent form outside [1e-6, 1e21).
func number(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a < 1e-6 || a >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		i := strings.IndexByte(s, 'e')
		exp, _ := strconv.Atoi(s[i+1:])
		if exp < 0 {
			return s[:i] + "e" + strconv.Itoa(exp)
		}
		return s[:i] + "e+" + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFixed prints f with prec fraction digits. Exact halves are rounded
// away from zero, as JavaScript's toFixed does. prec is clamped to
// [0, MaxPrecision].
func toFixed(f float64, prec int) string {
	prec = min(max(prec, 0), MaxPrecision)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return number(f)
	}
	return new(big.Rat).SetFloat64(f).FloatString(prec)
}
