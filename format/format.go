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

// Package format implements a small printf-style formatter and the size and
// duration formatters used to display plugin metadata.
//
// A directive has the form
//
//	%[N$][-][+][0][width][.precision]verb
//
// where verb is one of
//
//	s	the argument as text, cut to precision and padded with spaces
//	d	the argument as an integer
//	f	the argument as a number, with precision fraction digits if given
//
// N$ picks the Nth argument (counting from 1) for this directive only.
// Every directive moves the implicit argument position forward by one,
// whether or not it names an argument, so "%2$s %1$s %s" prints the second,
// first and third arguments. The - flag pads on the right, + always prints
// a sign and 0 pads numbers with zeros after the sign; + and 0 have no
// effect on s.
//
// The formatter never fails. A directive with an unknown verb, a malformed
// width or precision, a missing argument or an argument that cannot be
// read as a number is copied to the output unchanged. Widths above MaxWidth
// and precisions above MaxPrecision count as malformed. A % with no verb
// before the end of the template is copied as well. There is no escape for
// a literal percent sign.
package format // import "akhil.cc/tinytext/format"

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format formats args according to template.
func Format(template string, args ...Arg) string {
	var b strings.Builder
	b.Grow(len(template))
	next := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			b.WriteByte(template[i])
			continue
		}
		s := i
		for i++; i < len(template) && !isLetter(template[i]); i++ {
		}
		if i >= len(template) {
			b.WriteString(template[s:])
			break
		}
		if out, ok := format1(template[i], template[s+1:i], next, args); ok {
			b.WriteString(out)
		} else {
			b.WriteString(template[s : i+1])
		}
		next++
	}
	return b.String()
}

// Sprintf is Format with each argument converted by Of.
func Sprintf(template string, args ...any) string {
	as := make([]Arg, len(args))
	for i, v := range args {
		as[i] = Of(v)
	}
	return Format(template, as...)
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Limits on the width and precision of a directive.
const (
	MaxWidth     = 1 << 12
	MaxPrecision = 100
)

type directive struct {
	index int // 0-based; -1 uses the implicit position
	left  bool
	sign  bool
	zero  bool
	width int
	prec  int // -1 if absent
}

// parseDirective parses the text between '%' and the verb.
func parseDirective(seg string) (d directive, ok bool) {
	d = directive{index: -1, prec: -1}
	if i := strings.IndexByte(seg, '$'); i >= 0 {
		n, err := ParseInt(seg[:i])
		if err != nil || n < 1 {
			return d, false
		}
		d.index = n - 1
		seg = seg[i+1:]
	}
	if strings.HasPrefix(seg, "-") {
		d.left = true
		seg = seg[1:]
	}
	if strings.HasPrefix(seg, "+") {
		d.sign = true
		seg = seg[1:]
	}
	if strings.HasPrefix(seg, "0") {
		d.zero = true
		seg = seg[1:]
	}
	width := seg
	if i := strings.IndexByte(seg, '.'); i >= 0 {
		width = seg[:i]
		p, err := ParseUint(seg[i+1:])
		if err != nil || p > MaxPrecision {
			return d, false
		}
		d.prec = p
	}
	if width != "" {
		w, err := ParseUint(width)
		if err != nil || w > MaxWidth {
			return d, false
		}
		d.width = w
	}
	return d, true
}

func format1(verb byte, seg string, next int, args []Arg) (string, bool) {
	switch verb {
	case 's', 'd', 'f':
	default:
		return "", false
	}
	d, ok := parseDirective(seg)
	if !ok {
		return "", false
	}
	if d.index >= 0 {
		next = d.index
	}
	if next >= len(args) {
		return "", false
	}
	a := args[next]
	switch verb {
	case 's':
		return d.str(a.String()), true
	case 'd':
		if d.prec >= 0 {
			return "", false
		}
		n, ok := a.int()
		if !ok {
			return "", false
		}
		return d.number(strconv.FormatInt(n, 10)), true
	default:
		f, ok := a.float()
		if !ok {
			return "", false
		}
		s := number(f)
		if d.prec >= 0 {
			s = toFixed(f, d.prec)
		}
		return d.number(s), true
	}
}

func (d directive) str(s string) string {
	if d.prec >= 0 && utf8.RuneCountInString(s) > d.prec {
		n := 0
		for i := range s {
			if n == d.prec {
				s = s[:i]
				break
			}
			n++
		}
	}
	return d.pad(s)
}

func (d directive) number(s string) string {
	if d.sign && s[0] != '-' && s[0] != '+' {
		s = "+" + s
	}
	if !d.zero || d.left {
		return d.pad(s)
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if s == "" || s[0] < '0' || '9' < s[0] {
		return d.pad(sign + s)
	}
	if n := d.width - len(sign) - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return sign + s
}

func (d directive) pad(s string) string {
	n := d.width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	p := strings.Repeat(" ", n)
	if d.left {
		return s + p
	}
	return p + s
}
