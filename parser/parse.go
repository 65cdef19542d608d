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

// Package parser implements a parser for the tiny inline markup used in
// plugin descriptions. It takes a string or an io.Reader as input and
// outputs an *ast.Text.
//
// Input is never rejected. Anything that does not form a code span or a
// link is kept as plain text, and it is the responsibility of the generator
// to escape it.
//
// The parser recognizes the following constructs (in regexp syntax):
//
//      url       = https?://[a-zA-Z0-9][-a-zA-Z0-9]{0,62}(?:\.[a-zA-Z0-9][-a-zA-Z0-9]{0,62})*?\S*? |
//                  mailto:\S+?@[a-zA-Z0-9][-a-zA-Z0-9]{0,62}(?:\.[a-zA-Z0-9][-a-zA-Z0-9]{0,62})*? .
//      code      = (`+)([\s\S]+?)\1 .
//      link      = \[([^\[\]]+)\]\((url)\) .
//      autolink  = <(url)> .
//
// Code spans are found first, over the whole input. Links are then found in
// the text between code spans, so link syntax inside a code span is kept
// as is. When a link and an autolink both match, the one starting earlier
// wins, and a link wins a tie.
//
// Matching is done by scanning, not backtracking, and takes time linear in
// the length of the input.
package parser // import "akhil.cc/tinytext/parser"

import (
	"fmt"
	"io"
	"unicode"

	"akhil.cc/tinytext/ast"
	"github.com/dlclark/regexp2"
)

const (
	label       = `[a-zA-Z0-9][-a-zA-Z0-9]{0,62}`
	hostPattern = `^` + label + `(?:\.` + label + `)*$`
)

// Parser is safe for concurrent use.
type Parser struct {
	host *regexp2.Regexp
}

// New returns a parser.
func New() *Parser {
	return &Parser{host: regexp2.MustCompile(hostPattern, regexp2.ECMAScript)}
}

var std = New()

// MustParse is like Parse but panics if the source cannot be read.
func MustParse(src io.Reader) *ast.Text {
	t, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return t
}

// Parse reads all of src and parses it with the default parser.
func Parse(src io.Reader) (*ast.Text, error) {
	return std.Parse(src)
}

// ParseString parses src with the default parser.
func ParseString(src string) *ast.Text {
	return std.ParseString(src)
}

// Parse reads all of src and returns its tokens.
// The only errors returned are read errors.
func (p *Parser) Parse(src io.Reader) (*ast.Text, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return p.ParseString(string(b)), nil
}

// A tickRun is a maximal run of n backticks starting at pos.
type tickRun struct {
	pos, n int
}

// ParseString returns the tokens of src. It never fails.
func (p *Parser) ParseString(src string) *ast.Text {
	t := &ast.Text{List: []ast.Inline{}}
	rs := []rune(src)

	var runs []tickRun
	for i := 0; i < len(rs); i++ {
		if rs[i] != '`' {
			continue
		}
		j := i
		for j < len(rs) && rs[j] == '`' {
			j++
		}
		runs = append(runs, tickRun{i, j - i})
		i = j - 1
	}
	// longest[k] is the longest run in runs[k:].
	longest := make([]int, len(runs)+1)
	for k := len(runs) - 1; k >= 0; k-- {
		longest[k] = max(runs[k].n, longest[k+1])
	}

	// A span opened by runs[k] uses the longest delimiter that closes
	// somewhere: either inside the opening run itself, leaving at least one
	// backtick of body, or at the first later run at least as long.
	start := 0
	for k := 0; k < len(runs); {
		open := runs[k]
		inner := (open.n - 1) / 2
		n := max(min(open.n, longest[k+1]), inner)
		if n == 0 {
			break
		}
		j, closing := k, open.pos+n+1
		if n > inner {
			j = k + 1
			for runs[j].n < n {
				j++
			}
			closing = runs[j].pos
		}
		end := closing + n
		t.List = p.links(t.List, rs[start:open.pos])
		t.List = append(t.List, &ast.Code{
			NTick: n,
			Body:  string(rs[open.pos+n : closing]),
		})
		start = end
		if rest := runs[j].pos + runs[j].n - end; rest > 0 {
			runs[j] = tickRun{end, rest}
			k = j
		} else {
			k = j + 1
		}
	}
	t.List = p.links(t.List, rs[start:])
	return t
}

// links appends the tokens of rs, which holds no code spans, to list.
func (p *Parser) links(list []ast.Inline, rs []rune) []ast.Inline {
	x := p.scan(rs)
	start := 0
	for i := 0; i < len(rs); i++ {
		var (
			tok ast.Inline
			end int
		)
		switch rs[i] {
		case '[':
			e := x.bracket[i+1]
			if e == i+1 || e+1 >= len(rs) || rs[e] != ']' || rs[e+1] != '(' {
				continue
			}
			c, ok := x.url(e+2, ')')
			if !ok {
				continue
			}
			tok = &ast.Link{Label: string(rs[i+1 : e]), Target: string(rs[e+2 : c])}
			end = c + 1
		case '<':
			c, ok := x.url(i+1, '>')
			if !ok {
				continue
			}
			tok = &ast.AutoLink{Target: string(rs[i+1 : c])}
			end = c + 1
		default:
			continue
		}
		if i > start {
			list = append(list, &ast.Plain{Body: string(rs[start:i])})
		}
		list = append(list, tok)
		start = end
		i = end - 1
	}
	if start < len(rs) {
		list = append(list, &ast.Plain{Body: string(rs[start:])})
	}
	return list
}

// A scanner holds, for every position of rs, the position of the next rune
// of some class at or after it, or len(rs) if there is none.
type scanner struct {
	rs      []rune
	space   []int // whitespace
	bracket []int // '[' or ']'
	paren   []int // ')'
	angle   []int // '>'
	// '@' of a mailto link whose host runs up to a ')' or '>'.
	mailParen []int
	mailAngle []int
	// hostEnd[a] is the end of the host after the '@' at a.
	hostEnd []int
}

func (p *Parser) scan(rs []rune) *scanner {
	n := len(rs)
	x := &scanner{
		rs:        rs,
		space:     make([]int, n+1),
		bracket:   make([]int, n+1),
		paren:     make([]int, n+1),
		angle:     make([]int, n+1),
		mailParen: make([]int, n+1),
		mailAngle: make([]int, n+1),
		hostEnd:   make([]int, n),
	}
	x.space[n], x.bracket[n], x.paren[n], x.angle[n] = n, n, n, n
	x.mailParen[n], x.mailAngle[n] = n, n
	host := n
	for i := n - 1; i >= 0; i-- {
		x.space[i], x.bracket[i], x.paren[i], x.angle[i] = x.space[i+1], x.bracket[i+1], x.paren[i+1], x.angle[i+1]
		x.mailParen[i], x.mailAngle[i] = x.mailParen[i+1], x.mailAngle[i+1]
		switch r := rs[i]; {
		case unicode.IsSpace(r):
			x.space[i] = i
		case r == '[' || r == ']':
			x.bracket[i] = i
		case r == ')':
			x.paren[i] = i
		case r == '>':
			x.angle[i] = i
		case r == '@':
			x.hostEnd[i] = host
			if host == i+1 || host == n || !p.isHost(rs[i+1:host]) {
				break
			}
			switch rs[host] {
			case ')':
				x.mailParen[i] = i
			case '>':
				x.mailAngle[i] = i
			}
		}
		if !isHostRune(rs[i]) {
			host = i
		}
	}
	return x
}

// url reports whether a url starting at p is closed by term, and where.
func (x *scanner) url(p int, term rune) (int, bool) {
	rs := x.rs
	next, mail := x.paren, x.mailParen
	if term == '>' {
		next, mail = x.angle, x.mailAngle
	}
	switch {
	case hasPrefix(rs[p:], "http://"), hasPrefix(rs[p:], "https://"):
		h := p + len("http://")
		if rs[p+4] == 's' {
			h++
		}
		if h >= len(rs) || !isAlnum(rs[h]) {
			return 0, false
		}
		c := next[h]
		return c, c < x.space[p]
	case hasPrefix(rs[p:], "mailto:"):
		l := p + len("mailto:") + 1
		if l > len(rs) {
			return 0, false
		}
		a := mail[l]
		if a >= x.space[p] {
			return 0, false
		}
		return x.hostEnd[a], true
	}
	return 0, false
}

func (p *Parser) isHost(rs []rune) bool {
	ok, err := p.host.MatchRunes(rs)
	return err == nil && ok
}

func hasPrefix(rs []rune, prefix string) bool {
	if len(rs) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if rs[i] != rune(prefix[i]) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

func isHostRune(r rune) bool {
	return isAlnum(r) || r == '-' || r == '.'
}
