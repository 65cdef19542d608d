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

// Package markup renders plugin descriptions written in the tiny inline
// markup to sanitized HTML. It ties the parser and the html generator
// together for callers that only deal in strings.
package markup // import "akhil.cc/tinytext/markup"

import (
	"akhil.cc/tinytext/ast"
	"akhil.cc/tinytext/gen/html"
	"akhil.cc/tinytext/parser"
)

// Parse returns content as HTML. Code spans become <code> elements, links
// and autolinks become nofollow anchors, and everything else is escaped.
// Malformed markup is kept as escaped text. The result is final and must
// not be escaped again.
func Parse(content string) string {
	if content == "" {
		return ""
	}
	return html.Render(parser.ParseString(content))
}

// EscapeHTML escapes &, <, >, " and ' in content.
func EscapeHTML(content string) string {
	return html.Escape(content)
}

// Links returns the targets of all links and autolinks in content,
// in order of appearance. Links inside code spans are not included.
func Links(content string) []string {
	var targets []string
	ast.Walk(parser.ParseString(content), func(n ast.Node) (ast.Node, error) {
		switch t := n.(type) {
		case *ast.Link:
			targets = append(targets, t.Target)
		case *ast.AutoLink:
			targets = append(targets, t.Target)
		}
		return n, nil
	})
	return targets
}
