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

// Package html converts an *ast.Text into html output.
// Plain text and code spans are escaped, so the output can be placed into
// a page without further escaping. Link targets are percent-encoded.
//
// AST nodes correspond to the following HTML:
// 	Plain       escaped text
// 	Code        <code></code>
// 	Link        <a href="" rel="nofollow"></a>
// 	AutoLink    <a href="" rel="nofollow"></a>
package html // import "akhil.cc/tinytext/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"akhil.cc/tinytext/ast"
)

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

func (c *stickyCountWriter) WriteString(s string) (n int, err error) {
	return c.Write([]byte(s))
}

// Generator represents a non-reusable HTML output generator for an *ast.Text.
type Generator struct {
	// Stdout specifies the generator's standard output.
	// HTML output will be written to it.
	Stdout   io.Writer
	ctx      context.Context
	text     *ast.Text
	waitdone chan error
	waited   bool

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to convert the given text into HTML output.
//
// It sets only the text in the returned structure.
func Gen(text *ast.Text) *Generator {
	return &Generator{ctx: context.TODO(), text: text}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt HTML generation
// after writing a token.
func GenContext(ctx context.Context, text *ast.Text) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, text: text}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.waitdone != nil {
		return fmt.Errorf("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to
// Stdout. It is an error to call Wait before Start has been called.
//
// Wait will release any resources associated with the generator.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	if g.waited {
		return fmt.Errorf("Wait was already called")
	}
	// prevent callers to Wait from a deadlock via not waiting for pipes to close
	g.m.Lock()
	if g.pipes != nil {
		g.m.Unlock()
		return fmt.Errorf("all reads from the pipe have not completed")
	}
	g.m.Unlock()
	err := <-g.waitdone
	g.waited = true
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors enountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output.
//
// Wait must not be called until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.m.Lock()
	g.pipes = append(g.pipes, pw)
	g.m.Unlock()
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

func (g *Generator) gen() error {
	cw := &stickyCountWriter{0, nil, g.Stdout}
	if g.text == nil {
		return nil
	}
	_, err := ast.Walk(g.text, func(n ast.Node) (ast.Node, error) {
		select {
		case <-g.ctx.Done():
			return n, g.ctx.Err()
		default:
		}
		if t, ok := n.(ast.Inline); ok {
			writeInline(cw, t)
		}
		return n, cw.err
	})
	return err
}

// Render returns the HTML for text.
func Render(text *ast.Text) string {
	if text == nil {
		return ""
	}
	var b strings.Builder
	for _, t := range text.List {
		writeInline(&b, t)
	}
	return b.String()
}

func writeInline(w io.StringWriter, t ast.Inline) {
	switch t := t.(type) {
	case *ast.Plain:
		w.WriteString(Escape(t.Body))
	case *ast.Code:
		w.WriteString("<code>")
		w.WriteString(Escape(t.Body))
		w.WriteString("</code>")
	case *ast.Link:
		writeAnchor(w, t.Target, t.Label)
	case *ast.AutoLink:
		writeAnchor(w, t.Target, t.Target)
	}
}

func writeAnchor(w io.StringWriter, target, text string) {
	w.WriteString(`<a href="`)
	w.WriteString(EscapeURL(target))
	w.WriteString(`" rel="nofollow">`)
	w.WriteString(Escape(text))
	w.WriteString("</a>")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape escapes the five HTML special characters in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeURL percent-encodes s the way a browser's encodeURI does and then
// escapes it for use inside a double quoted attribute. Existing percent
// escapes are kept.
func EscapeURL(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			b.WriteString("&amp;")
		case c == '\'':
			b.WriteString("&#039;")
		case keepInURL(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&15])
		}
	}
	return b.String()
}

func keepInURL(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ';', ',', '/', '?', ':', '@', '=', '+', '$', '-', '_', '.', '!', '~', '*', '(', ')', '#', '%':
		return true
	}
	return false
}
