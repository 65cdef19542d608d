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

// Examples for the format package
package format_test

import (
	"fmt"
	"time"

	"akhil.cc/tinytext/format"
)

func ExampleFormat() {
	fmt.Println(format.Format("%-8s|%5d|%+.2f", format.Str("Essentials"), format.Int(1042), format.Float(3.14159)))
	fmt.Println(format.Format("%2$s by %1$s (%s)", format.Str("md_5"), format.Str("EssentialsX"), format.Str("v2.20")))
	fmt.Println(format.Format("%z and %d", format.Int(1)))
	// Output:
	// Essentials| 1042|+3.14
	// EssentialsX by md_5 (v2.20)
	// %z and %d
}

func ExampleSize() {
	fmt.Println(format.Size(500))
	fmt.Println(format.Size(1536))
	fmt.Println(format.Size(7 << 30))
	// Output:
	// 500B
	// 1.5KB
	// 7GB
}

func ExampleTimestamp() {
	fmt.Println(format.Timestamp(-1500))
	fmt.Println(format.Duration(26 * time.Hour))
	// Output:
	// -1.5s
	// 1.08d
}
