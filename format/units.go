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
	"strconv"
	"time"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// Size formats a byte count with binary prefixes, dividing by 1024 while
// the value is above 1024, up to TB. The value is rounded to two fraction
// digits and trailing zeros are dropped, so 1536 prints as "1.5KB".
func Size(n int64) string {
	size := float64(n)
	unit := 0
	for size > 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fixed(size, 2) + sizeUnits[unit]
}

var timeUnits = [...]struct {
	limit float64
	name  string
}{
	{1000, "s"},
	{60, "min"},
	{60, "h"},
	{24, "d"},
}

// Timestamp formats a duration in milliseconds with two fraction digits.
// See TimestampN.
func Timestamp(ms float64) string {
	return TimestampN(ms, 2)
}

// TimestampN formats a duration in milliseconds, moving up through ms, s,
// min, h and d while the value is above 1000, 60, 60 and 24. The value is
// rounded to n fraction digits and trailing zeros are dropped. A negative
// duration keeps its sign: -1500 prints as "-1.5s". n is clamped to
// [0, MaxPrecision].
func TimestampN(ms float64, n int) string {
	n = min(max(n, 0), MaxPrecision)
	neg := ms < 0
	if neg {
		ms = -ms
	}
	unit := "ms"
	for _, u := range timeUnits {
		if !(ms > u.limit) {
			break
		}
		ms /= u.limit
		unit = u.name
	}
	s := fixed(ms, n) + unit
	if neg {
		s = "-" + s
	}
	return s
}

// Duration is Timestamp for a time.Duration.
func Duration(d time.Duration) string {
	return Timestamp(float64(d) / float64(time.Millisecond))
}

// Since formats the time elapsed between t and now.
func Since(t, now time.Time) string {
	return Duration(now.Sub(t))
}

// DateTime formats t in UTC as "2006-01-02 15:04:05".
func DateTime(t time.Time) string {
	t = t.UTC()
	return Format("%04d-%02d-%02d %02d:%02d:%02d",
		Int(int64(t.Year())), Int(int64(t.Month())), Int(int64(t.Day())),
		Int(int64(t.Hour())), Int(int64(t.Minute())), Int(int64(t.Second())))
}

// fixed rounds f to n fraction digits and prints the result without
// trailing zeros.
func fixed(f float64, n int) string {
	r, err := strconv.ParseFloat(toFixed(f, n), 64)
	if err != nil {
		return number(f)
	}
	return number(r)
}
