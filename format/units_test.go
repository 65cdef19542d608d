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
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0B"},
		{500, "500B"},
		{1024, "1024B"},
		{1025, "1KB"},
		{1536, "1.5KB"},
		{1126, "1.1KB"},
		{10 * 1024 * 1024, "10MB"},
		{3 * 1024 * 1024 * 1024, "3GB"},
		{5 << 40, "5TB"},
		{2048 << 40, "2048TB"},
		{-5, "-5B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Size(tt.in), "Size(%d)", tt.in)
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0ms"},
		{999, "999ms"},
		{1000, "1000ms"},
		{1500, "1.5s"},
		{-1500, "-1.5s"},
		{60 * 1000, "60s"},
		{90 * 1000, "1.5min"},
		{2 * 60 * 60 * 1000, "2h"},
		{36 * 60 * 60 * 1000, "1.5d"},
		{1234.5678, "1.23s"},
		{0.125, "0.13ms"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Timestamp(tt.in), "Timestamp(%v)", tt.in)
	}
}

func TestTimestampN(t *testing.T) {
	assert.Equal(t, "1.235s", TimestampN(1234.5678, 3))
	assert.Equal(t, "1s", TimestampN(1234.5678, 0))
	assert.Equal(t, "1s", TimestampN(1234.5678, -1))
	assert.Equal(t, "-2min", TimestampN(-125000, 0))
	assert.Equal(t, "1.5s", TimestampN(1500, 2000000000))
	assert.Equal(t, TimestampN(1234.5678, MaxPrecision), TimestampN(1234.5678, math.MaxInt))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "1.5s", Duration(1500*time.Millisecond))
	assert.Equal(t, "-250ms", Duration(-250*time.Millisecond))
	assert.Equal(t, "0.5ms", Duration(500*time.Microsecond))
	assert.Equal(t, "3d", Duration(72*time.Hour))
}

func TestSince(t *testing.T) {
	now := time.Date(2023, time.June, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "30min", Since(now.Add(-30*time.Minute), now))
	assert.Equal(t, "-2s", Since(now.Add(2*time.Second), now))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2023, time.June, 7, 8, 9, 10, 0, time.UTC)
	assert.Equal(t, "2023-06-07 08:09:10", DateTime(ts))

	east := time.FixedZone("UTC+8", 8*60*60)
	assert.Equal(t, "2023-06-07 00:09:10", DateTime(time.Date(2023, time.June, 7, 8, 9, 10, 0, east)))
}

func TestParseUint(t *testing.T) {
	n, err := ParseUint("0042")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	for _, in := range []string{"", "+1", " 1", "1 ", "1.0", "-1", "1e3", "٣"} {
		_, err := ParseUint(in)
		assert.True(t, errors.Is(err, ErrNotNumber), "ParseUint(%q) = %v", in, err)
	}

	_, err = ParseUint("99999999999999999999999")
	assert.True(t, errors.Is(err, ErrRange))

	n, err = ParseUint(strconv.Itoa(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("-17")
	require.NoError(t, err)
	assert.Equal(t, -17, n)

	n, err = ParseInt("17")
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	for _, in := range []string{"", "-", "--1", "+1", "-+1", "1-"} {
		_, err := ParseInt(in)
		assert.ErrorIs(t, err, ErrNotNumber, "ParseInt(%q)", in)
	}
}

func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: ParseInt reads back what strconv writes
	properties.Property("round trips strconv", prop.ForAll(
		func(n int) bool {
			got, err := ParseInt(strconv.Itoa(n))
			return err == nil && got == n
		},
		gen.IntRange(-1<<40, 1<<40),
	))

	// Property: Size never prints more than two fraction digits
	properties.Property("size has at most two fraction digits", prop.ForAll(
		func(n int64) bool {
			s := Size(n)
			for i := 0; i < len(s); i++ {
				if s[i] == '.' {
					j := i + 1
					for j < len(s) && '0' <= s[j] && s[j] <= '9' {
						j++
					}
					return j-i-1 <= 2
				}
			}
			return true
		},
		gen.Int64Range(0, 1<<50),
	))

	properties.TestingRun(t)
}
