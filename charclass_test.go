// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

import "testing"

func TestIsPchar(t *testing.T) {
	tests := [...]struct {
		c  byte
		ok bool
	}{
		{'a', true}, {'Z', true}, {'9', true},
		{'-', true}, {'.', true}, {'_', true}, {'~', true},
		{'%', true}, {'=', true},
		{'/', false}, {'?', false}, {' ', false}, {'\t', false},
	}
	for _, c := range tests {
		if got := isPchar(c.c); got != c.ok {
			t.Errorf("isPchar(%q) = %v, want %v", c.c, got, c.ok)
		}
	}
}

func TestIsQueryChar(t *testing.T) {
	tests := [...]struct {
		c  byte
		ok bool
	}{
		{'a', true}, {'/', true}, {'?', true}, {'=', true},
		{' ', false}, {'\r', false},
	}
	for _, c := range tests {
		if got := isQueryChar(c.c); got != c.ok {
			t.Errorf("isQueryChar(%q) = %v, want %v", c.c, got, c.ok)
		}
	}
}

func TestIsTchar(t *testing.T) {
	tests := [...]struct {
		c  byte
		ok bool
	}{
		{'a', true}, {'Z', true}, {'0', true},
		{'!', true}, {'#', true}, {'^', true}, {'|', true}, {'~', true},
		{':', false}, {'/', false}, {' ', false}, {'(', false},
	}
	for _, c := range tests {
		if got := isTchar(c.c); got != c.ok {
			t.Errorf("isTchar(%q) = %v, want %v", c.c, got, c.ok)
		}
	}
}

func TestIsFieldContent(t *testing.T) {
	tests := [...]struct {
		c  byte
		ok bool
	}{
		{'\t', true}, {' ', true}, {'~', true}, {0x80, true}, {0xff, true},
		{0x7f, false}, {'\r', false}, {'\n', false},
	}
	for _, c := range tests {
		if got := isFieldContent(c.c); got != c.ok {
			t.Errorf("isFieldContent(%#x) = %v, want %v", c.c, got, c.ok)
		}
	}
}

func TestScanFirstNonMatching(t *testing.T) {
	tests := [...]struct {
		buf  string
		pred classPredicate
		want int
	}{
		{"", isTchar, 0},
		{"abc", isTchar, 3},
		{"abc:def", isTchar, 3},
		{":abc", isTchar, 0},
	}
	for _, c := range tests {
		if got := scanFirstNonMatching([]byte(c.buf), c.pred); got != c.want {
			t.Errorf("scanFirstNonMatching(%q, ..) = %d, want %d", c.buf, got, c.want)
		}
	}
}

func TestTrimTrailingOWS(t *testing.T) {
	tests := [...]struct {
		in, want string
	}{
		{"abc", "abc"},
		{"abc  ", "abc"},
		{"abc\t \t", "abc"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range tests {
		if got := string(trimTrailingOWS([]byte(c.in))); got != c.want {
			t.Errorf("trimTrailingOWS(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
