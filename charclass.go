// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

// Character-class predicates and "longest matching prefix" scanners, kept
// as small inlineable pure functions rather than a 256-bit lookup table
// (spec §9 design notes: either is acceptable, a table isn't required for
// correctness).

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isUpperAlpha matches the HTTP method grammar: A-Z only.
func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// isPchar matches RFC 3986 pchar, restricted to the printable-ASCII subset
// this decoder accepts: alnum, "-._~!$&'()*+,;=" and the literal '%' (left
// undecoded; percent-decoding is out of scope).
func isPchar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '-', '.', '_', '~', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '%':
		return true
	}
	return false
}

// isQueryChar matches pchar plus '/' and '?', per spec §4.2.2. The original
// decoder's IsQueryChar has a bug treating '?' as a numeric constant rather
// than comparing a byte against it; this implements the intended semantics.
func isQueryChar(c byte) bool {
	return isPchar(c) || c == '/' || c == '?'
}

// isTchar matches RFC 7230 tchar: alnum plus "!#$%&'*+-.^_`|~".
func isTchar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isOWS matches optional whitespace: SP or HT.
func isOWS(c byte) bool {
	return c == ' ' || c == '\t'
}

// isFieldContent matches RFC 7230 field-content extended to accept any
// printable ASCII byte, HT, or any byte >= 0x80 (spec §4.2.2).
func isFieldContent(c byte) bool {
	return c == '\t' || c >= 0x80 || (c >= 0x20 && c < 0x7f)
}

// classPredicate is the shape shared by all character-class functions
// above, letting scanFirstNonMatching stay a single generic loop.
type classPredicate func(byte) bool

// scanFirstNonMatching returns the index in buf, starting at 0, of the
// first byte that does not satisfy pred, or len(buf) if every byte
// matches. This is the "find first not matching" scan named in spec §2.
func scanFirstNonMatching(buf []byte, pred classPredicate) int {
	for i, c := range buf {
		if !pred(c) {
			return i
		}
	}
	return len(buf)
}

// trimTrailingOWS returns the prefix of buf with trailing SP/HT removed.
func trimTrailingOWS(buf []byte) []byte {
	end := len(buf)
	for end > 0 && isOWS(buf[end-1]) {
		end--
	}
	return buf[:end]
}
