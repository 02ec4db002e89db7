// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

import "github.com/intuitivelabs/bytescase"

// HeaderClass identifies a small set of headers a caller is likely to act
// on directly. The core decoder never classifies header names itself (spec
// §4.2's DecodeHeaderLines always emits the raw name); ClassifyHeaderName is
// an optional convenience for listeners, kept separate so the decoder
// itself carries no header-name table.
type HeaderClass uint8

const (
	HeaderOther HeaderClass = iota
	HeaderHost
	HeaderContentLength
	HeaderConnection
	HeaderUpgrade
	HeaderTransferEncoding
)

var headerClassNames = [...]string{
	HeaderOther:            "Other",
	HeaderHost:             "Host",
	HeaderContentLength:    "Content-Length",
	HeaderConnection:       "Connection",
	HeaderUpgrade:          "Upgrade",
	HeaderTransferEncoding: "Transfer-Encoding",
}

// String implements fmt.Stringer.
func (h HeaderClass) String() string {
	if int(h) >= len(headerClassNames) {
		return "invalid"
	}
	return headerClassNames[h]
}

type headerName struct {
	n []byte
	t HeaderClass
}

// lower-case reference names; ClassifyHeaderName compares case-insensitively
// via bytescase, so these never need matching case with the wire bytes.
var knownHeaderNames = [...]headerName{
	{n: []byte("host"), t: HeaderHost},
	{n: []byte("content-length"), t: HeaderContentLength},
	{n: []byte("connection"), t: HeaderConnection},
	{n: []byte("upgrade"), t: HeaderUpgrade},
	{n: []byte("transfer-encoding"), t: HeaderTransferEncoding},
}

const (
	hdrHashBitsLen   uint = 2
	hdrHashBitsFChar uint = 5
)

var headerNameLookup [1 << (hdrHashBitsLen + hdrHashBitsFChar)][]headerName

func hashHeaderName(n []byte) int {
	const (
		mC = (1 << hdrHashBitsFChar) - 1
		mL = (1 << hdrHashBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) | ((len(n) & mL) << hdrHashBitsFChar)
}

func init() {
	for _, h := range knownHeaderNames {
		i := hashHeaderName(h.n)
		headerNameLookup[i] = append(headerNameLookup[i], h)
	}
}

// ClassifyHeaderName returns the HeaderClass for name, a header-name byte
// slice exactly as delivered by OnCompleteText(HeaderName, ...) or collected
// from a PartialHeaderName sequence (no leading/trailing whitespace). The
// comparison is case-insensitive per RFC 7230 §3.2.
func ClassifyHeaderName(name []byte) HeaderClass {
	if len(name) == 0 {
		return HeaderOther
	}
	i := hashHeaderName(name)
	for _, h := range headerNameLookup[i] {
		if bytescase.CmpEq(name, h.n) {
			return h.t
		}
	}
	return HeaderOther
}
