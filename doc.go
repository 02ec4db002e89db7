// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package http1dec implements an incremental, push-style decoder for the
// request line and headers of an HTTP/1.1 request message.
//
// The decoder is aimed at memory-constrained systems that cannot buffer an
// entire request: callers feed successive byte slices via Feed, and the
// decoder emits method, path, query and header events to a Listener as soon
// as each token is recognized, never retaining a reference to the caller's
// buffer beyond a single callback.
//
// Accepted grammar (origin-form request line only):
//
//	METHOD SP "/" [ segment ( "/" segment )* ] [ "?" query ] SP "HTTP/1.1" CRLF
//	( field-name ":" OWS field-value OWS CRLF )*
//	CRLF
//
// The message body, chunked transfer encoding, trailers, percent-decoding,
// query-string parsing, HTTP versions other than 1.1, and any request-target
// form other than origin-form are out of scope; see the package-level
// constants and Listener for what is actually delivered.
package http1dec
